// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/cloreai/clrsign/btcec"
)

// Format selects one of the supported signature wire formats.
type Format int

const (
	// FormatCompact is the fixed-width 64-byte r || s encoding.
	FormatCompact Format = iota

	// FormatDER is the ASN.1 DER SEQUENCE of the two INTEGERs r and s.
	FormatDER

	// FormatRecovered is the 65-byte recovery id || r || s encoding.
	FormatRecovered
)

// formatNames maps each format to its canonical name.
var formatNames = map[Format]string{
	FormatCompact:   "compact",
	FormatDER:       "der",
	FormatRecovered: "recovered",
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Format (%d)", int(f))
}

// ParseFormat returns the format with the given canonical name.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	str := fmt.Sprintf("signature format must be \"compact\", "+
		"\"recovered\", or \"der\", got %q", s)
	return 0, signatureError(ErrInvalidFormat, str)
}

// These constants define the lengths of the fixed-width formats.
const (
	// CompactSigLen is the length of a FormatCompact signature.
	CompactSigLen = 64

	// RecoveredSigLen is the length of a FormatRecovered signature.
	RecoveredSigLen = CompactSigLen + 1
)

// noRecovery marks a signature without a recovery code.
const noRecovery = -1

// Signature is a type representing an ECDSA signature.  Both r and s are in
// [1, N) and the optional recovery code is in [0, 3].  Signatures are only
// created through validating constructors and are immutable afterwards.
type Signature struct {
	r        btcec.ModNScalar
	s        btcec.ModNScalar
	recovery int8
}

// validateRS returns an error unless v is a non-zero canonical scalar.
func validateRS(v *big.Int, zeroKind, bigKind ErrorKind, name string) (btcec.ModNScalar, error) {
	if v.Sign() == 0 {
		str := fmt.Sprintf("invalid signature: %s is 0", name)
		return btcec.ModNScalar{}, signatureError(zeroKind, str)
	}
	if !btcec.Fn.IsValid(v) {
		str := fmt.Sprintf("invalid signature: %s >= group order", name)
		return btcec.ModNScalar{}, signatureError(bigKind, str)
	}
	return btcec.Fn.New(v), nil
}

// NewSignature instantiates a new signature given some r and s values.  Both
// must be non-zero.
func NewSignature(r, s btcec.ModNScalar) (*Signature, error) {
	if r.IsZero() {
		return nil, signatureError(ErrSigRIsZero, "invalid signature: r "+
			"is 0")
	}
	if s.IsZero() {
		return nil, signatureError(ErrSigSIsZero, "invalid signature: s "+
			"is 0")
	}
	return &Signature{r: r, s: s, recovery: noRecovery}, nil
}

// newSignatureFromBig validates r and s given as integers.
func newSignatureFromBig(r, s *big.Int) (*Signature, error) {
	rs, err := validateRS(r, ErrSigRIsZero, ErrSigRTooBig, "r")
	if err != nil {
		return nil, err
	}
	ss, err := validateRS(s, ErrSigSIsZero, ErrSigSTooBig, "s")
	if err != nil {
		return nil, err
	}
	return &Signature{r: rs, s: ss, recovery: noRecovery}, nil
}

// WithRecovery returns a copy of the signature carrying the given recovery
// code.
func (sig *Signature) WithRecovery(code byte) (*Signature, error) {
	if !recoverySupported {
		return nil, signatureError(ErrRecoveryUnsupported, "recovered "+
			"signatures are not supported for curves with a large "+
			"cofactor")
	}
	if code > 3 {
		str := fmt.Sprintf("invalid recovery code %d", code)
		return nil, signatureError(ErrSigInvalidRecoveryCode, str)
	}
	return &Signature{r: sig.r, s: sig.s, recovery: int8(code)}, nil
}

// R returns the r value of the signature.
func (sig *Signature) R() btcec.ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() btcec.ModNScalar {
	return sig.s
}

// Recovery returns the recovery code and whether the signature has one.
func (sig *Signature) Recovery() (byte, bool) {
	if sig.recovery == noRecovery {
		return 0, false
	}
	return byte(sig.recovery), true
}

// HasHighS returns whether s is greater than half the group order.  Such
// signatures are malleable since (r, N-s) is valid as well.
func (sig *Signature) HasHighS() bool {
	return sig.s.Big().Cmp(btcec.HalfOrder()) > 0
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.  The recovery code is not compared.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return btcec.Fn.Equal(sig.r, otherSig.r) &&
		btcec.Fn.Equal(sig.s, otherSig.s)
}

// Serialize returns the signature in the requested format.  FormatRecovered
// requires a recovery code.
func (sig *Signature) Serialize(format Format) ([]byte, error) {
	switch format {
	case FormatDER:
		return sig.serializeDER(), nil

	case FormatCompact:
		b := make([]byte, CompactSigLen)
		btcec.Fn.PutBytes(sig.r, b[:32])
		btcec.Fn.PutBytes(sig.s, b[32:])
		return b, nil

	case FormatRecovered:
		code, ok := sig.Recovery()
		if !ok {
			return nil, signatureError(ErrSigMissingRecoveryCode,
				"invalid recovery id: must be present")
		}
		b := make([]byte, RecoveredSigLen)
		b[0] = code
		btcec.Fn.PutBytes(sig.r, b[1:33])
		btcec.Fn.PutBytes(sig.s, b[33:])
		return b, nil
	}

	str := fmt.Sprintf("unsupported signature format %v", format)
	return nil, signatureError(ErrInvalidFormat, str)
}

// ParseSignature parses a signature in the given format.  Compact and
// recovered signatures must be exactly their fixed length and DER
// signatures are parsed strictly.
func ParseSignature(sig []byte, format Format) (*Signature, error) {
	switch format {
	case FormatDER:
		return ParseDERSignature(sig)

	case FormatCompact:
		if len(sig) != CompactSigLen {
			str := fmt.Sprintf("malformed signature: wrong size: %d "+
				"!= %d", len(sig), CompactSigLen)
			return nil, signatureError(ErrSigInvalidLen, str)
		}
		r := new(big.Int).SetBytes(sig[:32])
		s := new(big.Int).SetBytes(sig[32:])
		return newSignatureFromBig(r, s)

	case FormatRecovered:
		if len(sig) != RecoveredSigLen {
			str := fmt.Sprintf("malformed signature: wrong size: %d "+
				"!= %d", len(sig), RecoveredSigLen)
			return nil, signatureError(ErrSigInvalidLen, str)
		}
		r := new(big.Int).SetBytes(sig[1:33])
		s := new(big.Int).SetBytes(sig[33:])
		parsed, err := newSignatureFromBig(r, s)
		if err != nil {
			return nil, err
		}
		return parsed.WithRecovery(sig[0])
	}

	str := fmt.Sprintf("unsupported signature format %v", format)
	return nil, signatureError(ErrInvalidFormat, str)
}
