// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/cloreai/clrsign/btcec"
)

// verify checks the signature per [GECC] algorithm 4.30 and returns an error
// describing the first check that failed.
//
// [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
func verify(sig *Signature, msg []byte, pubKey *btcec.PublicKey, opts *SignOptions) error {
	opts = opts.orDefault()

	if opts.LowS && sig.HasHighS() {
		return signatureError(ErrSigHighS, "invalid signature: s is "+
			"greater than half the group order")
	}

	e, err := hashToScalar(messageDigest(msg, opts.Prehash))
	if err != nil {
		return err
	}

	// w = s^-1 mod N, u1 = e*w mod N, u2 = r*w mod N
	w, err := btcec.Fn.Inv(sig.s)
	if err != nil {
		return signatureError(ErrSigSIsZero, "invalid signature: s is 0")
	}
	u1 := btcec.Fn.Mul(e, w)
	u2 := btcec.Fn.Mul(sig.r, w)

	// X = u1*G + u2*Q.  Both multipliers and points are public.
	x, err := btcec.MultiplyAndAddUnsafe(u1, u2, pubKey.Point())
	if err != nil {
		return err
	}
	if x.IsInfinity() {
		return signatureError(ErrPointAtInfinity, "invalid signature: "+
			"u1*G + u2*Q is the point at infinity")
	}

	// v = X.x mod N
	v := btcec.Fn.New(x.X().Big())
	if !btcec.Fn.Equal(v, sig.r) {
		str := fmt.Sprintf("invalid signature: X.x mod N (%v) != r (%v)",
			v, sig.r)
		return signatureError(ErrSigMismatch, str)
	}
	return nil
}

// Verify returns whether or not the signature is valid for msg and the
// public key.  Every failure, including malformed inputs, is reported as
// false.  A nil opts selects DefaultSignOptions.
func Verify(sig *Signature, msg []byte, pubKey *btcec.PublicKey, opts *SignOptions) bool {
	if sig == nil || pubKey == nil {
		return false
	}
	if err := verify(sig, msg, pubKey, opts); err != nil {
		log.Tracef("Signature verification failed: %v", err)
		return false
	}
	return true
}

// Verify returns whether or not the signature is valid for msg and the
// public key.  It is equivalent to Verify(sig, msg, pubKey, opts).
func (sig *Signature) Verify(msg []byte, pubKey *btcec.PublicKey, opts *SignOptions) bool {
	return Verify(sig, msg, pubKey, opts)
}

// VerifyBytes parses the signature in the given format and the SEC1 public
// key, then verifies the signature over msg.  It never fails: parse errors
// yield false like any other invalid signature.
func VerifyBytes(sig, msg, pubKey []byte, opts *SignOptions, format Format) bool {
	parsed, err := ParseSignature(sig, format)
	if err != nil {
		log.Tracef("Unable to parse %v signature: %v", format, err)
		return false
	}
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		log.Tracef("Unable to parse public key: %v", err)
		return false
	}
	return Verify(parsed, msg, key, opts)
}

// recoverFromDigest recovers the public key from the signature and its
// recovery code for the given message digest.
func (sig *Signature) recoverFromDigest(hash []byte) (*btcec.PublicKey, error) {
	if !recoverySupported {
		return nil, signatureError(ErrRecoveryUnsupported, "public key "+
			"recovery is not supported for curves with a large cofactor")
	}
	code, ok := sig.Recovery()
	if !ok {
		return nil, signatureError(ErrSigMissingRecoveryCode, "invalid "+
			"recovery id: must be present")
	}

	// Bit 1 of the code means R.x was reduced modulo N, so R.x = r + N.
	rx := sig.r.Big()
	if code&2 != 0 {
		rx.Add(rx, btcec.Params().N)
	}
	if !btcec.Fp.IsValid(rx) {
		return nil, signatureError(ErrSigOverflowsPrime, "invalid "+
			"recovery id: r + N is not less than the field prime")
	}

	// Bit 0 is the parity of R.y.
	compressed := make([]byte, btcec.PubKeyBytesLenCompressed)
	compressed[0] = 0x02 | code&1
	btcec.Fp.PutBytes(btcec.Fp.New(rx), compressed[1:])
	bigR, err := btcec.ParsePoint(compressed)
	if err != nil {
		str := fmt.Sprintf("invalid signature: R is not on the curve: %v",
			err)
		return nil, signatureError(ErrPointNotOnCurve, str)
	}

	e, err := hashToScalar(hash)
	if err != nil {
		return nil, err
	}

	// Q = r^-1 * (s*R - e*G) = u1*G + u2*R with
	// u1 = -e*r^-1 mod N and u2 = s*r^-1 mod N.
	rInv, err := btcec.Fn.Inv(btcec.Fn.New(rx))
	if err != nil {
		return nil, signatureError(ErrSigRIsZero, "invalid signature: r "+
			"is 0")
	}
	u1 := btcec.Fn.Neg(btcec.Fn.Mul(e, rInv))
	u2 := btcec.Fn.Mul(sig.s, rInv)
	q, err := btcec.MultiplyAndAddUnsafe(u1, u2, bigR)
	if err != nil {
		return nil, err
	}
	if q.IsInfinity() {
		return nil, signatureError(ErrPointAtInfinity, "invalid "+
			"signature: recovered public key is the point at infinity")
	}
	return btcec.NewPublicKey(q)
}

// RecoverPublicKey returns the public key that produced the signature over
// msg.  The signature must carry a recovery code.  Only the Prehash field of
// opts is consulted; nil selects DefaultSignOptions.
func (sig *Signature) RecoverPublicKey(msg []byte, opts *SignOptions) (*btcec.PublicKey, error) {
	opts = opts.orDefault()
	return sig.recoverFromDigest(messageDigest(msg, opts.Prehash))
}

// RecoverPublicKey parses a FormatRecovered signature and returns the
// compressed SEC1 encoding of the public key that produced it over msg.
func RecoverPublicKey(sig, msg []byte, opts *SignOptions) ([]byte, error) {
	parsed, err := ParseSignature(sig, FormatRecovered)
	if err != nil {
		return nil, err
	}
	pubKey, err := parsed.RecoverPublicKey(msg, opts)
	if err != nil {
		return nil, err
	}
	return pubKey.SerializeCompressed(), nil
}
