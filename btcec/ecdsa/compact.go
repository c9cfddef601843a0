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

const (
	// compactSigSize is the size of a header-prefixed compact signature.
	compactSigSize = 65

	// compactSigMagicOffset is a value used when creating the compact
	// signature recovery code inherited from Bitcoin and has no meaning,
	// but has been retained for compatibility.  For historical purposes,
	// it was originally picked to avoid a binary representation that would
	// allow compact signatures to be mistaken for other components.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is a value used when creating the compact
	// signature recovery code to indicate the original public key was
	// compressed.
	compactSigCompPubKey = 4
)

// SignCompact produces a compact signature of the data in hash with the given
// private key on the secp256k1 curve.  The isCompressedKey parameter specifies
// if the produced signature should reference a compressed public key or not.
//
// Compact signature format:
// <1-byte compact sig recovery code><32-byte R><32-byte S>
//
// The compact sig recovery code is the value 27 + public key recovery code + 4
// if the compact signature was created with a compressed public key.
//
// The hash is signed as given with low-S enforced, so the result matches the
// signed-message format of Bitcoin wallets.
func SignCompact(key *btcec.PrivateKey, hash []byte, isCompressedKey bool) ([]byte, error) {
	sig, err := Sign(hash, key, &SignOptions{LowS: true})
	if err != nil {
		return nil, err
	}
	rec, err := sig.Serialize(FormatRecovered)
	if err != nil {
		return nil, err
	}

	// Output <compactSigRecoveryCode><32-byte R><32-byte S>.
	b := make([]byte, compactSigSize)
	copy(b, rec)
	b[0] += compactSigMagicOffset
	if isCompressedKey {
		b[0] += compactSigCompPubKey
	}
	return b, nil
}

// RecoverCompact attempts to recover the secp256k1 public key from the
// provided compact signature and message hash.  It first verifies the
// signature, and, if the signature matches then the recovered public key will
// be returned as well as a boolean indicating whether or not the original key
// was compressed.
func RecoverCompact(signature, hash []byte) (*btcec.PublicKey, bool, error) {
	// A compact signature consists of a recovery byte followed by the R and
	// S components serialized as 32-byte big-endian values.
	if len(signature) != compactSigSize {
		str := fmt.Sprintf("malformed signature: wrong size: %d != %d",
			len(signature), compactSigSize)
		return nil, false, signatureError(ErrSigInvalidLen, str)
	}

	// Parse and validate the compact signature recovery code.
	const (
		minValidCode = compactSigMagicOffset
		maxValidCode = compactSigMagicOffset + compactSigCompPubKey + 3
	)
	sigRecoveryCode := signature[0]
	if sigRecoveryCode < minValidCode || sigRecoveryCode > maxValidCode {
		str := fmt.Sprintf("invalid signature: public key recovery code "+
			"%d is not in the valid range [%d, %d]", sigRecoveryCode,
			minValidCode, maxValidCode)
		return nil, false, signatureError(ErrSigInvalidRecoveryCode, str)
	}
	sigRecoveryCode -= compactSigMagicOffset
	wasCompressed := sigRecoveryCode&compactSigCompPubKey != 0
	pubKeyRecoveryCode := sigRecoveryCode & 3

	r := new(big.Int).SetBytes(signature[1:33])
	s := new(big.Int).SetBytes(signature[33:])
	sig, err := newSignatureFromBig(r, s)
	if err != nil {
		return nil, false, err
	}
	sig, err = sig.WithRecovery(pubKeyRecoveryCode)
	if err != nil {
		return nil, false, err
	}

	pubKey, err := sig.recoverFromDigest(hash)
	if err != nil {
		return nil, false, err
	}

	// The recovered key must verify the signature.
	if err := verify(sig, hash, pubKey, &SignOptions{}); err != nil {
		return nil, false, err
	}
	return pubKey, wasCompressed, nil
}
