// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"crypto/rand"
	"fmt"
	"io"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 private key, a scalar in [1, N).
type PrivateKey struct {
	Key ModNScalar
}

// NewPrivateKeyFromScalar returns a private key for the scalar, which must not
// be zero.  The key keeps its own copy of the scalar.
func NewPrivateKeyFromScalar(key ModNScalar) (*PrivateKey, error) {
	if key.IsZero() {
		return nil, makeError(ErrPrivKeyOutOfRange, "private key is zero")
	}
	return &PrivateKey{Key: key.Clone()}, nil
}

// PrivKeyFromBytes returns the private key encoded by the 32-byte big-endian
// slice.  Unlike some implementations the value is never reduced: zero and
// values not below the group order are rejected.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	if len(pk) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d",
			len(pk))
		return nil, makeError(ErrPrivKeyInvalidLen, str)
	}
	key, err := Fn.FromBytes(pk)
	if err != nil {
		return nil, makeError(ErrPrivKeyOutOfRange, "private key is not "+
			"less than the group order")
	}
	defer key.Wipe()
	return NewPrivateKeyFromScalar(key)
}

// NewPrivateKey returns a private key generated from crypto/rand.
func NewPrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFromRand(rand.Reader)
}

// GeneratePrivateKeyFromRand returns a private key drawn from the supplied
// reader.  Candidates outside [1, N) are discarded.
func GeneratePrivateKeyFromRand(r io.Reader) (*PrivateKey, error) {
	var b [PrivKeyBytesLen]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		priv, err := PrivKeyFromBytes(b[:])
		if err == nil {
			return priv, nil
		}
	}
}

// PubKey computes and returns the public key corresponding to this private
// key.
func (p *PrivateKey) PubKey() *PublicKey {
	point, err := generator.Multiply(p.Key)
	if err != nil {
		// Private keys are never zero so the multiplication can't fail.
		panic(fmt.Sprintf("public key derivation failed: %v", err))
	}
	return &PublicKey{point: point}
}

// Serialize returns the private key as a 32-byte big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	return Fn.ToBytes(p.Key)
}

// Zero overwrites the key's own copy of the scalar.  Copies taken from Key
// and temporaries of earlier computations are not reached and stay in memory
// until collected.  The key must not be used afterwards.
func (p *PrivateKey) Zero() {
	p.Key.Wipe()
}
