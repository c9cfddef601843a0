// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"math/big"
)

// PublicKey is a validated secp256k1 public key.
type PublicKey struct {
	point *Point
}

// NewPublicKey returns the public key for a point after validating it.
func NewPublicKey(p *Point) (*PublicKey, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// ParsePubKey parses a public key for the secp256k1 curve from a bytestring
// into a PublicKey, verifying that it is valid.  It supports the compressed
// and uncompressed SEC1 formats.
func ParsePubKey(pubKeyStr []byte) (*PublicKey, error) {
	p, err := ParsePoint(pubKeyStr)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// Point returns the curve point of the public key.
func (k *PublicKey) Point() *Point {
	return k.point
}

// X returns the affine x coordinate as a big integer.
func (k *PublicKey) X() *big.Int {
	return k.point.X().Big()
}

// Y returns the affine y coordinate as a big integer.
func (k *PublicKey) Y() *big.Int {
	return k.point.Y().Big()
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (k *PublicKey) SerializeCompressed() []byte {
	return k.point.encode(true)
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (k *PublicKey) SerializeUncompressed() []byte {
	return k.point.encode(false)
}

// IsEqual compares this PublicKey instance to the one passed, returning true
// if both PublicKeys are equivalent.
func (k *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return k.point.Equal(otherPubKey.point)
}

// SerializedKey is a type for representing a public key in its compressed
// serialized form.
//
// NOTE: This type is useful when using public keys as keys in maps.
type SerializedKey [PubKeyBytesLenCompressed]byte

// ToPubKey returns the public key parsed from the serialized key.
func (s SerializedKey) ToPubKey() (*PublicKey, error) {
	return ParsePubKey(s[:])
}

// CopyBytes copies the serialized key into the given slice, which must be
// at least 33 bytes long.
func (s SerializedKey) CopyBytes(c []byte) {
	copy(c, s[:])
}

// ToSerialized serializes a public key into its compressed form.
func ToSerialized(pubKey *PublicKey) SerializedKey {
	var serialized SerializedKey
	copy(serialized[:], pubKey.SerializeCompressed())
	return serialized
}
