// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"fmt"
)

// These constants define the lengths of serialized points and public keys.
const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed point.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed point.
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)

// Bytes returns the SEC1 encoding of the point: 0x02 or 0x03 followed by x
// when compressed, 0x04 followed by x and y otherwise.  The point is validated
// first so the identity and invalid points cannot be encoded.
func (p *Point) Bytes(compressed bool) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.encode(compressed), nil
}

// encode serializes a point known to be valid.
func (p *Point) encode(compressed bool) []byte {
	x, y := p.ToAffine()
	size := Fp.Bytes()
	if compressed {
		b := make([]byte, PubKeyBytesLenCompressed)
		format := pubkeyCompressed
		if y.IsOdd() {
			format |= 0x1
		}
		b[0] = format
		Fp.PutBytes(x, b[1:1+size])
		return b
	}

	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	Fp.PutBytes(x, b[1:1+size])
	Fp.PutBytes(y, b[1+size:1+2*size])
	return b
}

// IsCompressedPubKey returns true the passed serialized public key has
// been encoded in compressed format, and false otherwise.
func IsCompressedPubKey(pubKey []byte) bool {
	// The public key is only compressed if it is the correct length and
	// the format (first byte) is one of the compressed pubkey values.
	return len(pubKey) == PubKeyBytesLenCompressed &&
		(pubKey[0]&^byte(0x1) == pubkeyCompressed)
}

// decompressY returns the y coordinate for x with the requested oddness.
func decompressY(x FieldVal, odd bool) (FieldVal, error) {
	y, err := Fp.Sqrt(secp256k1.curveRHS(x))
	if err != nil {
		str := fmt.Sprintf("invalid point: x coordinate %v is not on the "+
			"secp256k1 curve", x)
		return Fp.Zero(), makeError(ErrPubKeyNotOnCurve, str)
	}
	if y.IsOdd() != odd {
		y = Fp.Neg(y)
	}
	return y, nil
}

// ParsePoint decodes a SEC1 encoded point and validates it.  Both the
// compressed 33-byte and the uncompressed 65-byte forms are accepted:
//
//	compressed:   <0x02 or 0x03> <32-byte x>
//	uncompressed: <0x04> <32-byte x> <32-byte y>
//
// Compressed points have their y coordinate recomputed with a square root and
// negated as needed to match the parity byte.
func ParsePoint(serialized []byte) (*Point, error) {
	size := Fp.Bytes()

	var x, y FieldVal
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubkeyUncompressed {
			str := fmt.Sprintf("invalid point: unsupported format: %x",
				serialized[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		var err error
		x, err = Fp.FromBytes(serialized[1 : 1+size])
		if err != nil {
			str := fmt.Sprintf("invalid point: x >= field prime (%x)",
				serialized[1:1+size])
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		y, err = Fp.FromBytes(serialized[1+size:])
		if err != nil {
			str := fmt.Sprintf("invalid point: y >= field prime (%x)",
				serialized[1+size:])
			return nil, makeError(ErrPubKeyYTooBig, str)
		}

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format&^byte(0x1) != pubkeyCompressed {
			str := fmt.Sprintf("invalid point: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		var err error
		x, err = Fp.FromBytes(serialized[1:])
		if err != nil {
			str := fmt.Sprintf("invalid point: x >= field prime (%x)",
				serialized[1:])
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		y, err = decompressY(x, format&0x1 == 0x1)
		if err != nil {
			return nil, err
		}

	default:
		str := fmt.Sprintf("malformed point: invalid length: %d",
			len(serialized))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	return NewPointFromAffine(x, y)
}
