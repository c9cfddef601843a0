// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"crypto/subtle"
	"errors"

	"github.com/cloreai/clrsign/chainhash"
)

// ChecksumLen is the number of checksum bytes appended by CheckEncode.
const ChecksumLen = 4

// ErrChecksum indicates that the checksum of a check-encoded string does not verify against
// the checksum.
var ErrChecksum = errors.New("invalid checksum")

// ErrInvalidFormat indicates that the check-encoded string has an invalid format.
var ErrInvalidFormat = errors.New("invalid format: checksum bytes missing")

// checksum: first four bytes of hash^2
func checksum(input []byte) (cksum [ChecksumLen]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:ChecksumLen])
	return
}

// CheckEncode appends a four byte checksum to the payload and encodes the
// result.  Any version bytes are part of the payload.
func CheckEncode(input []byte) string {
	b := make([]byte, 0, len(input)+ChecksumLen)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.  The returned payload excludes the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded := Decode(input)
	if len(decoded) < ChecksumLen {
		return nil, ErrInvalidFormat
	}
	payload := decoded[:len(decoded)-ChecksumLen]
	cksum := checksum(payload)
	if subtle.ConstantTimeCompare(cksum[:], decoded[len(payload):]) != 1 {
		return nil, ErrChecksum
	}
	return payload, nil
}
