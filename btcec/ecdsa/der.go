// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02

	// minSigLen is the minimum length of a DER encoded signature and is
	// when both R and S are 1 byte each.
	//
	// 0x30 + <1-byte> + 0x02 + 0x01 + <byte> + 0x2 + 0x01 + <byte>
	minSigLen = 8

	// maxLenBytes is the largest long-form length prefix accepted.
	maxLenBytes = 4
)

// canonicalizeInt returns the bytes for the passed big integer adjusted as
// necessary to ensure that a big-endian encoded integer can't possibly be
// misinterpreted as a negative number.  This can happen when the most
// significant bit is set, so it is padded by a leading zero byte in this case.
// Also, the returned bytes will have at least a single byte when the passed
// value is 0.  This is required for DER encoding.
func canonicalizeInt(val *big.Int) []byte {
	b := val.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		paddedBytes := make([]byte, len(b)+1)
		copy(paddedBytes[1:], b)
		b = paddedBytes
	}
	return b
}

// serializeDER returns the signature in the strict DER format:
//
// 0x30 <length> 0x02 <length r> r 0x02 <length s> s
//
// Scalars are at most 33 bytes once padded so every length fits the short
// form.
func (sig *Signature) serializeDER() []byte {
	rb := canonicalizeInt(sig.r.Big())
	sb := canonicalizeInt(sig.s.Big())

	// total length of returned signature is 1 byte for each magic and
	// length (6 total), plus lengths of r and s
	length := 6 + len(rb) + len(sb)
	b := make([]byte, length)

	b[0] = asn1SequenceID
	b[1] = byte(length - 2)
	b[2] = asn1IntegerID
	b[3] = byte(len(rb))
	offset := copy(b[4:], rb) + 4
	b[offset] = asn1IntegerID
	b[offset+1] = byte(len(sb))
	copy(b[offset+2:], sb)
	return b
}

// parseTLV reads one tag-length-value element with the given tag from the
// front of data and returns its value and the bytes that follow it.  Both
// the short and the long length forms are accepted but the long form must be
// minimal.
func parseTLV(data []byte, tag byte, idKind ErrorKind, name string) (value, rest []byte, err error) {
	if len(data) < 2 || data[0] != tag {
		str := fmt.Sprintf("malformed signature: %s does not start with "+
			"tag %#x", name, tag)
		return nil, nil, signatureError(idKind, str)
	}

	pos := 1
	first := data[pos]
	pos++
	length := int(first)
	if first&0x80 != 0 {
		lenLen := int(first & 0x7f)
		switch {
		case lenLen == 0:
			str := fmt.Sprintf("malformed signature: %s uses indefinite "+
				"length", name)
			return nil, nil, signatureError(ErrSigInvalidLenEncoding, str)

		case lenLen > maxLenBytes:
			str := fmt.Sprintf("malformed signature: %s length uses %d "+
				"bytes", name, lenLen)
			return nil, nil, signatureError(ErrSigInvalidLenEncoding, str)

		case len(data)-pos < lenLen:
			str := fmt.Sprintf("malformed signature: %s length bytes "+
				"are incomplete", name)
			return nil, nil, signatureError(ErrSigInvalidLenEncoding, str)

		case data[pos] == 0:
			str := fmt.Sprintf("malformed signature: %s length has a "+
				"leading zero byte", name)
			return nil, nil, signatureError(ErrSigInvalidLenEncoding, str)
		}

		length = 0
		for _, b := range data[pos : pos+lenLen] {
			length = length<<8 | int(b)
		}
		pos += lenLen
		if length < 0x80 {
			str := fmt.Sprintf("malformed signature: %s length %d is "+
				"not minimally encoded", name, length)
			return nil, nil, signatureError(ErrSigInvalidLenEncoding, str)
		}
	}

	if len(data)-pos < length {
		str := fmt.Sprintf("malformed signature: %s declares %d bytes, "+
			"only %d remain", name, length, len(data)-pos)
		return nil, nil, signatureError(ErrSigInvalidDataLen, str)
	}
	return data[pos : pos+length], data[pos+length:], nil
}

// parseDERInt validates the body of a DER INTEGER holding a non-negative
// value and returns it.
func parseDERInt(b []byte, zeroLenKind, negKind, padKind ErrorKind, name string) (*big.Int, error) {
	switch {
	case len(b) == 0:
		str := fmt.Sprintf("malformed signature: %s length is zero", name)
		return nil, signatureError(zeroLenKind, str)

	case b[0]&0x80 != 0:
		str := fmt.Sprintf("invalid signature: %s is negative", name)
		return nil, signatureError(negKind, str)

	// Only allow a leading zero when it is needed to keep the next byte
	// from being read as a sign bit.
	case len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0:
		str := fmt.Sprintf("invalid signature: %s value has too much "+
			"padding", name)
		return nil, signatureError(padKind, str)
	}
	return new(big.Int).SetBytes(b), nil
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and enforces:
//
//   - the sequence consumes the whole input and the two integers consume the
//     whole sequence
//   - lengths are minimally encoded
//   - R and S are non-negative without excess padding
//   - R and S are in [1, N)
func ParseDERSignature(sig []byte) (*Signature, error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	if len(sig) < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d",
			len(sig), minSigLen)
		return nil, signatureError(ErrSigTooShort, str)
	}

	seq, rest, err := parseTLV(sig, asn1SequenceID, ErrSigInvalidSeqID,
		"sequence")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		str := fmt.Sprintf("malformed signature: %d bytes left after "+
			"the sequence", len(rest))
		return nil, signatureError(ErrSigTrailingBytes, str)
	}

	rBytes, rest, err := parseTLV(seq, asn1IntegerID, ErrSigInvalidRIntID,
		"R")
	if err != nil {
		return nil, err
	}
	sBytes, rest, err := parseTLV(rest, asn1IntegerID, ErrSigInvalidSIntID,
		"S")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		str := fmt.Sprintf("malformed signature: %d bytes left after S",
			len(rest))
		return nil, signatureError(ErrSigTrailingBytes, str)
	}

	r, err := parseDERInt(rBytes, ErrSigZeroRLen, ErrSigNegativeR,
		ErrSigTooMuchRPadding, "R")
	if err != nil {
		return nil, err
	}
	s, err := parseDERInt(sBytes, ErrSigZeroSLen, ErrSigNegativeS,
		ErrSigTooMuchSPadding, "S")
	if err != nil {
		return nil, err
	}
	return newSignatureFromBig(r, s)
}
