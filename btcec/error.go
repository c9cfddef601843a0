// Copyright (c) 2020 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPubKeyInvalidLen indicates that the length of a serialized point
	// or public key is not one of the allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat indicates an attempt was made to parse a point
	// or public key that does not specify one of the supported formats.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig indicates that the x coordinate for a point or
	// public key is greater than or equal to the prime of the field
	// underlying the group.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig indicates that the y coordinate for a point or
	// public key is greater than or equal to the prime of the field
	// underlying the group.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve indicates that a point or public key is not a
	// point on the secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPointAtInfinity indicates the identity element was supplied or
	// produced where a finite point is required.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrPointNotInSubgroup indicates a point is on the curve but not in
	// the prime-order subgroup.
	ErrPointNotInSubgroup = ErrorKind("ErrPointNotInSubgroup")

	// ErrInvalidScalar indicates a scalar multiplier is zero or otherwise
	// unusable for the constant-time multiplication path.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidWindow indicates a precomputation window size outside of
	// [1, bits] was requested.
	ErrInvalidWindow = ErrorKind("ErrInvalidWindow")

	// ErrInvalidNAF indicates the scalar was not fully consumed by the wNAF
	// recoding, which would mean the table does not cover the scalar width.
	ErrInvalidNAF = ErrorKind("ErrInvalidNAF")

	// ErrSplitScalar indicates a decomposed scalar half exceeded its bound.
	ErrSplitScalar = ErrorKind("ErrSplitScalar")

	// ErrPrivKeyInvalidLen indicates a serialized private key is not
	// exactly 32 bytes.
	ErrPrivKeyInvalidLen = ErrorKind("ErrPrivKeyInvalidLen")

	// ErrPrivKeyOutOfRange indicates a private key is zero or not less than
	// the group order.
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to public key cryptography using a
// sec256k1 curve.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
