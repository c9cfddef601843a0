// Copyright (c) 2020 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSigTooShort is returned when a signature that should be a DER
	// signature is too short.
	ErrSigTooShort = ErrorKind("ErrSigTooShort")

	// ErrSigInvalidSeqID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 sequence ID.
	ErrSigInvalidSeqID = ErrorKind("ErrSigInvalidSeqID")

	// ErrSigInvalidLenEncoding is returned when a length inside a DER
	// signature uses the indefinite form, a long form that is longer than
	// needed or is truncated.
	ErrSigInvalidLenEncoding = ErrorKind("ErrSigInvalidLenEncoding")

	// ErrSigInvalidDataLen is returned when a signature that should be a
	// DER signature declares more data than it contains.
	ErrSigInvalidDataLen = ErrorKind("ErrSigInvalidDataLen")

	// ErrSigTrailingBytes is returned when a DER signature has bytes left
	// over after the sequence or after the S integer.
	ErrSigTrailingBytes = ErrorKind("ErrSigTrailingBytes")

	// ErrSigInvalidRIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for R.
	ErrSigInvalidRIntID = ErrorKind("ErrSigInvalidRIntID")

	// ErrSigZeroRLen is returned when a signature that should be a DER
	// signature has an R length of zero.
	ErrSigZeroRLen = ErrorKind("ErrSigZeroRLen")

	// ErrSigNegativeR is returned when a signature that should be a DER
	// signature has a negative value for R.
	ErrSigNegativeR = ErrorKind("ErrSigNegativeR")

	// ErrSigTooMuchRPadding is returned when a signature that should be a
	// DER signature has too much padding for R.
	ErrSigTooMuchRPadding = ErrorKind("ErrSigTooMuchRPadding")

	// ErrSigRIsZero is returned when a signature has R set to the value
	// zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigRTooBig is returned when a signature has R with a value that is
	// greater than or equal to the group order.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigInvalidSIntID is returned when a signature that should be a DER
	// signature does not have the expected ASN.1 integer ID for S.
	ErrSigInvalidSIntID = ErrorKind("ErrSigInvalidSIntID")

	// ErrSigZeroSLen is returned when a signature that should be a DER
	// signature has an S length of zero.
	ErrSigZeroSLen = ErrorKind("ErrSigZeroSLen")

	// ErrSigNegativeS is returned when a signature that should be a DER
	// signature has a negative value for S.
	ErrSigNegativeS = ErrorKind("ErrSigNegativeS")

	// ErrSigTooMuchSPadding is returned when a signature that should be a
	// DER signature has too much padding for S.
	ErrSigTooMuchSPadding = ErrorKind("ErrSigTooMuchSPadding")

	// ErrSigSIsZero is returned when a signature has S set to the value
	// zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigSTooBig is returned when a signature has S with a value that is
	// greater than or equal to the group order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")

	// ErrSigInvalidLen is returned when a compact or recovered signature
	// does not have the expected length.
	ErrSigInvalidLen = ErrorKind("ErrSigInvalidLen")

	// ErrSigInvalidRecoveryCode is returned when a signature carries a
	// recovery code outside of [0, 3] or a compact header outside of the
	// allowed range.
	ErrSigInvalidRecoveryCode = ErrorKind("ErrSigInvalidRecoveryCode")

	// ErrSigMissingRecoveryCode is returned when a recovery code is required
	// but the signature does not carry one.
	ErrSigMissingRecoveryCode = ErrorKind("ErrSigMissingRecoveryCode")

	// ErrSigOverflowsPrime is returned when a signature that requires key
	// recovery specifies that R + N is the x coordinate while that value is
	// not less than the field prime.
	ErrSigOverflowsPrime = ErrorKind("ErrSigOverflowsPrime")

	// ErrPointNotOnCurve is returned when attempting to recover a public key
	// from a signature whose R does not correspond to a curve point.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrPointAtInfinity is returned when verification or key recovery
	// produces the point at infinity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrSigHighS is returned when low-S is enforced and S is greater than
	// half the group order.
	ErrSigHighS = ErrorKind("ErrSigHighS")

	// ErrSigMismatch is returned when the verification equation does not
	// hold, meaning the signature was not produced by the key over the
	// message.
	ErrSigMismatch = ErrorKind("ErrSigMismatch")

	// ErrMessageTooLong is returned when a message digest handed to the
	// engine exceeds the maximum accepted size.
	ErrMessageTooLong = ErrorKind("ErrMessageTooLong")

	// ErrInvalidFormat is returned for an unknown signature format.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrRecoveryUnsupported is returned when public key recovery is
	// requested for a curve whose cofactor makes it ambiguous.
	ErrRecoveryUnsupported = ErrorKind("ErrRecoveryUnsupported")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to an ECDSA signature.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
