// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgsign

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMissingInput indicates a required claim field was empty.
	ErrMissingInput = ErrorKind("ErrMissingInput")

	// ErrInvalidEVMAddress indicates the destination is not a 0x-prefixed
	// 20-byte hex Ethereum address.
	ErrInvalidEVMAddress = ErrorKind("ErrInvalidEVMAddress")

	// ErrInvalidAddress indicates the source address does not decode or
	// belongs to another network.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrInvalidKey indicates the private key could not be decoded for the
	// network.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidSignature indicates a signature is not valid base64 or is
	// not a well-formed signature.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to message signing.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
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
