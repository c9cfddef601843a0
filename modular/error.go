// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidModulus is returned when a field is requested for a modulus
	// that can't possibly be an odd prime.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrNotInvertible is returned when attempting to invert an element that
	// has no multiplicative inverse, which for a prime field is only zero.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrNoSquareRoot is returned when the element is a quadratic non-residue
	// or the computed root fails verification.
	ErrNoSquareRoot = ErrorKind("ErrNoSquareRoot")

	// ErrInvalidLen is returned when a serialized element does not have the
	// fixed width of the field.
	ErrInvalidLen = ErrorKind("ErrInvalidLen")

	// ErrOutOfRange is returned when a serialized element is not reduced
	// modulo the field prime.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrNegativeExponent is returned when exponentiation is requested with
	// a negative power.
	ErrNegativeExponent = ErrorKind("ErrNegativeExponent")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to prime field arithmetic.  It has full
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
