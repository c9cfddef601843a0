// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hmacdrbg implements the HMAC-SHA256 deterministic random bit
// generator used to derive RFC 6979 signing nonces.
package hmacdrbg

import (
	"fmt"

	"github.com/cloreai/clrsign/chainhash"
)

// MaxIterations is the number of Generate calls permitted between resets.
const MaxIterations = 1000

// ErrorKind identifies a kind of error.
type ErrorKind string

const (
	// ErrExhausted is returned when the generator has produced
	// MaxIterations outputs without being reset.  The caller must treat it
	// as fatal rather than retry.
	ErrExhausted = ErrorKind("ErrExhausted")

	// ErrInvalidLength is returned when the requested output length is not
	// positive.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a DRBG failure.
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

var (
	byte0 = []byte{0x00}
	byte1 = []byte{0x01}
)

// DRBG is an HMAC-SHA256 deterministic random bit generator with a fixed
// output length.  It is not safe for concurrent use.
type DRBG struct {
	v        [chainhash.Size]byte
	k        [chainhash.Size]byte
	iter     int
	qByteLen int
}

// New returns a generator producing at least qByteLen bytes per call.  The
// state starts out reset.
func New(qByteLen int) (*DRBG, error) {
	if qByteLen <= 0 {
		str := fmt.Sprintf("output length must be positive, got %d",
			qByteLen)
		return nil, Error{Err: ErrInvalidLength, Description: str}
	}
	d := &DRBG{qByteLen: qByteLen}
	d.Reset()
	return d, nil
}

// Reset sets V to all 0x01 bytes, K to all zero bytes and clears the
// iteration counter.
func (d *DRBG) Reset() {
	for i := range d.v {
		d.v[i] = 0x01
		d.k[i] = 0x00
	}
	d.iter = 0
}

// h returns HMAC_K(V || msgs...).
func (d *DRBG) h(msgs ...[]byte) [chainhash.Size]byte {
	parts := make([][]byte, 0, len(msgs)+1)
	parts = append(parts, d.v[:])
	parts = append(parts, msgs...)
	return chainhash.HMAC(d.k[:], parts...)
}

// Reseed mixes seed into the state.  An empty seed performs only the first
// half of the update.
func (d *DRBG) Reseed(seed []byte) {
	d.k = d.h(byte0, seed)
	d.v = d.h()
	if len(seed) == 0 {
		return
	}
	d.k = d.h(byte1, seed)
	d.v = d.h()
}

// Generate returns the next output block.  It fails with ErrExhausted once
// MaxIterations outputs have been produced since the last reset.
func (d *DRBG) Generate() ([]byte, error) {
	if d.iter >= MaxIterations {
		str := fmt.Sprintf("drbg: tried max amount of iterations (%d)",
			MaxIterations)
		return nil, Error{Err: ErrExhausted, Description: str}
	}
	d.iter++

	out := make([]byte, 0, d.qByteLen+chainhash.Size)
	for len(out) < d.qByteLen {
		d.v = d.h()
		out = append(out, d.v[:]...)
	}
	return out, nil
}

// GenerateUntil resets the generator, seeds it and feeds outputs to accept
// until it reports success, reseeding with an empty seed after each
// rejection.  The generator is reset again before returning so no secret
// state lingers.
func GenerateUntil[R any](d *DRBG, seed []byte,
	accept func([]byte) (R, bool)) (R, error) {

	defer d.Reset()

	d.Reset()
	d.Reseed(seed)
	for {
		out, err := d.Generate()
		if err != nil {
			var zero R
			return zero, err
		}
		if res, ok := accept(out); ok {
			return res, nil
		}
		d.Reseed(nil)
	}
}
