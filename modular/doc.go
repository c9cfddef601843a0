// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package modular implements arithmetic in prime fields.

A single generic Field type serves every prime modulus.  The type parameter is
a tag that never carries data; it exists so that elements of different fields
are distinct Go types even though they share a representation.  For example,
the secp256k1 package instantiates the field twice, once for the coordinate
prime and once for the group order:

	type coordTag struct{}
	type orderTag struct{}

	var Fp = modular.MustNewField[coordTag](p)
	var Fn = modular.MustNewField[orderTag](n)

Mixing an Fp element into an Fn operation is then a compile-time error.

Elements are immutable values and are always reduced.  Every operation returns
a fresh element and never modifies its inputs, so elements may be freely
shared between goroutines.

Square roots dispatch on the shape of the prime: the closed form a^((p+1)/4)
when p = 3 mod 4, Atkin's method when p = 5 mod 8, the method of Kong et al.
when p = 9 mod 16 and Tonelli-Shanks otherwise.  Every root is checked by
squaring before it is returned.

# Errors

Errors returned by this package are of type modular.Error and wrap one of the
ErrorKind constants, so callers can use errors.Is to test for a specific kind
such as ErrNotInvertible or ErrNoSquareRoot.
*/
package modular
