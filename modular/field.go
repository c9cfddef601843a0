// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"fmt"
	"math/big"
)

var (
	bigZero  = big.NewInt(0)
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigFive  = big.NewInt(5)
	bigSeven = big.NewInt(7)
	bigEight = big.NewInt(8)
	bigNine  = big.NewInt(9)
	big16    = big.NewInt(16)
)

// Element is an integer reduced modulo the prime of the Field that created it.
// The zero value is the additive identity of every field.
//
// Elements are immutable.  The wrapped integer is never modified once the
// element has been handed out, so copies of an Element share it safely.
type Element[T any] struct {
	n *big.Int
}

// value returns the wrapped integer, treating the zero value as 0.  The result
// must not be modified.
func (e Element[T]) value() *big.Int {
	if e.n == nil {
		return bigZero
	}
	return e.n
}

// Big returns a copy of the element as a big integer in [0, p).
func (e Element[T]) Big() *big.Int {
	return new(big.Int).Set(e.value())
}

// Clone returns an element holding its own copy of the underlying integer.
func (e Element[T]) Clone() Element[T] {
	return Element[T]{n: new(big.Int).Set(e.value())}
}

// Wipe overwrites the words of the underlying integer and resets the element
// to zero.  Elements sharing the integer observe the change, so it is only
// meant for an element obtained from Clone.
func (e *Element[T]) Wipe() {
	if e.n != nil {
		clear(e.n.Bits())
		e.n.SetInt64(0)
	}
	e.n = nil
}

// IsZero returns whether or not the element is the additive identity.
func (e Element[T]) IsZero() bool {
	return e.n == nil || e.n.Sign() == 0
}

// IsOdd returns whether or not the canonical integer representative of the
// element is odd.
func (e Element[T]) IsOdd() bool {
	return e.value().Bit(0) == 1
}

// Cmp compares the canonical integer representatives of the two elements and
// returns -1, 0 or +1.
func (e Element[T]) Cmp(other Element[T]) int {
	return e.value().Cmp(other.value())
}

// String returns the element as a hexadecimal string without leading zeros.
func (e Element[T]) String() string {
	return e.value().Text(16)
}

// Field describes the integers modulo an odd prime p.  All arithmetic on
// Element values of the same tag type goes through the Field so the modulus
// is never confused.
type Field[T any] struct {
	p       *big.Int
	bits    int
	byteLen int

	// pMinus1Div2 is the exponent used for Euler's criterion.
	pMinus1Div2 *big.Int

	// sqrt is selected once when the field is created based on the residue
	// of the prime modulo 4, 8 and 16.
	sqrt func(*Field[T], Element[T]) (Element[T], error)

	// zero and one are cached since nearly every algorithm needs them.
	zero Element[T]
	one  Element[T]
}

// NewField returns a field for the provided modulus.  The modulus must be an
// odd prime greater than 2.  Primality is checked probabilistically.
func NewField[T any](p *big.Int) (*Field[T], error) {
	if p == nil || p.Cmp(bigThree) < 0 || p.Bit(0) == 0 {
		return nil, makeError(ErrInvalidModulus, "modulus must be an odd "+
			"integer greater than 2")
	}
	if !p.ProbablyPrime(20) {
		str := fmt.Sprintf("modulus %x is not prime", p)
		return nil, makeError(ErrInvalidModulus, str)
	}

	f := &Field[T]{
		p:       new(big.Int).Set(p),
		bits:    p.BitLen(),
		byteLen: (p.BitLen() + 7) / 8,
	}
	f.pMinus1Div2 = new(big.Int).Rsh(new(big.Int).Sub(f.p, bigOne), 1)
	f.zero = Element[T]{n: new(big.Int)}
	f.one = Element[T]{n: big.NewInt(1)}

	sqrt, err := chooseSqrt(f)
	if err != nil {
		return nil, err
	}
	f.sqrt = sqrt
	return f, nil
}

// MustNewField is like NewField but panics when the modulus is invalid.  It is
// intended for package-level field definitions with known-good primes.
func MustNewField[T any](p *big.Int) *Field[T] {
	f, err := NewField[T](p)
	if err != nil {
		panic(err)
	}
	return f
}

// Order returns a copy of the field prime.
func (f *Field[T]) Order() *big.Int {
	return new(big.Int).Set(f.p)
}

// Bits returns the bit length of the field prime.
func (f *Field[T]) Bits() int {
	return f.bits
}

// Bytes returns the fixed width in bytes of a serialized element.
func (f *Field[T]) Bytes() int {
	return f.byteLen
}

// Zero returns the additive identity.
func (f *Field[T]) Zero() Element[T] {
	return f.zero
}

// One returns the multiplicative identity.
func (f *Field[T]) One() Element[T] {
	return f.one
}

// wrap takes ownership of an already reduced integer.
func (f *Field[T]) wrap(n *big.Int) Element[T] {
	return Element[T]{n: n}
}

// New returns the element congruent to v modulo p.  Negative values are
// reduced to their non-negative representative.  The passed integer is not
// modified or retained.
func (f *Field[T]) New(v *big.Int) Element[T] {
	return f.wrap(new(big.Int).Mod(v, f.p))
}

// NewInt returns the element congruent to v modulo p.
func (f *Field[T]) NewInt(v int64) Element[T] {
	return f.New(big.NewInt(v))
}

// IsValid returns whether v is already a canonical element, that is, whether
// 0 <= v < p.
func (f *Field[T]) IsValid(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(f.p) < 0
}

// FromBytes interprets b as a big-endian integer of exactly the field width
// and returns it as an element.  Values that are not already reduced are
// rejected rather than silently wrapped.
func (f *Field[T]) FromBytes(b []byte) (Element[T], error) {
	if len(b) != f.byteLen {
		str := fmt.Sprintf("malformed field element: expected %d bytes, "+
			"got %d", f.byteLen, len(b))
		return f.zero, makeError(ErrInvalidLen, str)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.p) >= 0 {
		str := fmt.Sprintf("field element %x is not less than the field "+
			"prime", b)
		return f.zero, makeError(ErrOutOfRange, str)
	}
	return f.wrap(v), nil
}

// FromBytesReduce interprets b as a big-endian integer of any length and
// returns it reduced modulo p.
func (f *Field[T]) FromBytesReduce(b []byte) Element[T] {
	v := new(big.Int).SetBytes(b)
	return f.wrap(v.Mod(v, f.p))
}

// ToBytes returns the big-endian encoding of the element padded to the fixed
// field width.
func (f *Field[T]) ToBytes(a Element[T]) []byte {
	return a.value().FillBytes(make([]byte, f.byteLen))
}

// PutBytes writes the fixed-width big-endian encoding of the element into b,
// which must be exactly Bytes() long.
func (f *Field[T]) PutBytes(a Element[T], b []byte) {
	a.value().FillBytes(b[:f.byteLen])
}

// Equal returns whether or not the two elements are the same.
func (f *Field[T]) Equal(a, b Element[T]) bool {
	return a.value().Cmp(b.value()) == 0
}

// Add returns a + b (mod p).
func (f *Field[T]) Add(a, b Element[T]) Element[T] {
	r := new(big.Int).Add(a.value(), b.value())
	if r.Cmp(f.p) >= 0 {
		r.Sub(r, f.p)
	}
	return f.wrap(r)
}

// Sub returns a - b (mod p).
func (f *Field[T]) Sub(a, b Element[T]) Element[T] {
	r := new(big.Int).Sub(a.value(), b.value())
	if r.Sign() < 0 {
		r.Add(r, f.p)
	}
	return f.wrap(r)
}

// Neg returns -a (mod p).
func (f *Field[T]) Neg(a Element[T]) Element[T] {
	if a.IsZero() {
		return f.zero
	}
	return f.wrap(new(big.Int).Sub(f.p, a.value()))
}

// Mul returns a * b (mod p).
func (f *Field[T]) Mul(a, b Element[T]) Element[T] {
	r := new(big.Int).Mul(a.value(), b.value())
	return f.wrap(r.Mod(r, f.p))
}

// MulInt returns a * v (mod p) for a small integer v.
func (f *Field[T]) MulInt(a Element[T], v int64) Element[T] {
	r := new(big.Int).Mul(a.value(), big.NewInt(v))
	return f.wrap(r.Mod(r, f.p))
}

// Sqr returns a^2 (mod p).
func (f *Field[T]) Sqr(a Element[T]) Element[T] {
	return f.Mul(a, a)
}

// Pow returns a^e (mod p).  The exponent must not be negative.
func (f *Field[T]) Pow(a Element[T], e *big.Int) (Element[T], error) {
	if e.Sign() < 0 {
		return f.zero, makeError(ErrNegativeExponent, "negative exponents "+
			"are not supported")
	}
	return f.pow(a, e), nil
}

// pow is Pow without the exponent check for internal callers that only use
// known non-negative exponents.
func (f *Field[T]) pow(a Element[T], e *big.Int) Element[T] {
	return f.wrap(new(big.Int).Exp(a.value(), e, f.p))
}

// Inv returns the multiplicative inverse of a using the extended Euclidean
// algorithm.  Zero has no inverse.
func (f *Field[T]) Inv(a Element[T]) (Element[T], error) {
	if a.IsZero() {
		return f.zero, makeError(ErrNotInvertible, "zero element is not "+
			"invertible")
	}

	// Track only the Bezout coefficient of a since the one for p is never
	// needed.  Invariant: x*a = b (mod p) and u*a = r (mod p).
	var (
		r = new(big.Int).Set(a.value())
		b = new(big.Int).Set(f.p)
		x = new(big.Int)
		u = big.NewInt(1)
		q = new(big.Int)
		m = new(big.Int)
	)
	for r.Sign() != 0 {
		q.QuoRem(b, r, m)
		b, r, m = r, m, b

		// x, u = u, x - q*u
		t := new(big.Int).Mul(q, u)
		t.Sub(x, t)
		x, u = u, t
	}
	if b.Cmp(bigOne) != 0 {
		str := fmt.Sprintf("element %x shares a factor with the modulus",
			a.value())
		return f.zero, makeError(ErrNotInvertible, str)
	}
	return f.wrap(x.Mod(x, f.p)), nil
}

// Div returns a / b (mod p).
func (f *Field[T]) Div(a, b Element[T]) (Element[T], error) {
	inv, err := f.Inv(b)
	if err != nil {
		return f.zero, err
	}
	return f.Mul(a, inv), nil
}

// Legendre returns the Legendre symbol of a: 1 for a non-zero quadratic
// residue, -1 for a non-residue and 0 for zero.
func (f *Field[T]) Legendre(a Element[T]) int {
	if a.IsZero() {
		return 0
	}
	if f.Equal(f.pow(a, f.pMinus1Div2), f.one) {
		return 1
	}
	return -1
}

// Sqrt returns a square root of a.  Which of the two roots is returned depends
// on the algorithm selected for the prime; callers that need a particular
// parity must negate the result themselves.
func (f *Field[T]) Sqrt(a Element[T]) (Element[T], error) {
	return f.sqrt(f, a)
}
