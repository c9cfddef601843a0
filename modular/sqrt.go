// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"fmt"
	"math/big"
)

// sqrtFunc is the signature shared by all square root strategies.
type sqrtFunc[T any] func(*Field[T], Element[T]) (Element[T], error)

// noSquareRoot returns the error used when a has no square root in the field.
func noSquareRoot[T any](a Element[T]) error {
	str := fmt.Sprintf("%x is not a quadratic residue", a.value())
	return makeError(ErrNoSquareRoot, str)
}

// checkRoot returns root when it squares to a and an error otherwise.
func checkRoot[T any](f *Field[T], root, a Element[T]) (Element[T], error) {
	if !f.Equal(f.Sqr(root), a) {
		return f.zero, noSquareRoot(a)
	}
	return root, nil
}

// chooseSqrt picks the fastest square root method available for the field
// prime and precomputes any constants it needs.
func chooseSqrt[T any](f *Field[T]) (sqrtFunc[T], error) {
	switch {
	case new(big.Int).Mod(f.p, bigFour).Cmp(bigThree) == 0:
		return sqrt3Mod4(f), nil

	case new(big.Int).Mod(f.p, bigEight).Cmp(bigFive) == 0:
		return sqrt5Mod8(f), nil

	case new(big.Int).Mod(f.p, big16).Cmp(bigNine) == 0:
		return sqrt9Mod16(f)
	}

	return tonelliShanks(f)
}

// sqrt3Mod4 returns the closed form a^((p+1)/4) root for p = 3 (mod 4).
func sqrt3Mod4[T any](f *Field[T]) sqrtFunc[T] {
	e := new(big.Int).Add(f.p, bigOne)
	e.Rsh(e, 2)
	return func(f *Field[T], a Element[T]) (Element[T], error) {
		return checkRoot(f, f.pow(a, e), a)
	}
}

// sqrt5Mod8 returns Atkin's method for p = 5 (mod 8).
func sqrt5Mod8[T any](f *Field[T]) sqrtFunc[T] {
	e := new(big.Int).Sub(f.p, bigFive)
	e.Rsh(e, 3)
	return func(f *Field[T], a Element[T]) (Element[T], error) {
		a2 := f.MulInt(a, 2)
		v := f.pow(a2, e)
		av := f.Mul(a, v)
		i := f.Mul(f.MulInt(av, 2), v)
		root := f.Mul(av, f.Sub(i, f.one))
		return checkRoot(f, root, a)
	}
}

// sqrt9Mod16 returns the constant-count method of Kong et al. for
// p = 9 (mod 16).  The three auxiliary roots of unity are found once with
// Tonelli-Shanks.
func sqrt9Mod16[T any](f *Field[T]) (sqrtFunc[T], error) {
	ts, err := tonelliShanks(f)
	if err != nil {
		return nil, err
	}

	// c1 = sqrt(-1), c2 = sqrt(c1), c3 = sqrt(-c1), c4 = (p+7)/16
	c1, err := ts(f, f.Neg(f.one))
	if err != nil {
		return nil, err
	}
	c2, err := ts(f, c1)
	if err != nil {
		return nil, err
	}
	c3, err := ts(f, f.Neg(c1))
	if err != nil {
		return nil, err
	}
	c4 := new(big.Int).Add(f.p, bigSeven)
	c4.Rsh(c4, 4)

	return func(f *Field[T], a Element[T]) (Element[T], error) {
		tv1 := f.pow(a, c4)
		tv2 := f.Mul(tv1, c1)
		tv3 := f.Mul(tv1, c2)
		tv4 := f.Mul(tv1, c3)
		if f.Equal(f.Sqr(tv2), a) {
			tv1 = tv2
		}
		if f.Equal(f.Sqr(tv3), a) {
			tv2 = tv3
		} else {
			tv2 = tv4
		}
		root := tv1
		if f.Equal(f.Sqr(tv2), a) {
			root = tv2
		}
		return checkRoot(f, root, a)
	}, nil
}

// tonelliShanks returns the general Tonelli-Shanks square root for any odd
// prime.  The quadratic non-residue it relies on is located once with the
// Legendre symbol.
func tonelliShanks[T any](f *Field[T]) (sqrtFunc[T], error) {
	// Write p - 1 = q * 2^s with q odd.
	q := new(big.Int).Sub(f.p, bigOne)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find the smallest non-residue z.  Half of all non-zero elements are
	// non-residues, so the search ends quickly for any real prime.
	z := f.NewInt(2)
	for f.Legendre(z) != -1 {
		z = f.Add(z, f.one)
		if z.IsZero() {
			return nil, makeError(ErrInvalidModulus, "no quadratic "+
				"non-residue found")
		}
	}
	cz := f.pow(z, q)
	qPlus1Div2 := new(big.Int).Add(q, bigOne)
	qPlus1Div2.Rsh(qPlus1Div2, 1)

	return func(f *Field[T], a Element[T]) (Element[T], error) {
		if a.IsZero() {
			return f.zero, nil
		}
		if f.Legendre(a) != 1 {
			return f.zero, noSquareRoot(a)
		}

		m := s
		c := cz
		t := f.pow(a, q)
		r := f.pow(a, qPlus1Div2)
		for !f.Equal(t, f.one) {
			// Find the least i such that t^(2^i) = 1.
			i := 0
			for t2 := t; !f.Equal(t2, f.one); t2 = f.Sqr(t2) {
				i++
				if i == m {
					return f.zero, noSquareRoot(a)
				}
			}

			b := c
			for j := 0; j < m-i-1; j++ {
				b = f.Sqr(b)
			}
			m = i
			c = f.Sqr(b)
			t = f.Mul(t, c)
			r = f.Mul(r, b)
		}
		return checkRoot(f, r, a)
	}, nil
}
