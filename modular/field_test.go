// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/stretchr/testify/require"
)

type testTag struct{}

// secp256k1 coordinate field prime used as a large real-world modulus.
var testP, _ = new(big.Int).SetString("ffffffffffffffffffffffffffffffff"+
	"fffffffffffffffffffffffefffffc2f", 16)

// TestNewField ensures invalid moduli are rejected with the expected error
// kind.
func TestNewField(t *testing.T) {
	tests := []struct {
		name string
		p    *big.Int
		err  error
	}{
		{"nil", nil, ErrInvalidModulus},
		{"one", big.NewInt(1), ErrInvalidModulus},
		{"two", big.NewInt(2), ErrInvalidModulus},
		{"even", big.NewInt(100), ErrInvalidModulus},
		{"odd composite", big.NewInt(15), ErrInvalidModulus},
		{"three", big.NewInt(3), nil},
		{"secp256k1 p", testP, nil},
	}

	for _, test := range tests {
		f, err := NewField[testTag](test.p)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if f.Order().Cmp(test.p) != 0 {
			t.Errorf("%s: wrong order %v", test.name, f.Order())
		}
	}

	require.Panics(t, func() { MustNewField[testTag](big.NewInt(9)) })
}

// TestFieldArithmetic checks the basic ring laws against math/big on random
// inputs.
func TestFieldArithmetic(t *testing.T) {
	f := MustNewField[testTag](testP)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		av := new(big.Int).Rand(rng, testP)
		bv := new(big.Int).Rand(rng, testP)
		a, b := f.New(av), f.New(bv)

		want := new(big.Int).Add(av, bv)
		want.Mod(want, testP)
		requireBigEqual(t, want, f.Add(a, b).Big(), "add")

		want = new(big.Int).Sub(av, bv)
		want.Mod(want, testP)
		requireBigEqual(t, want, f.Sub(a, b).Big(), "sub")

		want = new(big.Int).Mul(av, bv)
		want.Mod(want, testP)
		requireBigEqual(t, want, f.Mul(a, b).Big(), "mul")

		require.True(t, f.Add(a, f.Neg(a)).IsZero(), "neg")
		require.True(t, f.Equal(f.Sqr(a), f.Mul(a, a)), "sqr")

		if a.IsZero() {
			continue
		}
		inv, err := f.Inv(a)
		require.NoError(t, err)
		require.True(t, f.Equal(f.Mul(a, inv), f.One()), "inverse law")

		want = new(big.Int).ModInverse(av, testP)
		requireBigEqual(t, want, inv.Big(), "inverse")

		q, err := f.Div(b, a)
		require.NoError(t, err)
		require.True(t, f.Equal(f.Mul(q, a), b), "div")
	}
}

// TestFieldReduction ensures out of range and negative inputs are reduced to
// their canonical representatives.
func TestFieldReduction(t *testing.T) {
	f := MustNewField[testTag](big.NewInt(17))

	require.Equal(t, int64(16), f.NewInt(-1).Big().Int64())
	require.Equal(t, int64(3), f.NewInt(37).Big().Int64())
	require.True(t, f.NewInt(17).IsZero())
	require.True(t, f.IsValid(big.NewInt(16)))
	require.False(t, f.IsValid(big.NewInt(17)))
	require.False(t, f.IsValid(big.NewInt(-1)))

	var zero Element[testTag]
	require.True(t, zero.IsZero())
	require.True(t, f.Equal(zero, f.Zero()))
	require.Equal(t, "0", zero.String())
}

// TestFieldInvZero ensures zero is reported as not invertible.
func TestFieldInvZero(t *testing.T) {
	f := MustNewField[testTag](testP)
	_, err := f.Inv(f.Zero())
	require.ErrorIs(t, err, ErrNotInvertible)

	_, err = f.Div(f.One(), f.Zero())
	require.ErrorIs(t, err, ErrNotInvertible)
}

// TestFieldPow ensures exponentiation matches math/big and rejects negative
// exponents.
func TestFieldPow(t *testing.T) {
	f := MustNewField[testTag](testP)
	a := f.NewInt(3)

	got, err := f.Pow(a, big.NewInt(0))
	require.NoError(t, err)
	require.True(t, f.Equal(got, f.One()))

	e := new(big.Int).Sub(testP, big.NewInt(2))
	got, err = f.Pow(a, e)
	require.NoError(t, err)
	inv, err := f.Inv(a)
	require.NoError(t, err)
	require.True(t, f.Equal(got, inv), "fermat inverse")

	_, err = f.Pow(a, big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeExponent)
}

// TestFieldBytes ensures fixed width encoding round trips and that decoding
// enforces both the length and the range.
func TestFieldBytes(t *testing.T) {
	f := MustNewField[testTag](testP)
	require.Equal(t, 32, f.Bytes())
	require.Equal(t, 256, f.Bits())

	one := f.ToBytes(f.One())
	require.Len(t, one, 32)
	require.Equal(t, byte(1), one[31])

	got, err := f.FromBytes(one)
	require.NoError(t, err)
	require.True(t, f.Equal(got, f.One()))

	_, err = f.FromBytes(one[1:])
	require.ErrorIs(t, err, ErrInvalidLen)

	_, err = f.FromBytes(testP.Bytes())
	require.ErrorIs(t, err, ErrOutOfRange)

	reduced := f.FromBytesReduce(append([]byte{0x01}, testP.Bytes()...))
	want := new(big.Int).Lsh(big.NewInt(1), 256)
	want.Mod(want, testP)
	requireBigEqual(t, want, reduced.Big())

	buf := make([]byte, 32)
	f.PutBytes(f.NewInt(0x0102), buf)
	require.Equal(t, []byte{0x01, 0x02}, buf[30:])
}

// TestSqrtSmallPrimes exhaustively checks square roots for primes that select
// each of the available algorithms.
func TestSqrtSmallPrimes(t *testing.T) {
	primes := []int64{
		3, 7, 11, 19, // 3 mod 4
		5, 13, 29, 37, // 5 mod 8
		41, 73, 89, // 9 mod 16
		17, 97, 113, 257, // 1 mod 16, Tonelli-Shanks
	}

	for _, p := range primes {
		f := MustNewField[testTag](big.NewInt(p))
		squares := make(map[int64]bool)
		for i := int64(0); i < p; i++ {
			squares[(i*i)%p] = true
		}

		for i := int64(0); i < p; i++ {
			a := f.NewInt(i)
			root, err := f.Sqrt(a)
			if !squares[i] {
				if !errors.Is(err, ErrNoSquareRoot) {
					t.Errorf("p=%d: sqrt(%d) expected no root, got %v "+
						"(err %v)", p, i, root, err)
				}
				if f.Legendre(a) != -1 {
					t.Errorf("p=%d: legendre(%d) != -1", p, i)
				}
				continue
			}
			if err != nil {
				t.Errorf("p=%d: sqrt(%d) unexpected err: %v", p, i, err)
				continue
			}
			if !f.Equal(f.Sqr(root), a) {
				t.Errorf("p=%d: sqrt(%d) = %v does not square back", p, i,
					root)
			}
			want := 1
			if i == 0 {
				want = 0
			}
			if got := f.Legendre(a); got != want {
				t.Errorf("p=%d: legendre(%d) = %d, want %d", p, i, got,
					want)
			}
		}
	}
}

// TestInvertBatch ensures batch inversion matches individual inversion and
// maps zeros to zero.
func TestInvertBatch(t *testing.T) {
	f := MustNewField[testTag](testP)
	rng := rand.New(rand.NewSource(2))

	require.Empty(t, f.InvertBatch(nil))

	elems := make([]Element[testTag], 20)
	for i := range elems {
		if i%5 == 0 {
			continue
		}
		elems[i] = f.New(new(big.Int).Rand(rng, testP))
	}

	got := f.InvertBatch(elems)
	require.Len(t, got, len(elems))
	for i, e := range elems {
		if e.IsZero() {
			require.True(t, got[i].IsZero(), "index %d", i)
			continue
		}
		want, err := f.Inv(e)
		require.NoError(t, err)
		require.True(t, f.Equal(want, got[i]), "index %d", i)
	}

	allZero := f.InvertBatch(make([]Element[testTag], 3))
	for _, e := range allZero {
		require.True(t, e.IsZero())
	}
}

// TestElementWipe ensures wiping a cloned element clears its words without
// touching the element it was cloned from.
func TestElementWipe(t *testing.T) {
	f := MustNewField[testTag](testP)
	orig := f.New(new(big.Int).Sub(testP, big.NewInt(2)))
	want := orig.Big()

	c := orig.Clone()
	require.NotSame(t, orig.n, c.n)
	words := c.n.Bits()
	require.NotEmpty(t, words)

	c.Wipe()
	require.True(t, c.IsZero())
	for i, w := range words {
		require.Zero(t, w, "word %d", i)
	}
	requireBigEqual(t, want, orig.Big(), "original")

	var zero Element[testTag]
	zero.Wipe()
	require.True(t, zero.IsZero())
}

// TestFieldAgainstGnark cross checks multiplication, inversion and square
// roots in the secp256k1 coordinate field against an independent
// implementation.
func TestFieldAgainstGnark(t *testing.T) {
	f := MustNewField[testTag](testP)
	requireBigEqual(t, fp.Modulus(), f.Order())

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		av := new(big.Int).Rand(rng, testP)
		bv := new(big.Int).Rand(rng, testP)
		a, b := f.New(av), f.New(bv)

		var ga, gb, gr fp.Element
		ga.SetBigInt(av)
		gb.SetBigInt(bv)

		gr.Mul(&ga, &gb)
		requireBigEqual(t, gr.BigInt(new(big.Int)), f.Mul(a, b).Big())

		gr.Inverse(&ga)
		inv, err := f.Inv(a)
		if av.Sign() == 0 {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		requireBigEqual(t, gr.BigInt(new(big.Int)), inv.Big())

		root, err := f.Sqrt(a)
		if gr.Sqrt(&ga) == nil {
			require.ErrorIs(t, err, ErrNoSquareRoot)
			continue
		}
		require.NoError(t, err)
		// Either root is acceptable.
		g := gr.BigInt(new(big.Int))
		gNeg := new(big.Int).Sub(testP, g)
		r := root.Big()
		require.True(t, r.Cmp(g) == 0 || r.Cmp(gNeg) == 0)
	}
}

// requireBigEqual fails the test when the two integers differ.
func requireBigEqual(t *testing.T, want, got *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Zero(t, want.Cmp(got), msgAndArgs...)
}
