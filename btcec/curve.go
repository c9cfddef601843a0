// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
//   [RCB]: Complete addition formulas for prime order elliptic curves
//     https://eprint.iacr.org/2015/1060

import (
	"math/big"

	"github.com/cloreai/clrsign/modular"
)

// coordTag and scalarTag distinguish the two prime fields used by the curve
// so that a coordinate can never be passed where a scalar is expected.
type (
	coordTag  struct{}
	scalarTag struct{}
)

// FieldVal is an element of the secp256k1 coordinate field, the integers
// modulo the field prime P.
type FieldVal = modular.Element[coordTag]

// ModNScalar is an element of the secp256k1 scalar field, the integers
// modulo the group order N.
type ModNScalar = modular.Element[scalarTag]

// fromHex converts the passed hex string into a big integer pointer and will
// panic is there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called for initialization purposes.
func fromHex(s string) *big.Int {
	if s == "" {
		return big.NewInt(0)
	}
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	if neg {
		r.Neg(r)
	}
	return r
}

var (
	curveP = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	curveN = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// Fp is the coordinate field of secp256k1.
	Fp = modular.MustNewField[coordTag](curveP)

	// Fn is the scalar field of secp256k1.
	Fn = modular.MustNewField[scalarTag](curveN)
)

// CurveParams holds the domain parameters of the curve y^2 = x^3 + ax + b
// together with the constants of its efficiently computable endomorphism.
type CurveParams struct {
	Name string

	// P is the prime of the coordinate field and N the order of the group
	// generated by G.
	P *big.Int
	N *big.Int

	A, B FieldVal

	// Gx and Gy are the affine coordinates of the generator.
	Gx, Gy FieldVal

	// H is the cofactor.
	H int64

	// BitSize is the bit length of N and ByteSize the width of serialized
	// coordinates and scalars.
	BitSize  int
	ByteSize int

	// Beta is a non-trivial cube root of unity in Fp and Lambda the matching
	// cube root of unity in Fn such that lambda*(x, y) = (beta*x, y).
	Beta   FieldVal
	Lambda ModNScalar

	// a1, b1, a2 and b2 form a reduced basis of the lattice
	// {(x, y) : x + y*lambda = 0 (mod N)} used to split scalars.
	a1, b1, a2, b2 *big.Int

	// b3 is 3*B as required by the complete formulas.
	b3 FieldVal

	// endoBound is 2^(ceil(bits(N)/2)); both halves of a split scalar must
	// be below it.
	endoBound *big.Int
	endoBits  int
}

var secp256k1 = func() *CurveParams {
	c := &CurveParams{
		Name:     "secp256k1",
		P:        curveP,
		N:        curveN,
		A:        Fp.Zero(),
		B:        Fp.NewInt(7),
		Gx:       Fp.New(fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")),
		Gy:       Fp.New(fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")),
		H:        1,
		BitSize:  curveN.BitLen(),
		ByteSize: Fn.Bytes(),
		Beta:     Fp.New(fromHex("7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee")),
		Lambda:   Fn.New(fromHex("5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72")),
		a1:       fromHex("3086d221a7d46bcde86c90e49284eb15"),
		b1:       fromHex("-e4437ed6010e88286f547fa90abfe4c3"),
		a2:       fromHex("114ca50f7a8e2f3f657c1108d9d44cfd8"),
		b2:       fromHex("3086d221a7d46bcde86c90e49284eb15"),
	}
	c.b3 = Fp.MulInt(c.B, 3)
	c.endoBits = (c.BitSize + 1) / 2
	c.endoBound = new(big.Int).Lsh(big.NewInt(1), uint(c.endoBits))
	return c
}()

// Params returns the secp256k1 domain parameters.  The returned value is
// shared and must not be modified.
func Params() *CurveParams {
	return secp256k1
}

// halfOrder is N/2 rounded down, the largest s accepted as low-S.
var halfOrder = new(big.Int).Rsh(curveN, 1)

// HalfOrder returns a copy of N/2 rounded down.
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfOrder)
}

// curveRHS returns x^3 + a*x + b.
func (c *CurveParams) curveRHS(x FieldVal) FieldVal {
	x3 := Fp.Mul(Fp.Sqr(x), x)
	return Fp.Add(Fp.Add(x3, Fp.Mul(c.A, x)), c.B)
}
