// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"fmt"
	"math/big"
	"sync/atomic"
)

// affinePoint is the memoized affine form of a Point.
type affinePoint struct {
	x, y FieldVal
}

// nextPointID hands out the identifiers used to key precomputed tables.
var nextPointID atomic.Uint64

// Point is a point on the secp256k1 curve in homogeneous projective
// coordinates (X, Y, Z) representing the affine point (X/Z, Y/Z).  The group
// identity has Z = 0.
//
// A Point is immutable once constructed.  It memoizes its affine form and
// lazily acquires a cache identifier when a precomputed table is attached, so
// it must always be handled by pointer and never copied.
type Point struct {
	x, y, z FieldVal

	affine atomic.Pointer[affinePoint]
	valid  atomic.Bool
	id     atomic.Uint64
}

// newPoint returns the projective point (x, y, z) without validation.
func newPoint(x, y, z FieldVal) *Point {
	return &Point{x: x, y: y, z: z}
}

// newAffinePoint returns the point (x, y, 1) without validation.  The affine
// memo is populated immediately.
func newAffinePoint(x, y FieldVal) *Point {
	p := newPoint(x, y, Fp.One())
	p.affine.Store(&affinePoint{x: x, y: y})
	return p
}

var (
	generator = newAffinePoint(secp256k1.Gx, secp256k1.Gy)
	infinity  = newPoint(Fp.Zero(), Fp.One(), Fp.Zero())
)

// Generator returns the base point G of the curve.
func Generator() *Point {
	return generator
}

// Infinity returns the group identity (0 : 1 : 0).
func Infinity() *Point {
	return infinity
}

// NewPointFromAffine returns the point with the given affine coordinates
// after verifying it is a valid, finite element of the prime-order subgroup.
// The affine pair (0, 0) denotes the identity and is rejected.
func NewPointFromAffine(x, y FieldVal) (*Point, error) {
	if x.IsZero() && y.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "the affine point (0, 0) "+
			"is the point at infinity")
	}
	p := newAffinePoint(x, y)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPointFromBig is a convenience wrapper around NewPointFromAffine for big
// integer coordinates.  Coordinates that are not reduced are rejected.
func NewPointFromBig(x, y *big.Int) (*Point, error) {
	if !Fp.IsValid(x) {
		str := fmt.Sprintf("invalid point: x %x >= field prime", x)
		return nil, makeError(ErrPubKeyXTooBig, str)
	}
	if !Fp.IsValid(y) {
		str := fmt.Sprintf("invalid point: y %x >= field prime", y)
		return nil, makeError(ErrPubKeyYTooBig, str)
	}
	return NewPointFromAffine(Fp.New(x), Fp.New(y))
}

// Projective returns the projective coordinates of the point.
func (p *Point) Projective() (x, y, z FieldVal) {
	return p.x, p.y, p.z
}

// IsInfinity returns whether or not the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.z.IsZero()
}

// Equal returns whether the two points represent the same group element.  It
// compares projective coordinates by cross multiplication so no inversion is
// needed.
func (p *Point) Equal(other *Point) bool {
	// X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1
	u1 := Fp.Equal(Fp.Mul(p.x, other.z), Fp.Mul(other.x, p.z))
	u2 := Fp.Equal(Fp.Mul(p.y, other.z), Fp.Mul(other.y, p.z))
	return u1 && u2
}

// Negate returns -p, which is (X, -Y, Z).
func (p *Point) Negate() *Point {
	return newPoint(p.x, Fp.Neg(p.y), p.z)
}

// negateIf returns -p when cond is set and p otherwise.  Both branches are
// always computed.
func negateIf(cond bool, p *Point) *Point {
	neg := p.Negate()
	if cond {
		return neg
	}
	return p
}

// Double returns 2p using the exception-free doubling formula of [RCB]
// algorithm 3.
func (p *Point) Double() *Point {
	a, b3 := secp256k1.A, secp256k1.b3
	x1, y1, z1 := p.x, p.y, p.z

	t0 := Fp.Mul(x1, x1)
	t1 := Fp.Mul(y1, y1)
	t2 := Fp.Mul(z1, z1)
	t3 := Fp.Mul(x1, y1)
	t3 = Fp.Add(t3, t3)
	z3 := Fp.Mul(x1, z1)
	z3 = Fp.Add(z3, z3)
	x3 := Fp.Mul(a, z3)
	y3 := Fp.Mul(b3, t2)
	y3 = Fp.Add(x3, y3)
	x3 = Fp.Sub(t1, y3)
	y3 = Fp.Add(t1, y3)
	y3 = Fp.Mul(x3, y3)
	x3 = Fp.Mul(t3, x3)
	z3 = Fp.Mul(b3, z3)
	t2 = Fp.Mul(a, t2)
	t3 = Fp.Sub(t0, t2)
	t3 = Fp.Mul(a, t3)
	t3 = Fp.Add(t3, z3)
	z3 = Fp.Add(t0, t0)
	t0 = Fp.Add(z3, t0)
	t0 = Fp.Add(t0, t2)
	t0 = Fp.Mul(t0, t3)
	y3 = Fp.Add(y3, t0)
	t2 = Fp.Mul(y1, z1)
	t2 = Fp.Add(t2, t2)
	t0 = Fp.Mul(t2, t3)
	x3 = Fp.Sub(x3, t0)
	z3 = Fp.Mul(t2, t1)
	z3 = Fp.Add(z3, z3)
	z3 = Fp.Add(z3, z3)
	return newPoint(x3, y3, z3)
}

// Add returns p + q using the complete addition formula of [RCB] algorithm
// 1.  It is correct for every pair of inputs, including the identity and
// p == q, so callers never need to special-case them.
func (p *Point) Add(q *Point) *Point {
	a, b3 := secp256k1.A, secp256k1.b3
	x1, y1, z1 := p.x, p.y, p.z
	x2, y2, z2 := q.x, q.y, q.z

	t0 := Fp.Mul(x1, x2)
	t1 := Fp.Mul(y1, y2)
	t2 := Fp.Mul(z1, z2)
	t3 := Fp.Add(x1, y1)
	t4 := Fp.Add(x2, y2)
	t3 = Fp.Mul(t3, t4)
	t4 = Fp.Add(t0, t1)
	t3 = Fp.Sub(t3, t4)
	t4 = Fp.Add(x1, z1)
	t5 := Fp.Add(x2, z2)
	t4 = Fp.Mul(t4, t5)
	t5 = Fp.Add(t0, t2)
	t4 = Fp.Sub(t4, t5)
	t5 = Fp.Add(y1, z1)
	x3 := Fp.Add(y2, z2)
	t5 = Fp.Mul(t5, x3)
	x3 = Fp.Add(t1, t2)
	t5 = Fp.Sub(t5, x3)
	z3 := Fp.Mul(a, t4)
	x3 = Fp.Mul(b3, t2)
	z3 = Fp.Add(x3, z3)
	x3 = Fp.Sub(t1, z3)
	z3 = Fp.Add(t1, z3)
	y3 := Fp.Mul(x3, z3)
	t1 = Fp.Add(t0, t0)
	t1 = Fp.Add(t1, t0)
	t2 = Fp.Mul(a, t2)
	t4 = Fp.Mul(b3, t4)
	t1 = Fp.Add(t1, t2)
	t2 = Fp.Sub(t0, t2)
	t2 = Fp.Mul(a, t2)
	t4 = Fp.Add(t4, t2)
	t0 = Fp.Mul(t1, t4)
	y3 = Fp.Add(y3, t0)
	t0 = Fp.Mul(t5, t4)
	x3 = Fp.Mul(t3, x3)
	x3 = Fp.Sub(x3, t0)
	t0 = Fp.Mul(t3, t1)
	z3 = Fp.Mul(t5, z3)
	z3 = Fp.Add(z3, t0)
	return newPoint(x3, y3, z3)
}

// Subtract returns p - q.
func (p *Point) Subtract(q *Point) *Point {
	return p.Add(q.Negate())
}

// ToAffine returns the affine coordinates of the point.  The identity maps to
// (0, 0).  The result is memoized on the point.
func (p *Point) ToAffine() (x, y FieldVal) {
	if a := p.affine.Load(); a != nil {
		return a.x, a.y
	}
	if p.IsInfinity() {
		return Fp.Zero(), Fp.Zero()
	}

	// Z is non-zero for every finite point so the inverse exists.
	iz, err := Fp.Inv(p.z)
	if err != nil {
		panic(fmt.Sprintf("inverting non-zero z failed: %v", err))
	}
	a, _ := p.toAffineInv(iz)
	return a.x, a.y
}

// toAffineInv converts the point to affine form with a caller supplied
// inverse of Z, typically obtained from a batch inversion, and memoizes the
// result.  The supplied inverse is checked.
func (p *Point) toAffineInv(iz FieldVal) (*affinePoint, error) {
	if a := p.affine.Load(); a != nil {
		return a, nil
	}
	if p.IsInfinity() {
		return &affinePoint{x: Fp.Zero(), y: Fp.Zero()}, nil
	}
	if Fp.Equal(p.z, Fp.One()) {
		a := &affinePoint{x: p.x, y: p.y}
		p.affine.Store(a)
		return a, nil
	}
	if !Fp.Equal(Fp.Mul(p.z, iz), Fp.One()) {
		return nil, makeError(ErrPubKeyNotOnCurve, "invalid inverted z "+
			"supplied for affine conversion")
	}
	a := &affinePoint{x: Fp.Mul(p.x, iz), y: Fp.Mul(p.y, iz)}
	p.affine.Store(a)
	return a, nil
}

// X returns the affine x coordinate.
func (p *Point) X() FieldVal {
	x, _ := p.ToAffine()
	return x
}

// Y returns the affine y coordinate.
func (p *Point) Y() FieldVal {
	_, y := p.ToAffine()
	return y
}

// HasEvenY returns whether the affine y coordinate is even.
func (p *Point) HasEvenY() bool {
	return !p.Y().IsOdd()
}

// BatchNormalize converts every point to the affine representation Z = 1
// using a single field inversion.  The identity stays the identity.
func BatchNormalize(points []*Point) []*Point {
	zs := make([]FieldVal, len(points))
	for i, p := range points {
		zs[i] = p.z
	}
	invs := Fp.InvertBatch(zs)

	result := make([]*Point, len(points))
	for i, p := range points {
		if p.IsInfinity() {
			result[i] = infinity
			continue
		}
		a, err := p.toAffineInv(invs[i])
		if err != nil {
			// The batch inverse of a non-zero z is always valid.
			panic(err)
		}
		np := newAffinePoint(a.x, a.y)
		if p.valid.Load() {
			np.valid.Store(true)
		}
		result[i] = np
	}
	return result
}

// IsOnCurve returns whether the point satisfies y^2 = x^3 + ax + b.  The
// identity is not on the curve in affine terms and reports false.
func (p *Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return false
	}
	x, y := p.ToAffine()
	return Fp.Equal(Fp.Sqr(y), secp256k1.curveRHS(x))
}

// IsTorsionFree returns whether the point lies in the prime-order subgroup.
// Every curve point qualifies when the cofactor is one; otherwise the point
// is multiplied by the group order with the variable-time ladder.
func (p *Point) IsTorsionFree() bool {
	if secp256k1.H == 1 {
		return true
	}
	return mulLadderUnsafe(p, secp256k1.N, infinity).IsInfinity()
}

// ClearCofactor returns h*p, which is p itself when the cofactor is one.
func (p *Point) ClearCofactor() *Point {
	if secp256k1.H == 1 {
		return p
	}
	return mulLadderUnsafe(p, big.NewInt(secp256k1.H), infinity)
}

// Validate returns an error unless the point is a finite point on the curve
// in the prime-order subgroup.  A successful result is memoized.
func (p *Point) Validate() error {
	if p.valid.Load() {
		return nil
	}
	if p.IsInfinity() {
		return makeError(ErrPointAtInfinity, "invalid point: point at "+
			"infinity")
	}
	if !p.IsOnCurve() {
		x, y := p.ToAffine()
		str := fmt.Sprintf("invalid point: (%v, %v) is not on the "+
			"secp256k1 curve", x, y)
		return makeError(ErrPubKeyNotOnCurve, str)
	}
	if !p.IsTorsionFree() {
		return makeError(ErrPointNotInSubgroup, "invalid point: not in "+
			"the prime-order subgroup")
	}
	p.valid.Store(true)
	return nil
}

// String returns the compressed encoding of a valid point as hex, or a short
// description otherwise.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "<Point ZERO>"
	}
	b, err := p.Bytes(true)
	if err != nil {
		return fmt.Sprintf("<Point invalid %v>", err)
	}
	return fmt.Sprintf("<Point %x>", b)
}
