// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

// Multiply returns k*p using the constant-time path.  Zero is rejected since
// it has no inverse and would yield the identity.
//
// The scalar is split with the endomorphism into two halves of about 128
// bits which are multiplied against the wNAF table of p; the table is cached
// when p has a registered window.  A fake accumulator absorbs an addition for
// every zero digit so that the operation count does not depend on k.  The
// result is returned in affine form.
func (p *Point) Multiply(k ModNScalar) (*Point, error) {
	if k.IsZero() {
		return nil, makeError(ErrInvalidScalar, "invalid scalar: out of "+
			"range")
	}

	split, err := splitScalar(k)
	if err != nil {
		return nil, err
	}

	bits := secp256k1.endoBits
	w, table := DefaultPrecomputes.table(p, bits)
	k1p, k1f, err := wnafMul(w, bits, table, split.k1)
	if err != nil {
		return nil, err
	}
	k2p, k2f, err := wnafMul(w, bits, table, split.k2)
	if err != nil {
		return nil, err
	}
	fake := k1f.Add(k2f)
	point := finishEndo(k1p, k2p, split)

	return BatchNormalize([]*Point{point, fake})[0], nil
}

// MultiplyUnsafe returns k*p in variable time.  It must only be used when
// both k and p are public, for example during signature verification.  Zero
// is accepted and yields the identity.
//
// Points with a cached table are multiplied with variable-time wNAF over the
// table; all others use an endomorphism split double-and-add.
func (p *Point) MultiplyUnsafe(k ModNScalar) (*Point, error) {
	if k.IsZero() || p.IsInfinity() {
		return infinity, nil
	}
	if k.Big().Cmp(bigOne) == 0 {
		return p, nil
	}

	split, err := splitScalar(k)
	if err != nil {
		return nil, err
	}

	if DefaultPrecomputes.HasCache(p) {
		bits := secp256k1.endoBits
		w, table := DefaultPrecomputes.table(p, bits)
		k1p, err := wnafMulUnsafe(w, bits, table, split.k1, infinity)
		if err != nil {
			return nil, err
		}
		k2p, err := wnafMulUnsafe(w, bits, table, split.k2, infinity)
		if err != nil {
			return nil, err
		}
		return finishEndo(k1p, k2p, split), nil
	}

	k1p, k2p := mulEndoUnsafe(p, split.k1, split.k2)
	return finishEndo(k1p, k2p, split), nil
}

// ScalarBaseMult returns k*G using the constant-time path.
func ScalarBaseMult(k ModNScalar) (*Point, error) {
	return generator.Multiply(k)
}

// MultiplyAndAddUnsafe returns a*G + b*q in variable time.
func MultiplyAndAddUnsafe(a ModNScalar, b ModNScalar, q *Point) (*Point, error) {
	ag, err := generator.MultiplyUnsafe(a)
	if err != nil {
		return nil, err
	}
	bq, err := q.MultiplyUnsafe(b)
	if err != nil {
		return nil, err
	}
	return ag.Add(bq), nil
}
