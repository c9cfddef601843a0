// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"fmt"
	"math/big"
)

// endoSplit is a scalar k decomposed as k = k1 + k2*lambda (mod N) where
// each half is stored as a magnitude and a sign.
type endoSplit struct {
	k1, k2       *big.Int
	k1Neg, k2Neg bool
}

// divNearest returns num/den rounded to the nearest integer, with ties away
// from zero.  den must be positive.
func divNearest(num, den *big.Int) *big.Int {
	half := new(big.Int).Rsh(den, 1)
	r := new(big.Int)
	if num.Sign() >= 0 {
		r.Add(num, half)
	} else {
		r.Sub(num, half)
	}
	return r.Quo(r, den)
}

// splitScalar decomposes k into two halves of about 128 bits each using the
// reduced lattice basis so that k = k1 + k2*lambda (mod N).  This is
// algorithm 3.74 of [GECC] with the rounding of the basis projections done
// by divNearest.
func splitScalar(k ModNScalar) (endoSplit, error) {
	c := secp256k1
	kv := k.Big()

	// c1 = round(b2*k / N), c2 = round(-b1*k / N)
	c1 := divNearest(new(big.Int).Mul(c.b2, kv), c.N)
	c2 := divNearest(new(big.Int).Neg(new(big.Int).Mul(c.b1, kv)), c.N)

	// k1 = k - c1*a1 - c2*a2
	k1 := new(big.Int).Sub(kv, new(big.Int).Mul(c1, c.a1))
	k1.Sub(k1, new(big.Int).Mul(c2, c.a2))

	// k2 = -c1*b1 - c2*b2
	k2 := new(big.Int).Neg(new(big.Int).Mul(c1, c.b1))
	k2.Sub(k2, new(big.Int).Mul(c2, c.b2))

	split := endoSplit{
		k1:    k1,
		k2:    k2,
		k1Neg: k1.Sign() < 0,
		k2Neg: k2.Sign() < 0,
	}
	k1.Abs(k1)
	k2.Abs(k2)

	if k1.Cmp(c.endoBound) >= 0 || k2.Cmp(c.endoBound) >= 0 {
		str := fmt.Sprintf("splitScalar (endomorphism): failed, k=%v", k)
		return endoSplit{}, makeError(ErrSplitScalar, str)
	}
	return split, nil
}

// mulEndoUnsafe computes k1*p and k2*p together with one shared chain of
// doublings.  It is variable time.
func mulEndoUnsafe(p *Point, k1, k2 *big.Int) (p1, p2 *Point) {
	acc := p
	p1, p2 = infinity, infinity
	bits := k1.BitLen()
	if k2.BitLen() > bits {
		bits = k2.BitLen()
	}
	for i := 0; i < bits; i++ {
		if k1.Bit(i) == 1 {
			p1 = p1.Add(acc)
		}
		if k2.Bit(i) == 1 {
			p2 = p2.Add(acc)
		}
		acc = acc.Double()
	}
	return p1, p2
}

// finishEndo recombines the two halves of an endomorphism multiplication.
// k2p is k2*p and is mapped to k2*lambda*p by scaling its x coordinate with
// beta.  The signs of the split are applied to both halves before adding.
func finishEndo(k1p, k2p *Point, split endoSplit) *Point {
	k2p = newPoint(Fp.Mul(k2p.x, secp256k1.Beta), k2p.y, k2p.z)
	k1p = negateIf(split.k1Neg, k1p)
	k2p = negateIf(split.k2Neg, k2p)
	return k1p.Add(k2p)
}
