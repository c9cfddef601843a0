// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"fmt"
	"math/big"
)

const (
	// DefaultWindow is the wNAF window width used for the generator.
	DefaultWindow = 8

	// MaxWindow is the largest supported window width.  A table holds
	// 2^(w-1) points per window, so wider windows are impractical.
	MaxWindow = 16
)

// windowOpts describes the shape of a wNAF table for a window width and a
// scalar bit length.
type windowOpts struct {
	// windows is the number of windows, one more than strictly needed to
	// absorb the final carry.
	windows int

	// windowSize is the number of points stored per window, 2^(w-1).
	windowSize int

	// maxNumber is 2^w and mask is 2^w - 1.
	maxNumber int
	mask      uint64
	shift     uint
}

// validateWindow returns an error unless 1 <= w <= MaxWindow.
func validateWindow(w int) error {
	if w < 1 || w > MaxWindow {
		str := fmt.Sprintf("invalid window size %d, expected [1, %d]", w,
			MaxWindow)
		return makeError(ErrInvalidWindow, str)
	}
	return nil
}

// calcWindowOpts returns the table shape for window width w over scalars of
// the given bit length.
func calcWindowOpts(w, bits int) windowOpts {
	return windowOpts{
		windows:    (bits+w-1)/w + 1,
		windowSize: 1 << (w - 1),
		maxNumber:  1 << w,
		mask:       1<<w - 1,
		shift:      uint(w),
	}
}

// windowOffsets is the recoding of one window of a scalar.
type windowOffsets struct {
	// offset indexes the table entry for the digit and isZero reports a
	// zero digit.  isNeg means the entry must be negated.
	offset int
	isZero bool
	isNeg  bool

	// offsetF and isNegF select the entry fed to the fake accumulator
	// when the digit is zero.
	offsetF int
	isNegF  bool
}

// calcOffsets consumes the lowest window of n, which is modified in place,
// and returns the table lookup for it.  Digits above half the window range
// are turned into negative digits with a carry into the next window.
func calcOffsets(n *big.Int, window int, wo windowOpts) windowOffsets {
	var low uint64
	if words := n.Bits(); len(words) > 0 {
		low = uint64(words[0])
	}
	wbits := int(low & wo.mask)
	n.Rsh(n, wo.shift)
	if wbits > wo.windowSize {
		wbits -= wo.maxNumber
		n.Add(n, bigOne)
	}

	offsetStart := window * wo.windowSize
	abs := wbits
	if abs < 0 {
		abs = -abs
	}
	return windowOffsets{
		offset:  offsetStart + abs - 1,
		isZero:  wbits == 0,
		isNeg:   wbits < 0,
		offsetF: offsetStart,
		isNegF:  window%2 != 0,
	}
}

var bigOne = big.NewInt(1)

// precomputeWindow returns the flattened wNAF table for p: for every window
// i it holds 2^(w*i) * {1, 2, ..., 2^(w-1)} * p.
func precomputeWindow(p *Point, w, bits int) []*Point {
	wo := calcWindowOpts(w, bits)
	points := make([]*Point, 0, wo.windows*wo.windowSize)
	base := p
	for window := 0; window < wo.windows; window++ {
		acc := base
		points = append(points, acc)
		for i := 1; i < wo.windowSize; i++ {
			acc = acc.Add(base)
			points = append(points, acc)
		}
		base = acc.Double()
	}
	return points
}

// wnafMul multiplies using a precomputed table and returns the real result p
// along with a fake accumulator f.  Every window performs exactly one point
// addition, into p for non-zero digits and into f for zero digits, so the
// sequence of operations does not depend on the scalar.
func wnafMul(w, bits int, table []*Point, k *big.Int) (p, f *Point, err error) {
	wo := calcWindowOpts(w, bits)
	n := new(big.Int).Set(k)
	p, f = infinity, generator
	for window := 0; window < wo.windows; window++ {
		o := calcOffsets(n, window, wo)
		if o.isZero {
			f = f.Add(negateIf(o.isNegF, table[o.offsetF]))
		} else {
			p = p.Add(negateIf(o.isNeg, table[o.offset]))
		}
	}
	if n.Sign() != 0 {
		return nil, nil, makeError(ErrInvalidNAF, "invalid wNAF: scalar "+
			"wider than the precomputed table")
	}
	return p, f, nil
}

// wnafMulUnsafe is the variable-time counterpart of wnafMul.  It skips zero
// digits and stops as soon as the scalar is exhausted, adding the result to
// acc.
func wnafMulUnsafe(w, bits int, table []*Point, k *big.Int, acc *Point) (*Point, error) {
	wo := calcWindowOpts(w, bits)
	n := new(big.Int).Set(k)
	for window := 0; window < wo.windows; window++ {
		if n.Sign() == 0 {
			break
		}
		o := calcOffsets(n, window, wo)
		if o.isZero {
			continue
		}
		item := table[o.offset]
		if o.isNeg {
			item = item.Negate()
		}
		acc = acc.Add(item)
	}
	if n.Sign() != 0 {
		return nil, makeError(ErrInvalidNAF, "invalid wNAF: scalar wider "+
			"than the precomputed table")
	}
	return acc, nil
}

// mulLadderUnsafe returns acc + k*p with plain variable-time double-and-add.
// It accepts any non-negative k, including values not reduced modulo N.
func mulLadderUnsafe(p *Point, k *big.Int, acc *Point) *Point {
	d := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = acc.Add(d)
		}
		d = d.Double()
	}
	return acc
}
