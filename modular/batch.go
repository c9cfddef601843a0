// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

// InvertBatch inverts every element of elems with a single field inversion
// using Montgomery's trick.  Zero elements have no inverse and map to zero in
// the result instead of failing the whole batch.  The input is not modified.
func (f *Field[T]) InvertBatch(elems []Element[T]) []Element[T] {
	result := make([]Element[T], len(elems))
	if len(elems) == 0 {
		return result
	}

	// Prefix products of the non-zero elements.  prefix[i] holds the product
	// of every non-zero element before index i.
	prefix := make([]Element[T], len(elems))
	acc := f.one
	for i, e := range elems {
		if e.IsZero() {
			continue
		}
		prefix[i] = acc
		acc = f.Mul(acc, e)
	}

	// acc is a product of non-zero elements of a prime field so the inverse
	// always exists.
	inv, err := f.Inv(acc)
	if err != nil {
		return result
	}

	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if e.IsZero() {
			result[i] = f.zero
			continue
		}
		result[i] = f.Mul(inv, prefix[i])
		inv = f.Mul(inv, e)
	}
	return result
}
