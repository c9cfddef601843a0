// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := Sum256(b)
	second := Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := Sum256(b)
	return Hash(Sum256(first[:]))
}

// DoubleHashParts calculates hash(hash(parts[0] || parts[1] || ...)) without
// concatenating the parts first.
func DoubleHashParts(parts ...[]byte) Hash {
	h := New()
	for _, p := range parts {
		h.Write(p)
	}
	first := h.Sum(make([]byte, 0, HashSize))
	return Hash(Sum256(first))
}
