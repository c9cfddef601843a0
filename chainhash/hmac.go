// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import "hash"

const (
	ipad = 0x36
	opad = 0x5c
)

// hmacDigest computes HMAC-SHA256 as defined by RFC 2104.
type hmacDigest struct {
	inner hash.Hash
	outer hash.Hash
	ipadK [BlockSize]byte
	opadK [BlockSize]byte
}

// NewHMAC returns a new hash.Hash computing HMAC-SHA256 with the given key.
// Keys longer than the block size are hashed first.
func NewHMAC(key []byte) hash.Hash {
	h := &hmacDigest{inner: New(), outer: New()}
	if len(key) > BlockSize {
		sum := Sum256(key)
		key = sum[:]
	}
	copy(h.ipadK[:], key)
	copy(h.opadK[:], key)
	for i := range h.ipadK {
		h.ipadK[i] ^= ipad
		h.opadK[i] ^= opad
	}
	h.inner.Write(h.ipadK[:])
	return h
}

func (h *hmacDigest) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Sum appends the MAC of the data written so far to b.  The running state is
// left intact.
func (h *hmacDigest) Sum(b []byte) []byte {
	in := h.inner.Sum(nil)
	h.outer.Reset()
	h.outer.Write(h.opadK[:])
	h.outer.Write(in)
	return h.outer.Sum(b)
}

func (h *hmacDigest) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipadK[:])
}

func (h *hmacDigest) Size() int      { return Size }
func (h *hmacDigest) BlockSize() int { return BlockSize }

// HMAC returns HMAC-SHA256(key, msgs[0] || msgs[1] || ...).
func HMAC(key []byte, msgs ...[]byte) [Size]byte {
	h := NewHMAC(key)
	for _, m := range msgs {
		h.Write(m)
	}
	var out [Size]byte
	h.Sum(out[:0])
	return out
}
