// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

const (
	// alphabet is the modified base58 alphabet used by Bitcoin.  It omits
	// 0, O, I and l to avoid visual ambiguity.
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	alphabetIdx0 = '1'
)

// b58 maps an ASCII byte to its digit value, or 255 when the byte is not part
// of the alphabet.
var b58 = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 255
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}()
