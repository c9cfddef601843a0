// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

// Decode decodes a modified base58 string to a byte slice.  An empty slice is
// returned when the string contains a character outside the alphabet.
func Decode(b string) []byte {
	// Count and skip the leading '1's, each of which stands for a zero byte.
	zeros := 0
	for zeros < len(b) && b[zeros] == alphabetIdx0 {
		zeros++
	}

	// log(58) / log(256) rounded up.
	size := (len(b)-zeros)*733/1000 + 1
	out := make([]byte, size)
	high := size - 1
	for i := zeros; i < len(b); i++ {
		carry := uint32(b58[b[i]])
		if carry == 255 {
			return []byte("")
		}

		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 58 * uint32(out[j])
			out[j] = byte(carry)
			carry >>= 8
		}
		high = j
	}

	// Skip the unused leading bytes of the accumulator.
	start := 0
	for start < size && out[start] == 0 {
		start++
	}

	val := make([]byte, zeros+size-start)
	copy(val[zeros:], out[start:])
	return val
}

// Encode encodes a byte slice to a modified base58 string.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// log(256) / log(58) rounded up.
	size := (len(b)-zeros)*138/100 + 1
	digits := make([]byte, size)
	high := size - 1
	for _, v := range b[zeros:] {
		carry := uint32(v)

		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 256 * uint32(digits[j])
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		high = j
	}

	start := 0
	for start < size && digits[start] == 0 {
		start++
	}

	answer := make([]byte, zeros+size-start)
	for i := 0; i < zeros; i++ {
		answer[i] = alphabetIdx0
	}
	for i, d := range digits[start:] {
		answer[zeros+i] = alphabet[d]
	}
	return string(answer)
}
