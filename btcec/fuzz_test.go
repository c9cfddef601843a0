//go:build gofuzz || go1.18

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"bytes"
	"testing"
)

func FuzzParsePoint(f *testing.F) {
	for _, test := range pointTests {
		f.Add(hexToBytes(test.key))
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		p, err := ParsePoint(input)
		if p == nil && err == nil {
			t.Fatal("point == nil && err == nil")
		}
		if p != nil && err != nil {
			t.Fatal("point != nil yet err != nil")
		}
		if err != nil {
			return
		}

		// Anything accepted must be on the curve and re-encode to the
		// same bytes in the same form.
		if !p.IsOnCurve() {
			t.Fatalf("parsed point %x is not on the curve", input)
		}
		compressed := len(input) == PubKeyBytesLenCompressed
		if got := p.encode(compressed); !bytes.Equal(got, input) {
			t.Fatalf("re-encoded point mismatch: got %x, want %x",
				got, input)
		}
	})
}
