// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"errors"
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cloreai/clrsign/base58"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var checkEncodingStringTests = []struct {
	version byte
	in      string
	out     string
}{
	{20, "", "3MNQE1X"},
	{20, " ", "B2Kr6dBE"},
	{20, "-", "B3jv1Aft"},
	{20, "0", "B482yuaX"},
	{20, "1", "B4CmeGAC"},
	{20, "-1", "mM7eUf6kB"},
	{20, "11", "mP7BMTDVH"},
	{20, "abc", "4QiVtDjUdeq"},
	{20, "1234598760", "ZmNb8uQn5zvnUohNCEPP"},
	{20, "abcdefghijklmnopqrstuvwxyz", "K2RYDcKfupxwXdWhSAxQPCeiULntKm63UXyx5MvEH2"},
	{20, "00000000000000000000000000000000000000000000000000000000000000", "bi1EWXwJay2udZVxLJozuTb8Meg4W9c6xnmJaRDjg6pri5MBAxb9XwrpQXbtnqEoRV5U2pixnFfwyXC8tRAVC8XxnjK"},
}

func TestBase58Check(t *testing.T) {
	for x, test := range checkEncodingStringTests {
		payload := append([]byte{test.version}, test.in...)

		// test encoding
		if res := base58.CheckEncode(payload); res != test.out {
			t.Errorf("CheckEncode test #%d failed: got %s, want: %s", x, res, test.out)
		}

		// test decoding
		res, err := base58.CheckDecode(test.out)
		if err != nil {
			t.Errorf("CheckDecode test #%d failed with err: %v", x, err)
		} else if res[0] != test.version {
			t.Errorf("CheckDecode test #%d failed: got version: %d want: %d", x, res[0], test.version)
		} else if string(res[1:]) != test.in {
			t.Errorf("CheckDecode test #%d failed: got: %s want: %s", x, res[1:], test.in)
		}
	}

	// test the two decoding failure cases
	// case 1: checksum error
	_, err := base58.CheckDecode("3MNQE1Y")
	if !errors.Is(err, base58.ErrChecksum) {
		t.Errorf("CheckDecode test failed, expected ErrChecksum, got %v", err)
	}
	// case 2: invalid formats (decoded lengths below 4 mean the checksum
	// bytes are missing).
	for _, s := range []string{"", "1", "111", "z", "0OIl"} {
		_, err = base58.CheckDecode(s)
		if !errors.Is(err, base58.ErrInvalidFormat) {
			t.Errorf("CheckDecode(%q) failed, expected ErrInvalidFormat, got %v", s, err)
		}
	}
}

// TestCheckDecodeCorruption ensures replacing any single character of a valid
// string with another alphabet character is rejected.
func TestCheckDecodeCorruption(t *testing.T) {
	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	valid := "K2RYDcKfupxwXdWhSAxQPCeiULntKm63UXyx5MvEH2"

	for i := range valid {
		for j := 0; j < len(alphabet); j++ {
			if alphabet[j] == valid[i] {
				continue
			}
			mutated := []byte(valid)
			mutated[i] = alphabet[j]
			_, err := base58.CheckDecode(string(mutated))
			require.Error(t, err, "accepted corruption %q", mutated)
		}
	}
}

// TestCheckEncodeMatchesBtcutil ensures Base58Check strings agree with the
// btcutil implementation for random versioned payloads.
func TestCheckEncodeMatchesBtcutil(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		version := rapid.Byte().Draw(t, "version")
		data := rapid.SliceOfN(rapid.Byte(), 0, 80).Draw(t, "data")

		got := base58.CheckEncode(append([]byte{version}, data...))
		want := btcbase58.CheckEncode(data, version)
		if got != want {
			t.Fatalf("mismatched encoding: got %s, want %s", got, want)
		}

		payload, err := base58.CheckDecode(got)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if payload[0] != version || string(payload[1:]) != string(data) {
			t.Fatalf("round trip mismatch: got %x", payload)
		}
	})
}
