// Copyright (c) 2013 - 2020 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	btcutilv1 "github.com/btcsuite/btcd/btcutil"
	"github.com/cloreai/clrsign/btcec"
	. "github.com/cloreai/clrsign/btcutil"
	"github.com/cloreai/clrsign/chaincfg"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  It is only intended for hard-coded test data.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in test source: " + s)
	}
	return b
}

func TestEncodeDecodeWIF(t *testing.T) {
	validEncodeCases := []struct {
		privateKey []byte           // input
		net        *chaincfg.Params // input
		compress   bool             // input
		wif        string           // output
		publicKey  []byte           // output
		name       string           // name of subtest
	}{
		{
			privateKey: hexToBytes("0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"),
			net:        &chaincfg.MainNetParams,
			compress:   false,
			wif:        "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
			publicKey:  hexToBytes("04d0de0aaeaefad02b8bdc8a01a1b8b11c696bd3d66a2c5f10780d95b7df42645cd85228a6fb29940e858e7e55842ae2bd115d1ed7cc0e82d934e929c97648cb0a"),
			name:       "encodeValidUncompressedMainNetWif",
		},
		{
			privateKey: hexToBytes("dda35a1488fb97b6eb3fe6e9ef2a25814e396fb5dc295fe994b96789b21a0398"),
			net:        &chaincfg.TestNet3Params,
			compress:   true,
			wif:        "cV1Y7ARUr9Yx7BR55nTdnR7ZXNJphZtCCMBTEZBJe1hXt2kB684q",
			publicKey:  hexToBytes("02eec2540661b0c39d271570742413bd02932dd0093493fd0beced0b7f93addec4"),
			name:       "encodeValidCompressedTestNet3Wif",
		},
		{
			privateKey: hexToBytes("22a47fa09a223f2aa079edf85a7c2d4f8720ee63e502ee2869afab7de234b80c"),
			net:        &chaincfg.CloreMainNetParams,
			compress:   true,
			wif:        "Hb6xny8EBHLJf19FdpsYiKQPdKQpkezjFh5tKeq2uZbfiV9sBPrR",
			publicKey:  hexToBytes("02a673638cb9587cb68ea08dbef685c6f2d2a751a8b3c6f2a7e9a4999e6e4bfaf5"),
			name:       "encodeValidCompressedCloreWif",
		},
	}

	for _, validCase := range validEncodeCases {
		validCase := validCase

		t.Run(validCase.name, func(t *testing.T) {
			priv, _ := btcec.PrivKeyFromBytes(validCase.privateKey)
			wif, err := NewWIF(priv, validCase.net, validCase.compress)
			if err != nil {
				t.Fatalf("NewWIF failed: expected no error, got '%v'", err)
			}

			if !wif.IsForNet(validCase.net) {
				t.Fatal("IsForNet failed: got 'false', want 'true'")
			}

			if gotPubKey := wif.SerializePubKey(); !bytes.Equal(gotPubKey, validCase.publicKey) {
				t.Fatalf("SerializePubKey failed: got '%s', want '%s'",
					hex.EncodeToString(gotPubKey), hex.EncodeToString(validCase.publicKey))
			}

			// Test that encoding the WIF structure matches the expected string.
			got := wif.String()
			if got != validCase.wif {
				t.Fatalf("NewWIF failed: want '%s', got '%s'",
					validCase.wif, got)
			}

			// Test that decoding the expected string results in the original WIF
			// structure.
			decodedWif, err := DecodeWIFForNet(got, validCase.net)
			if err != nil {
				t.Fatalf("DecodeWIF failed: expected no error, got '%v'", err)
			}
			if decodedWifString := decodedWif.String(); decodedWifString != validCase.wif {
				t.Fatalf("NewWIF failed: want '%v', got '%v'", validCase.wif, decodedWifString)
			}
			if decodedWif.CompressPubKey != validCase.compress {
				t.Fatalf("DecodeWIF compression mismatch: got %v", decodedWif.CompressPubKey)
			}
			if decodedWif.Version() != validCase.net.PrivateKeyID {
				t.Fatalf("DecodeWIF version mismatch: got 0x%02x", decodedWif.Version())
			}
		})
	}

	invalidDecodeCases := []struct {
		name string
		wif  string
		err  error
	}{
		{
			name: "decodeBadChecksumShortWif",
			wif:  "deadbeef",
			err:  ErrChecksumMismatch,
		},
		{
			name: "decodeInvalidLengthWif",
			wif:  "yQHtKJ4MVAzyGBirvns5JhWEJ2Jm3JrZpUSbav4c1VmtXH8BM",
			err:  ErrMalformedPrivateKey,
		},
		{
			name: "decodeTruncatedWif",
			wif:  "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyT",
			err:  ErrChecksumMismatch,
		},
		{
			name: "decodeInvalidCompressMagicWif",
			wif:  "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sfZr2ym",
			err:  ErrMalformedPrivateKey,
		},
		{
			name: "decodeInvalidChecksumWif",
			wif:  "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTj",
			err:  ErrChecksumMismatch,
		},
		{
			name: "decodeInvalidCharacterWif",
			wif:  "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyT0",
			err:  ErrMalformedPrivateKey,
		},
		{
			name: "decodeZeroKeyWif",
			wif:  "4kiNkyGaSekN6t5zXvWupv9jZmyRosP58aw4Kn3QLPkSGgxeZte",
			err:  ErrMalformedPrivateKey,
		},
		{
			name: "decodeOverflowKeyWif",
			wif:  "HiXFcEienNXY7UVoVZbuxfh386hiLHe9PvPjEL9hV5ARouo4bvNn",
			err:  ErrMalformedPrivateKey,
		},
	}

	for _, invalidCase := range invalidDecodeCases {
		invalidCase := invalidCase

		t.Run(invalidCase.name, func(t *testing.T) {
			decodedWif, err := DecodeWIF(invalidCase.wif)
			if decodedWif != nil {
				t.Fatalf("DecodeWIF: unexpectedly succeeded - got '%v', want '%v'",
					decodedWif, nil)
			}
			if !errors.Is(err, invalidCase.err) {
				t.Fatalf("DecodeWIF: expected error '%v', got '%v'",
					invalidCase.err, err)
			}
		})
	}

	t.Run("decodeWrongNetworkWif", func(t *testing.T) {
		_, err := DecodeWIFForNet("cV1Y7ARUr9Yx7BR55nTdnR7ZXNJphZtCCMBTEZBJe1hXt2kB684q",
			&chaincfg.CloreMainNetParams)
		if !errors.Is(err, ErrWrongNetwork) {
			t.Fatalf("DecodeWIFForNet: expected error '%v', got '%v'",
				ErrWrongNetwork, err)
		}
	})

	t.Run("encodeInvalidNetworkWif", func(t *testing.T) {
		priv, _ := btcec.PrivKeyFromBytes(hexToBytes(
			"0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"))

		wif, err := NewWIF(priv, nil, true)

		if wif != nil {
			t.Fatalf("NewWIF: unexpectedly succeeded - got '%v', want '%v'",
				wif, nil)
		}
		if err == nil || err.Error() != "no network" {
			t.Fatalf("NewWIF: expected error 'no network', got '%v'", err)
		}
	})
}

// TestWIFMatchesBtcutil ensures random keys round trip through the WIF
// encoding and decode identically with the btcutil implementation.
func TestWIFMatchesBtcutil(t *testing.T) {
	nets := []*chaincfg.Params{
		&chaincfg.CloreMainNetParams,
		&chaincfg.MainNetParams,
		&chaincfg.TestNet3Params,
	}

	rapid.Check(t, func(t *rapid.T) {
		keyBytes := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "key")
		priv, err := btcec.PrivKeyFromBytes(keyBytes)
		if err != nil {
			t.Skip("key out of range")
		}
		net := rapid.SampledFrom(nets).Draw(t, "net")
		compress := rapid.Bool().Draw(t, "compress")

		wif, err := NewWIF(priv, net, compress)
		require.NoError(t, err)
		encoded := wif.String()

		decoded, err := DecodeWIFForNet(encoded, net)
		require.NoError(t, err)
		require.Equal(t, keyBytes, decoded.PrivKey.Serialize())
		require.Equal(t, compress, decoded.CompressPubKey)

		theirs, err := btcutilv1.DecodeWIF(encoded)
		require.NoError(t, err)
		require.Equal(t, keyBytes, theirs.PrivKey.Serialize())
		require.Equal(t, compress, theirs.CompressPubKey)
		require.Equal(t, theirs.SerializePubKey(), decoded.SerializePubKey())
	})
}
