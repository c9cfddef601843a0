// Copyright 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"testing"

	"github.com/cloreai/clrsign/chainhash"
)

// benchKeyHex is a randomly generated private key used across the benchmarks.
const benchKeyHex = "9e0699c91ca1e3b7e3c9ba71eb71c89890872be97576010fe593fbf3fd57e66d"

// BenchmarkSign benchmarks how long it takes to sign a message with the
// default options.
func BenchmarkSign(b *testing.B) {
	privKey := privKeyFromHex(benchKeyHex)
	msg := []byte{0x01, 0x02, 0x03, 0x04}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sign(msg, privKey, nil)
	}
}

// BenchmarkSignExtraEntropy benchmarks how long it takes to sign a message
// when randomness is mixed into the nonce derivation.
func BenchmarkSignExtraEntropy(b *testing.B) {
	privKey := privKeyFromHex(benchKeyHex)
	msg := []byte{0x01, 0x02, 0x03, 0x04}
	opts := &SignOptions{Prehash: true, LowS: true, RandomEntropy: true}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sign(msg, privKey, opts)
	}
}

// BenchmarkVerify benchmarks how long it takes to verify a signature.
func BenchmarkVerify(b *testing.B) {
	privKey := privKeyFromHex(benchKeyHex)
	pubKey := privKey.PubKey()
	msg := []byte{0x01, 0x02, 0x03, 0x04}
	sig, err := Sign(msg, privKey, nil)
	if err != nil {
		b.Fatalf("unexpected err: %v", err)
	}
	if !sig.Verify(msg, pubKey, nil) {
		b.Fatal("signature failed to verify")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sig.Verify(msg, pubKey, nil)
	}
}

// BenchmarkSigSerialize benchmarks how long it takes to serialize a typical
// signature with the strict DER encoding.
func BenchmarkSigSerialize(b *testing.B) {
	sig, err := NewSignature(
		hexToModNScalar("fef45d2892953aa5bbcdb057b5e98b208f1617a7498af7eb765574e29b5d9c2c"),
		hexToModNScalar("2b8a9c0ad55394fb4aa21dc9483aea133f9d676f6f2a9d6bcf58a2c2613b3b02"),
	)
	if err != nil {
		b.Fatalf("unexpected err: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sig.Serialize(FormatDER)
	}
}

// BenchmarkParseDERSignature benchmarks how long it takes to parse a typical
// DER-encoded signature.
func BenchmarkParseDERSignature(b *testing.B) {
	sigBytes := hexToBytes("30440220090ebfb3690a0ff115bb1b38b8b323a667b7653454" +
		"f1bccb06d4bbdca42c20790220136a8874ae18f8e34edfa074216509a58ae5643" +
		"66a1af056268a4245f9835cc8")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseDERSignature(sigBytes)
	}
}

// BenchmarkSignCompact benchmarks how long it takes to produce a compact
// signature for a message.
func BenchmarkSignCompact(b *testing.B) {
	privKey := privKeyFromHex(benchKeyHex)
	msgHash := chainhash.DoubleHashB([]byte{0x01, 0x02, 0x03, 0x04})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SignCompact(privKey, msgHash, true)
	}
}

// BenchmarkRecoverCompact benchmarks how long it takes to recover a public key
// given a compact signature and message.
func BenchmarkRecoverCompact(b *testing.B) {
	privKey := privKeyFromHex(benchKeyHex)
	wantPubKey := privKey.PubKey()
	msgHash := chainhash.DoubleHashB([]byte{0x01, 0x02, 0x03, 0x04})
	compactSig, err := SignCompact(privKey, msgHash, true)
	if err != nil {
		b.Fatalf("unexpected err: %v", err)
	}

	// Ensure a valid compact signature is being benchmarked.
	pubKey, wasCompressed, err := RecoverCompact(compactSig, msgHash)
	if err != nil {
		b.Fatalf("unexpected err: %v", err)
	}
	if !wasCompressed {
		b.Fatal("recover claims uncompressed pubkey")
	}
	if !pubKey.IsEqual(wantPubKey) {
		b.Fatal("recover returned unexpected pubkey")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = RecoverCompact(compactSig, msgHash)
	}
}
