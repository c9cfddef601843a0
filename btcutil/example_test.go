// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil_test

import (
	"fmt"

	"github.com/cloreai/clrsign/btcutil"
	"github.com/cloreai/clrsign/chaincfg"
)

// This example demonstrates decoding a CLORE private key in Wallet Import
// Format and deriving the address it controls.
func ExampleDecodeWIFForNet() {
	net := &chaincfg.CloreMainNetParams
	wif, err := btcutil.DecodeWIFForNet(
		"Hb6xny8EBHLJf19FdpsYiKQPdKQpkezjFh5tKeq2uZbfiV9sBPrR", net)
	if err != nil {
		fmt.Println(err)
		return
	}

	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(wif.SerializePubKey()), net)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Compressed:", wif.CompressPubKey)
	fmt.Println("Address:", addr)

	// Output:
	// Compressed: true
	// Address: AMRLK7w3CqhMEhi2A2yVPvyWKNUZKZKTBy
}
