// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"github.com/cloreai/clrsign/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Hash160Size is the size of a RIPEMD160 digest.
const Hash160Size = ripemd160.Size

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(chainhash.HashB(buf))
	return hasher.Sum(nil)
}
