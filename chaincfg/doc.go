// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the encoding parameters of the supported networks.
//
// The parameters determine the version bytes of pay-to-pubkey-hash and
// pay-to-script-hash addresses, the version byte of private keys in Wallet
// Import Format and the magic prefix of signed messages.  The CLORE main
// network together with the Bitcoin main and test networks are registered by
// default.  Additional networks may be added with Register, after which they
// can be looked up by name with ParamsByName.
package chaincfg
