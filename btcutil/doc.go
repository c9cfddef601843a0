// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcutil provides the key and address encodings used by CLORE and
Bitcoin wallets.

# Wallet Import Format

A WIF is the Base58Check encoding of a network version byte, the 32-byte
private key and an optional 0x01 flag announcing that the matching address
hashes the compressed public key.  DecodeWIF accepts any version byte while
DecodeWIFForNet additionally checks it against a network.

# Addresses

Pay-to-pubkey-hash and pay-to-script-hash addresses are the Base58Check
encoding of a version byte followed by the Hash160, RIPEMD160 after SHA256, of
the serialized public key or script.
*/
package btcutil
