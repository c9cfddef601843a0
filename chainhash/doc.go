// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chainhash provides the SHA-256 based hashing used throughout clrsign.

It contains a self-contained SHA-256 implementation exposed through the
standard hash.Hash interface, HMAC-SHA256 over that implementation, and the
double SHA-256 helpers used by Base58Check and Bitcoin-style message signing.

The Hash type is a 32-byte digest.  Its String method follows the Bitcoin
convention of displaying the bytes in reverse order.
*/
package chainhash
