// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package msgsign implements Bitcoin style signed messages and the CLORE token
claim built on them.

A signed message commits to the double SHA-256 of the network message magic
and the message, each prefixed with its length as a variable length integer.
The signature is the 65-byte compact format, a header byte of 27 plus the
recovery code plus 4 for compressed keys followed by R and S, encoded as
base64.  Verification recovers the public key and compares its address with
the claimed one.

A claim is the message

	Claim request for CLORE tokens to Ethereum address <evm> from <clore>

signed by the key controlling the CLORE address.
*/
package msgsign
