// Copyright (c) 2020-2021 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides secp256k1-optimized ECDSA signing and verification.

This package provides data structures and functions necessary to produce and
verify deterministic canonical signatures in accordance with RFC6979 and
BIP0062, optimized specifically for the secp256k1 curve using the Elliptic Curve
Digital Signature Algorithm (ECDSA), as defined in FIPS 186-3.

Signatures produced by Sign are deterministic for a given key and message
unless extra entropy is requested through SignOptions.  They are normalized to
the lower half of the group order by default and always carry the recovery code
needed to reconstruct the signing public key.

# Signature Formats

Three wire formats are supported:

  - FormatCompact: the 64-byte concatenation of the big-endian R and S
  - FormatDER: the strict ASN.1 DER sequence of the two integers
  - FormatRecovered: the 65-byte recovery code followed by R and S

In addition, SignCompact and RecoverCompact implement the header-prefixed
compact format used by Bitcoin signed messages, where the first byte is
27 + recovery code, plus 4 when the signing key is serialized compressed.

# Verification

Verify and VerifyBytes are total: any failure, from a malformed encoding to a
signature that does not match, reports false.  The reason is logged at the
trace level.
*/
package ecdsa
