// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcec implements the secp256k1 elliptic curve group used by Bitcoin
and derived chains.

Points are kept in homogeneous projective coordinates and combined with the
complete addition and doubling formulas of Renes, Costello and Batina, so the
group law has no exceptional cases for the identity or for equal inputs.

Scalar multiplication comes in two flavors.  Point.Multiply is the
constant-time path meant for secret scalars.  It decomposes the scalar with
the GLV endomorphism and evaluates both halves with windowed non-adjacent form
over a table of multiples, carrying a fake accumulator so the sequence of
operations does not depend on the scalar.  Point.MultiplyUnsafe is the faster
variable-time path for public inputs such as signature verification.

Tables of multiples are held in a PrecomputeCache keyed by point identifier.
The generator is registered in DefaultPrecomputes with an 8-bit window and its
table is built on first use.  Other points can opt in with Point.Precompute.

Coordinates and scalars are elements of the generic prime fields Fp and Fn
from the modular package.  Distinct type parameters keep a FieldVal from ever
being used where a ModNScalar is expected.
*/
package btcec
