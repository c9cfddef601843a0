// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cloreai/clrsign/btcec"
	"github.com/cloreai/clrsign/chainhash"
	"github.com/cloreai/clrsign/hmacdrbg"
)

// maxMessageLen is the largest message digest accepted for signing,
// verification and recovery.
const maxMessageLen = 8192

// recoverySupported is false for curves where N is so much smaller than P
// that an x coordinate may exceed N more than once.
var recoverySupported = new(big.Int).Lsh(btcec.Params().N, 1).
	Cmp(btcec.Params().P) >= 0

// SignOptions controls how messages are signed and verified.
type SignOptions struct {
	// Prehash hashes the message with SHA-256 before it is signed or
	// verified.  When false the message must already be a digest.
	Prehash bool

	// LowS normalizes produced signatures to s <= N/2 and makes
	// verification reject signatures with a high s.
	LowS bool

	// ExtraEntropy is appended to the nonce seed as additional data per
	// section 3.6 of RFC 6979.  Signatures stay deterministic for a fixed
	// value.
	ExtraEntropy []byte

	// RandomEntropy appends 32 bytes from Rand to the nonce seed.  It takes
	// precedence over ExtraEntropy.
	RandomEntropy bool

	// Rand is the source used by RandomEntropy.  crypto/rand is used when
	// nil.
	Rand io.Reader
}

// DefaultSignOptions returns the options used when nil is passed: the
// message is hashed and low-S is enforced.
func DefaultSignOptions() *SignOptions {
	return &SignOptions{Prehash: true, LowS: true}
}

// orDefault returns opts or the defaults when opts is nil.
func (opts *SignOptions) orDefault() *SignOptions {
	if opts == nil {
		return DefaultSignOptions()
	}
	return opts
}

// entropy returns the additional seed data selected by the options.
func (opts *SignOptions) entropy() ([]byte, error) {
	if !opts.RandomEntropy {
		return opts.ExtraEntropy, nil
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	e := make([]byte, btcec.PrivKeyBytesLen)
	if _, err := io.ReadFull(r, e); err != nil {
		return nil, fmt.Errorf("reading signing entropy: %w", err)
	}
	return e, nil
}

// messageDigest returns the digest that is signed for msg.
func messageDigest(msg []byte, prehash bool) []byte {
	if prehash {
		return chainhash.HashB(msg)
	}
	return msg
}

// bits2int converts a digest to an integer per section 2.3.2 of RFC 6979,
// keeping only the leftmost bits of digests longer than the group order.
func bits2int(hash []byte) (*big.Int, error) {
	if len(hash) > maxMessageLen {
		str := fmt.Sprintf("message digest is too large: %d > %d bytes",
			len(hash), maxMessageLen)
		return nil, signatureError(ErrMessageTooLong, str)
	}
	v := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - btcec.Params().BitSize; excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v, nil
}

// hashToScalar returns bits2int(hash) reduced modulo N.
func hashToScalar(hash []byte) (btcec.ModNScalar, error) {
	v, err := bits2int(hash)
	if err != nil {
		return btcec.ModNScalar{}, err
	}
	return btcec.Fn.New(v), nil
}

// isHighS reports whether s is greater than N/2.
func isHighS(s btcec.ModNScalar) bool {
	return s.Big().Cmp(btcec.HalfOrder()) > 0
}

// signer holds the inputs of one signing operation.  It turns candidate
// nonces produced by the DRBG into signatures.
type signer struct {
	d    btcec.ModNScalar
	m    btcec.ModNScalar
	lowS bool
}

// signWithNonce returns the signature for the candidate nonce bytes, or false
// when the candidate must be rejected because k, r or s is zero or k is not
// below N.
//
// The recovery code records the parity of R.y in bit 0 and whether R.x had
// to be reduced modulo N in bit 1.  Negating s for low-S negates R, so the
// parity bit is flipped along with it.
func (sg *signer) signWithNonce(kBytes []byte) (*Signature, bool) {
	kInt, err := bits2int(kBytes)
	if err != nil || kInt.Sign() == 0 || !btcec.Fn.IsValid(kInt) {
		return nil, false
	}
	k := btcec.Fn.New(kInt)
	kInv, err := btcec.Fn.Inv(k)
	if err != nil {
		return nil, false
	}

	q, err := btcec.ScalarBaseMult(k)
	if err != nil {
		return nil, false
	}
	qx, qy := q.ToAffine()
	r := btcec.Fn.New(qx.Big())
	if r.IsZero() {
		return nil, false
	}

	// s = k^-1 * (m + r*d)
	s := btcec.Fn.Mul(kInv, btcec.Fn.Add(sg.m, btcec.Fn.Mul(r, sg.d)))
	if s.IsZero() {
		return nil, false
	}

	var recovery byte
	if qx.Big().Cmp(r.Big()) != 0 {
		recovery = 2
	}
	if qy.IsOdd() {
		recovery |= 1
	}
	if sg.lowS && isHighS(s) {
		s = btcec.Fn.Neg(s)
		recovery ^= 1
	}

	sig := &Signature{r: r, s: s, recovery: noRecovery}
	if recoverySupported {
		sig.recovery = int8(recovery)
	}
	return sig, true
}

// Sign generates an ECDSA signature over the secp256k1 curve for msg using
// the private key.  The nonce is derived deterministically per RFC 6979 from
// the key and the digest, optionally mixed with the extra entropy of the
// options.  A nil opts selects DefaultSignOptions.
//
// The returned signature carries a recovery code.
func Sign(msg []byte, privKey *btcec.PrivateKey, opts *SignOptions) (*Signature, error) {
	opts = opts.orDefault()

	hash := messageDigest(msg, opts.Prehash)
	m, err := hashToScalar(hash)
	if err != nil {
		return nil, err
	}
	if privKey.Key.IsZero() {
		return nil, btcec.Error{Err: btcec.ErrPrivKeyOutOfRange,
			Description: "invalid private key: zero"}
	}

	// seed = int2octets(d) || int2octets(m) [|| entropy]
	extra, err := opts.entropy()
	if err != nil {
		return nil, err
	}
	seed := make([]byte, 0, 2*btcec.Fn.Bytes()+len(extra))
	seed = append(seed, btcec.Fn.ToBytes(privKey.Key)...)
	seed = append(seed, btcec.Fn.ToBytes(m)...)
	seed = append(seed, extra...)

	drbg, err := hmacdrbg.New(btcec.Fn.Bytes())
	if err != nil {
		return nil, err
	}
	sg := &signer{d: privKey.Key, m: m, lowS: opts.LowS}
	sig, err := hmacdrbg.GenerateUntil(drbg, seed, sg.signWithNonce)
	if err != nil {
		return nil, fmt.Errorf("unable to derive signing nonce: %w", err)
	}
	return sig, nil
}

// SignBytes signs msg with the serialized 32-byte private key and returns
// the signature in the requested format.
func SignBytes(msg, privKey []byte, opts *SignOptions, format Format) ([]byte, error) {
	key, err := btcec.PrivKeyFromBytes(privKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	sig, err := Sign(msg, key, opts)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(format)
}
