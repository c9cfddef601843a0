// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcutil

import (
	"errors"
	"fmt"

	"github.com/cloreai/clrsign/base58"
	"github.com/cloreai/clrsign/btcec"
	"github.com/cloreai/clrsign/chaincfg"
)

var (
	// ErrMalformedPrivateKey describes an error where a WIF-encoded private
	// key cannot be decoded due to being improperly formatted.  This may
	// occur if the byte length is incorrect, an unexpected magic number was
	// encountered or the key is not a valid scalar.
	ErrMalformedPrivateKey = errors.New("malformed private key")

	// ErrWrongNetwork describes an error where a WIF-encoded private key
	// carries the version byte of a network other than the expected one.
	ErrWrongNetwork = errors.New("private key is for the wrong network")
)

// compressMagic is the magic byte used to identify a WIF encoding for
// an address created from a compressed serialized public key.
const compressMagic byte = 0x01

// WIF contains the individual components described by the Wallet Import Format
// (WIF).  A WIF string is typically used to represent a private key and its
// associated address in a way that  may be easily copied and imported into or
// exported from wallet software.  WIF strings may be decoded into this
// structure by calling DecodeWIF or created with a user-provided private key
// by calling NewWIF.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *btcec.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool

	// netID is the network identifier byte used when
	// WIF encoding the private key.
	netID byte
}

// NewWIF creates a new WIF structure to export an address and its private key
// as a string encoded in the Wallet Import Format.  The compress argument
// specifies whether the address intended to be imported or exported was created
// by serializing the public key compressed rather than uncompressed.
func NewWIF(privKey *btcec.PrivateKey, net *chaincfg.Params, compress bool) (*WIF, error) {
	if net == nil {
		return nil, errors.New("no network")
	}
	return &WIF{privKey, compress, net.PrivateKeyID}, nil
}

// IsForNet returns whether or not the decoded WIF structure is associated
// with the passed network.
func (w *WIF) IsForNet(net *chaincfg.Params) bool {
	return w.netID == net.PrivateKeyID
}

// Version returns the network identifier byte of the WIF.
func (w *WIF) Version() byte {
	return w.netID
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format.
//
// The WIF string must be a base58-encoded string of the following byte
// sequence:
//
//   - 1 byte to identify the network, for example 0x80 for the Bitcoin main
//     network or 0x70 for CLORE
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - Optional 1 byte (equal to 0x01) if the address being imported or
//     exported was created by taking the RIPEMD160 after SHA256 hash of a
//     serialized compressed (33-byte) public key
//   - 4 bytes of checksum, must equal the first four bytes of the double
//     SHA256 of every byte before the checksum in this sequence
//
// If the base58-decoded byte sequence does not match this, DecodeWIF will
// return a non-nil error.  The checksum is verified first, and
// ErrChecksumMismatch is returned if it does not match.  ErrMalformedPrivateKey
// is returned when the string is not base58, the payload is of an impossible
// length or has an unexpected compression flag, or the key is outside [1, N).
func DecodeWIF(wif string) (*WIF, error) {
	payload, err := base58.CheckDecode(wif)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return nil, ErrChecksumMismatch
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMalformedPrivateKey, err)
	}

	// Length of the payload must be 32 bytes + an optional 1 byte (0x01)
	// if compressed, plus 1 byte for netID.
	var compress bool
	switch len(payload) {
	case 1 + btcec.PrivKeyBytesLen + 1:
		if payload[1+btcec.PrivKeyBytesLen] != compressMagic {
			return nil, ErrMalformedPrivateKey
		}
		compress = true
	case 1 + btcec.PrivKeyBytesLen:
		compress = false
	default:
		return nil, ErrMalformedPrivateKey
	}

	netID := payload[0]
	privKey, err := btcec.PrivKeyFromBytes(payload[1 : 1+btcec.PrivKeyBytesLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPrivateKey, err)
	}
	return &WIF{privKey, compress, netID}, nil
}

// DecodeWIFForNet decodes the WIF string like DecodeWIF and additionally
// requires its version byte to match the private key identifier of net.
func DecodeWIFForNet(wif string, net *chaincfg.Params) (*WIF, error) {
	w, err := DecodeWIF(wif)
	if err != nil {
		return nil, err
	}
	if !w.IsForNet(net) {
		w.PrivKey.Zero()
		return nil, fmt.Errorf("%w: version 0x%02x, expected 0x%02x for %s",
			ErrWrongNetwork, w.netID, net.PrivateKeyID, net.Name)
	}
	return w, nil
}

// String creates the Wallet Import Format string encoding of a WIF structure.
// See DecodeWIF for a detailed breakdown of the format and requirements of
// a valid WIF string.
func (w *WIF) String() string {
	// Precalculate size.  Maximum number of bytes before base58 encoding
	// is one byte for the network, 32 bytes of private key and possibly one
	// extra byte if the pubkey is to be compressed.
	encodeLen := 1 + btcec.PrivKeyBytesLen
	if w.CompressPubKey {
		encodeLen++
	}

	a := make([]byte, 0, encodeLen)
	a = append(a, w.netID)
	a = append(a, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		a = append(a, compressMagic)
	}
	return base58.CheckEncode(a)
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format.  The
// serialization format chosen depends on the value of w.CompressPubKey.
func (w *WIF) SerializePubKey() []byte {
	pk := w.PrivKey.PubKey()
	if w.CompressPubKey {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}
