// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgsign

import (
	"encoding/base64"
	"fmt"

	"github.com/cloreai/clrsign/btcec"
	"github.com/cloreai/clrsign/btcec/ecdsa"
	"github.com/cloreai/clrsign/btcutil"
	"github.com/cloreai/clrsign/chaincfg"
)

// SignMessage signs msg with the network's message magic and returns the
// base64 encoding of the 65-byte compact signature.  The compressed flag
// records which serialization of the public key the signer's address uses.
func SignMessage(privKey *btcec.PrivateKey, compressed bool, msg []byte,
	params *chaincfg.Params) (string, error) {

	hash := MessageHash(params.MessageMagic, msg)
	sig, err := ecdsa.SignCompact(privKey, hash, compressed)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyMessage reports whether sigB64 is a signature of msg by the key
// controlling the pay-to-pubkey-hash address addr.  An error is returned when
// the address or signature is malformed.
func VerifyMessage(addr, sigB64 string, msg []byte, params *chaincfg.Params) (bool, error) {
	want, err := decodeAddress(addr, params)
	if err != nil {
		return false, err
	}

	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		str := fmt.Sprintf("signature is not valid base64: %v", err)
		return false, makeError(ErrInvalidSignature, str)
	}

	hash := MessageHash(params.MessageMagic, msg)
	pubKey, wasCompressed, err := ecdsa.RecoverCompact(sig, hash)
	if err != nil {
		log.Debugf("Unable to recover public key: %v", err)
		return false, nil
	}

	got, err := btcutil.NewAddressPubKeyHashFromPubKey(pubKey,
		wasCompressed, params)
	if err != nil {
		return false, err
	}
	return got.EncodeAddress() == want.EncodeAddress(), nil
}

// decodeAddress decodes a pay-to-pubkey-hash address that must belong to
// params.
func decodeAddress(addr string, params *chaincfg.Params) (*btcutil.AddressPubKeyHash, error) {
	decoded, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		str := fmt.Sprintf("invalid address %q: %v", addr, err)
		return nil, Error{Err: fmt.Errorf("%w: %w", ErrInvalidAddress, err),
			Description: str}
	}
	pkh, ok := decoded.(*btcutil.AddressPubKeyHash)
	if !ok || !pkh.IsForNet(params) {
		str := fmt.Sprintf("address %q is not a pay-to-pubkey-hash "+
			"address for %s", addr, params.Name)
		return nil, makeError(ErrInvalidAddress, str)
	}
	return pkh, nil
}
