// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgsign

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cloreai/clrsign/btcec/ecdsa"
	"github.com/cloreai/clrsign/btcutil"
	"github.com/cloreai/clrsign/chaincfg"
)

// Format selects how a claim signature is produced.
type Format int

const (
	// FormatMessage produces a base64 signed-message signature that
	// wallets can verify against the source address.
	FormatMessage Format = iota

	// FormatDER produces a base64 DER signature over the message hash.
	// The hash is hashed once more before signing.
	FormatDER
)

var formatNames = map[Format]string{
	FormatMessage: "message",
	FormatDER:     "der",
}

// String returns the Format in human-readable form.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Format (%d)", int(f))
}

// ParseFormat returns the Format for its case-insensitive name.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown claim format %q", s)
}

// evmAddrHexLen is the number of hex digits in an Ethereum address.
const evmAddrHexLen = 40

// ClaimRequest holds the inputs of a claim signature.
type ClaimRequest struct {
	// WIF is the private key controlling CloreAddress in Wallet Import
	// Format.
	WIF string

	// CloreAddress is the pay-to-pubkey-hash address whose balance is
	// claimed.
	CloreAddress string

	// EVMAddress is the 0x-prefixed Ethereum destination.
	EVMAddress string
}

// ClaimResult is a signed claim.
type ClaimResult struct {
	Message   string
	Signature string
	Format    Format

	// KeyAddress is the address controlled by the signing key.  It differs
	// from the requested address when the key does not own it.
	KeyAddress string
}

// validateEVMAddress checks for a 0x prefix followed by 40 hex digits.
func validateEVMAddress(addr string) error {
	hexPart, ok := strings.CutPrefix(addr, "0x")
	if !ok {
		hexPart, ok = strings.CutPrefix(addr, "0X")
	}
	if !ok || len(hexPart) != evmAddrHexLen {
		str := fmt.Sprintf("invalid Ethereum address %q: must be 0x "+
			"followed by %d hex digits", addr, evmAddrHexLen)
		return makeError(ErrInvalidEVMAddress, str)
	}
	for _, c := range hexPart {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			str := fmt.Sprintf("invalid Ethereum address %q: "+
				"non-hex digit %q", addr, c)
			return makeError(ErrInvalidEVMAddress, str)
		}
	}
	return nil
}

// validate checks the fields that do not involve key material.
func (req *ClaimRequest) validate(params *chaincfg.Params) error {
	if req.WIF == "" || req.CloreAddress == "" || req.EVMAddress == "" {
		return makeError(ErrMissingInput, "missing required input: "+
			"private key, address and Ethereum address are all required")
	}
	if err := validateEVMAddress(req.EVMAddress); err != nil {
		return err
	}
	_, err := decodeAddress(req.CloreAddress, params)
	return err
}

// SignClaim signs the claim message for req with the key it carries.  The
// key is zeroed before returning.
func SignClaim(req *ClaimRequest, params *chaincfg.Params, format Format) (*ClaimResult, error) {
	if err := req.validate(params); err != nil {
		return nil, err
	}

	wif, err := btcutil.DecodeWIFForNet(req.WIF, params)
	if err != nil {
		str := fmt.Sprintf("unable to decode private key: %v", err)
		return nil, Error{Err: fmt.Errorf("%w: %w", ErrInvalidKey, err),
			Description: str}
	}
	defer wif.PrivKey.Zero()

	keyAddr, err := btcutil.NewAddressPubKeyHashFromPubKey(
		wif.PrivKey.PubKey(), wif.CompressPubKey, params)
	if err != nil {
		return nil, err
	}
	if keyAddr.EncodeAddress() != req.CloreAddress {
		log.Warnf("Private key controls %s, not the claimed address %s",
			keyAddr, req.CloreAddress)
	}

	message := ClaimMessage(req.EVMAddress, req.CloreAddress)
	result := &ClaimResult{
		Message:    message,
		Format:     format,
		KeyAddress: keyAddr.EncodeAddress(),
	}

	switch format {
	case FormatMessage:
		result.Signature, err = SignMessage(wif.PrivKey,
			wif.CompressPubKey, []byte(message), params)
		if err != nil {
			return nil, err
		}

	case FormatDER:
		hash := MessageHash(params.MessageMagic, []byte(message))
		sig, err := ecdsa.Sign(hash, wif.PrivKey, ecdsa.DefaultSignOptions())
		if err != nil {
			return nil, err
		}
		der, err := sig.Serialize(ecdsa.FormatDER)
		if err != nil {
			return nil, err
		}
		result.Signature = base64.StdEncoding.EncodeToString(der)

	default:
		return nil, fmt.Errorf("unsupported claim format %v", format)
	}

	log.Debugf("Signed claim for %s in %v format", req.CloreAddress, format)
	return result, nil
}

// VerifyClaim reports whether sigB64 is a valid claim signature in the given
// format by the key controlling cloreAddr.  DER signatures carry no recovery
// code, so every candidate key is recovered and compared to the address.
func VerifyClaim(evmAddr, cloreAddr, sigB64 string, params *chaincfg.Params,
	format Format) (bool, error) {

	if err := validateEVMAddress(evmAddr); err != nil {
		return false, err
	}
	message := []byte(ClaimMessage(evmAddr, cloreAddr))

	switch format {
	case FormatMessage:
		return VerifyMessage(cloreAddr, sigB64, message, params)

	case FormatDER:
		want, err := decodeAddress(cloreAddr, params)
		if err != nil {
			return false, err
		}
		der, err := base64.StdEncoding.DecodeString(sigB64)
		if err != nil {
			str := fmt.Sprintf("signature is not valid base64: %v", err)
			return false, makeError(ErrInvalidSignature, str)
		}
		sig, err := ecdsa.ParseDERSignature(der)
		if err != nil {
			str := fmt.Sprintf("malformed signature: %v", err)
			return false, Error{Err: fmt.Errorf("%w: %w",
				ErrInvalidSignature, err), Description: str}
		}

		hash := MessageHash(params.MessageMagic, message)
		opts := ecdsa.DefaultSignOptions()
		for code := byte(0); code < 4; code++ {
			withCode, err := sig.WithRecovery(code)
			if err != nil {
				return false, err
			}
			pubKey, err := withCode.RecoverPublicKey(hash, opts)
			if err != nil {
				continue
			}
			for _, compressed := range []bool{true, false} {
				got, err := btcutil.NewAddressPubKeyHashFromPubKey(
					pubKey, compressed, params)
				if err != nil {
					return false, err
				}
				if got.EncodeAddress() == want.EncodeAddress() {
					return withCode.Verify(hash, pubKey, opts), nil
				}
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("unsupported claim format %v", format)
	}
}
