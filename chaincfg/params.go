// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Params defines the encoding parameters of a network.  They determine the
// version bytes of addresses and private keys and the magic prefix mixed
// into signed messages.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// MessageMagic is the prefix hashed in front of signed messages.  It
	// is serialized with a variable length integer prefix.
	MessageMagic string
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet describes an error where no network is registered
	// under the requested name.
	ErrUnknownNet = errors.New("unknown network")
)

var (
	registerMtx       sync.RWMutex
	registeredNets    = make(map[string]*Params)
	pubKeyHashAddrIDs = make(map[byte]struct{})
	scriptHashAddrIDs = make(map[byte]struct{})
)

// Register registers the network parameters for a network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	registerMtx.Lock()
	defer registerMtx.Unlock()

	name := strings.ToLower(params.Name)
	if _, ok := registeredNets[name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[name] = params
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsByName returns the parameters of the network registered under the
// case-insensitive name.
func ParamsByName(name string) (*Params, error) {
	registerMtx.RLock()
	defer registerMtx.RUnlock()

	params, ok := registeredNets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return params, nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	registerMtx.RLock()
	defer registerMtx.RUnlock()

	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsScriptHashAddrID(id byte) bool {
	registerMtx.RLock()
	defer registerMtx.RUnlock()

	_, ok := scriptHashAddrIDs[id]
	return ok
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&CloreMainNetParams)
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
}
