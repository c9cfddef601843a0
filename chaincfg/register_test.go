// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/cloreai/clrsign/chaincfg"
)

// Define some of the required parameters for a user-registered
// network.  This is necessary to test the registration of and
// lookup of encoding magics from the network.
var mockNetParams = Params{
	Name:             "mocknet",
	PubKeyHashAddrID: 0x9f,
	ScriptHashAddrID: 0xf9,
	PrivateKeyID:     0x9e,
	HDPrivateKeyID:   [4]byte{0x01, 0x02, 0x03, 0x04},
	HDPublicKeyID:    [4]byte{0x05, 0x06, 0x07, 0x08},
	MessageMagic:     "Mock Signed Message:\n",
}

func TestRegister(t *testing.T) {
	type registerTest struct {
		name   string
		params *Params
		err    error
	}
	type magicTest struct {
		magic byte
		valid bool
	}
	type nameTest struct {
		name string
		want *Params
		err  error
	}

	tests := []struct {
		name        string
		register    []registerTest
		p2pkhMagics []magicTest
		p2shMagics  []magicTest
		names       []nameTest
	}{
		{
			name: "default networks",
			register: []registerTest{
				{
					name:   "duplicate clore",
					params: &CloreMainNetParams,
					err:    ErrDuplicateNet,
				},
				{
					name:   "duplicate mainnet",
					params: &MainNetParams,
					err:    ErrDuplicateNet,
				},
				{
					name:   "duplicate testnet3",
					params: &TestNet3Params,
					err:    ErrDuplicateNet,
				},
			},
			p2pkhMagics: []magicTest{
				{magic: CloreMainNetParams.PubKeyHashAddrID, valid: true},
				{magic: MainNetParams.PubKeyHashAddrID, valid: true},
				{magic: TestNet3Params.PubKeyHashAddrID, valid: true},
				{magic: mockNetParams.PubKeyHashAddrID, valid: false},
				{magic: 0xFF, valid: false},
			},
			p2shMagics: []magicTest{
				{magic: CloreMainNetParams.ScriptHashAddrID, valid: true},
				{magic: MainNetParams.ScriptHashAddrID, valid: true},
				{magic: TestNet3Params.ScriptHashAddrID, valid: true},
				{magic: mockNetParams.ScriptHashAddrID, valid: false},
				{magic: 0xFF, valid: false},
			},
			names: []nameTest{
				{name: "clore", want: &CloreMainNetParams},
				{name: "CLORE", want: &CloreMainNetParams},
				{name: "mainnet", want: &MainNetParams},
				{name: "testnet3", want: &TestNet3Params},
				{name: "mocknet", err: ErrUnknownNet},
				{name: "", err: ErrUnknownNet},
			},
		},
		{
			name: "register mocknet",
			register: []registerTest{
				{
					name:   "mocknet",
					params: &mockNetParams,
					err:    nil,
				},
			},
			p2pkhMagics: []magicTest{
				{magic: CloreMainNetParams.PubKeyHashAddrID, valid: true},
				{magic: mockNetParams.PubKeyHashAddrID, valid: true},
				{magic: 0xFF, valid: false},
			},
			p2shMagics: []magicTest{
				{magic: CloreMainNetParams.ScriptHashAddrID, valid: true},
				{magic: mockNetParams.ScriptHashAddrID, valid: true},
				{magic: 0xFF, valid: false},
			},
			names: []nameTest{
				{name: "mocknet", want: &mockNetParams},
			},
		},
		{
			name: "more duplicates",
			register: []registerTest{
				{
					name:   "duplicate clore",
					params: &CloreMainNetParams,
					err:    ErrDuplicateNet,
				},
				{
					name:   "duplicate mocknet",
					params: &mockNetParams,
					err:    ErrDuplicateNet,
				},
				{
					name: "duplicate mocknet with different case",
					params: &Params{
						Name:             "MockNet",
						PubKeyHashAddrID: 0x01,
					},
					err: ErrDuplicateNet,
				},
			},
			p2pkhMagics: []magicTest{
				{magic: mockNetParams.PubKeyHashAddrID, valid: true},
				{magic: 0x01, valid: false},
			},
		},
	}

	for _, test := range tests {
		for _, regTest := range test.register {
			err := Register(regTest.params)
			if !errors.Is(err, regTest.err) {
				t.Errorf("%s:%s: Registered network with unexpected error: got %v expected %v",
					test.name, regTest.name, err, regTest.err)
			}
		}
		for i, magTest := range test.p2pkhMagics {
			valid := IsPubKeyHashAddrID(magTest.magic)
			if valid != magTest.valid {
				t.Errorf("%s: P2PKH magic %d valid mismatch: got %v expected %v",
					test.name, i, valid, magTest.valid)
			}
		}
		for i, magTest := range test.p2shMagics {
			valid := IsScriptHashAddrID(magTest.magic)
			if valid != magTest.valid {
				t.Errorf("%s: P2SH magic %d valid mismatch: got %v expected %v",
					test.name, i, valid, magTest.valid)
			}
		}
		for _, nameTest := range test.names {
			params, err := ParamsByName(nameTest.name)
			if !errors.Is(err, nameTest.err) {
				t.Errorf("%s: ParamsByName(%q) unexpected error: got %v expected %v",
					test.name, nameTest.name, err, nameTest.err)
				continue
			}
			if params != nameTest.want {
				t.Errorf("%s: ParamsByName(%q) returned unexpected params %v",
					test.name, nameTest.name, params)
			}
		}
	}
}

// TestCloreMessageMagic ensures the CLORE magic serializes to the 0x16 length
// prefix used by CLORE wallets.
func TestCloreMessageMagic(t *testing.T) {
	if got := len(CloreMainNetParams.MessageMagic); got != 0x16 {
		t.Fatalf("unexpected magic length: got %d, want %d", got, 0x16)
	}
	if CloreMainNetParams.HDCoinType != 1313 {
		t.Fatalf("unexpected coin type: %d", CloreMainNetParams.HDCoinType)
	}
}

// TestHDKeyIDs ensures the extended key version bytes of the default networks
// match the prefixes their wallets serialize.
func TestHDKeyIDs(t *testing.T) {
	tests := []struct {
		params   *Params
		wantPriv []byte
		wantPub  []byte
	}{
		{&CloreMainNetParams, []byte{0x04, 0x88, 0xad, 0xe4}, []byte{0x04, 0x88, 0xb2, 0x1e}},
		{&MainNetParams, []byte{0x04, 0x88, 0xad, 0xe4}, []byte{0x04, 0x88, 0xb2, 0x1e}},
		{&TestNet3Params, []byte{0x04, 0x35, 0x83, 0x94}, []byte{0x04, 0x35, 0x87, 0xcf}},
	}
	for _, test := range tests {
		if !bytes.Equal(test.params.HDPrivateKeyID[:], test.wantPriv) {
			t.Errorf("%s: unexpected private key id %x", test.params.Name,
				test.params.HDPrivateKeyID)
		}
		if !bytes.Equal(test.params.HDPublicKeyID[:], test.wantPub) {
			t.Errorf("%s: unexpected public key id %x", test.params.Name,
				test.params.HDPublicKeyID)
		}
	}
}
