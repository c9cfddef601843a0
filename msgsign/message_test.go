// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgsign

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	cloreMagic   = "Clore Signed Message:\n"
	bitcoinMagic = "Bitcoin Signed Message:\n"
)

// TestWriteVarInt ensures lengths are serialized with the compact size
// encoding at each size boundary.
func TestWriteVarInt(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "00"},
		{0xfc, "fc"},
		{0xfd, "fdfd00"},
		{300, "fd2c01"},
		{0xffff, "fdffff"},
		{0x10000, "fe00000100"},
		{70000, "fe70110100"},
		{0xffffffff, "feffffffff"},
		{1 << 32, "ff0000000001000000"},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		writeVarInt(&buf, test.in)
		require.Equal(t, test.want, hex.EncodeToString(buf.Bytes()),
			"value %d", test.in)
	}
}

// TestMessageHash ensures message digests match known values for both the
// CLORE and Bitcoin message magic.
func TestMessageHash(t *testing.T) {
	tests := []struct {
		name  string
		magic string
		msg   string
		want  string
	}{{
		name:  "clore empty",
		magic: cloreMagic,
		msg:   "",
		want:  "b82458533497e8a2f6f29259072ff7120a984f81be7921530d45b8e25288c9ff",
	}, {
		name:  "clore hello",
		magic: cloreMagic,
		msg:   "hello",
		want:  "ecbb98f6ba0c2365c5400d5f922f8700a86d7b2baeb0fc1b96ab5e655fd57ef7",
	}, {
		name:  "bitcoin empty",
		magic: bitcoinMagic,
		msg:   "",
		want:  "80e795d4a4caadd7047af389d9f7f220562feb6196032e2131e10563352c4bcc",
	}, {
		name:  "bitcoin hello",
		magic: bitcoinMagic,
		msg:   "hello",
		want:  "cf0447ec85f0ce7150a257db32ebfcb7523dae17c36dbd1be598779fec0484f4",
	}}

	for _, test := range tests {
		got := MessageHash(test.magic, []byte(test.msg))
		require.Equal(t, test.want, hex.EncodeToString(got), test.name)
	}
}

// TestMessagePayload ensures the payload of a claim is laid out as the
// length-prefixed magic followed by the length-prefixed message.
func TestMessagePayload(t *testing.T) {
	msg := ClaimMessage("0x000000000000000000000000000000000000dEaD",
		"AMRLK7w3CqhMEhi2A2yVPvyWKNUZKZKTBy")
	require.Equal(t, "Claim request for CLORE tokens to Ethereum address "+
		"0x000000000000000000000000000000000000dEaD from "+
		"AMRLK7w3CqhMEhi2A2yVPvyWKNUZKZKTBy", msg)

	payload := MessagePayload(cloreMagic, []byte(msg))
	require.Len(t, payload, 1+len(cloreMagic)+1+len(msg))
	require.Equal(t, byte(len(cloreMagic)), payload[0])
	require.Equal(t, cloreMagic, string(payload[1:1+len(cloreMagic)]))
	require.Equal(t, byte(len(msg)), payload[1+len(cloreMagic)])
	require.Equal(t, "dc3e0b8521a03798d591ba580461ed30184b927a3d8933349c0b0adebedbdfad",
		hex.EncodeToString(MessageHash(cloreMagic, []byte(msg))))
}

// TestMessagePayloadLong ensures messages of 253 bytes or more use the
// three-byte length prefix.
func TestMessagePayloadLong(t *testing.T) {
	msg := bytes.Repeat([]byte{'a'}, 300)
	payload := MessagePayload(cloreMagic, msg)
	off := 1 + len(cloreMagic)
	require.Equal(t, []byte{0xfd, 0x2c, 0x01}, payload[off:off+3])
	require.Equal(t, msg, payload[off+3:])
}
