// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgsign

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cloreai/clrsign/chainhash"
)

// claimFormat is the text signed to migrate a CLORE balance to an Ethereum
// address.
const claimFormat = "Claim request for CLORE tokens to Ethereum address %s from %s"

// writeVarInt serializes val to w using a variable number of bytes depending
// on its value, following the Bitcoin compact size encoding.
func writeVarInt(w *bytes.Buffer, val uint64) {
	var buf [9]byte
	switch {
	case val < 0xfd:
		w.WriteByte(uint8(val))
	case val <= math.MaxUint16:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(val))
		w.Write(buf[:3])
	case val <= math.MaxUint32:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(val))
		w.Write(buf[:5])
	default:
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], val)
		w.Write(buf[:9])
	}
}

// writeVarBytes serializes b to w as a variable length integer containing
// the number of bytes followed by the bytes themselves.
func writeVarBytes(w *bytes.Buffer, b []byte) {
	writeVarInt(w, uint64(len(b)))
	w.Write(b)
}

// MessagePayload returns the bytes hashed when signing msg under magic:
// varint(len(magic)) || magic || varint(len(msg)) || msg.
func MessagePayload(magic string, msg []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(magic) + len(msg) + 18)
	writeVarBytes(&buf, []byte(magic))
	writeVarBytes(&buf, msg)
	return buf.Bytes()
}

// MessageHash returns the double SHA-256 of the message payload.  This is
// the digest committed to by signed messages.
func MessageHash(magic string, msg []byte) []byte {
	return chainhash.DoubleHashB(MessagePayload(magic, msg))
}

// ClaimMessage returns the claim text authorizing the migration of the
// balance of cloreAddr to evmAddr.
func ClaimMessage(evmAddr, cloreAddr string) string {
	return fmt.Sprintf(claimFormat, evmAddr, cloreAddr)
}
