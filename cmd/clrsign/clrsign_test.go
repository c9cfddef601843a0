// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloreai/clrsign/msgsign"
	"github.com/stretchr/testify/require"
)

const (
	testWIF  = "Hb6xny8EBHLJf19FdpsYiKQPdKQpkezjFh5tKeq2uZbfiV9sBPrR"
	testAddr = "AMRLK7w3CqhMEhi2A2yVPvyWKNUZKZKTBy"
	testEVM  = "0x000000000000000000000000000000000000dEaD"
	testSig  = "H3njXXJzHSPaKyrLz2KSpbPi1oXqpk4gHfjX/3slIHIdBpqecA2er+" +
		"hBpSwDpv9MOEre1IKkDseNhYUqAJVSfzg="
)

// newTestPrompter returns a prompter reading input lines and answering the
// secret prompt with secret.
func newTestPrompter(input, secret string) *prompter {
	return &prompter{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: io.Discard,
		readSecret: func(string) ([]byte, error) {
			if secret == "" {
				return nil, errors.New("no secret")
			}
			return []byte(secret), nil
		},
	}
}

// TestRunSignPrompted ensures addresses are prompted for when not configured
// and the claim signature is written out.
func TestRunSignPrompted(t *testing.T) {
	cfg, err := loadConfig(noConfigArgs(t))
	require.NoError(t, err)

	var out bytes.Buffer
	p := newTestPrompter(testAddr+"\n"+testEVM+"\n", testWIF+"\n")
	require.NoError(t, run(cfg, p, &out))
	require.Contains(t, out.String(), "Message:   "+
		msgsign.ClaimMessage(testEVM, testAddr))
	require.Contains(t, out.String(), "Signature: "+testSig)
	require.NotContains(t, out.String(), "Warning")
}

// TestRunSignFlags ensures configured addresses are used without prompting.
func TestRunSignFlags(t *testing.T) {
	cfg, err := loadConfig(noConfigArgs(t, "--clore="+testAddr,
		"--evm="+testEVM, "--format=der"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, newTestPrompter("", testWIF), &out))
	require.Contains(t, out.String(), "Format:    der")
}

// TestRunSignErrors ensures failures to read or use the key are returned.
func TestRunSignErrors(t *testing.T) {
	cfg, err := loadConfig(noConfigArgs(t, "--clore="+testAddr,
		"--evm="+testEVM))
	require.NoError(t, err)

	err = run(cfg, newTestPrompter("", ""), io.Discard)
	require.ErrorContains(t, err, "unable to read private key")

	err = run(cfg, newTestPrompter("", "garbage"), io.Discard)
	require.ErrorIs(t, err, msgsign.ErrInvalidKey)

	cfg.EVMAddr = ""
	err = run(cfg, newTestPrompter("", testWIF), io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

// TestRunVerify ensures verification reports matching and mismatching
// signatures.
func TestRunVerify(t *testing.T) {
	cfg, err := loadConfig(noConfigArgs(t, "--verify",
		"--signature="+testSig, "--clore="+testAddr))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, newTestPrompter(testEVM, ""), &out))
	require.Contains(t, out.String(), "Verified:  true")

	other := "0x52908400098527886E0F7030069857D2E4169EE7"
	out.Reset()
	err = run(cfg, newTestPrompter(other+"\n", ""), &out)
	require.ErrorIs(t, err, errInvalidSignature)
	require.Contains(t, out.String(), "Verified:  false")
}
