// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloreai/clrsign/internal/log"
	"github.com/cloreai/clrsign/internal/version"
	"github.com/cloreai/clrsign/msgsign"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/crypto/ssh/terminal"
)

// clrsLog is the logger of the command itself.
var clrsLog = log.ClrsLog

// errInvalidSignature is returned when a verified signature does not match.
var errInvalidSignature = errors.New("signature is not valid for the claim")

// secretReader reads a secret after displaying prompt.
type secretReader func(prompt string) ([]byte, error)

// prompter reads claim inputs interactively.
type prompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret secretReader
}

// line displays prompt and returns the next line of input without
// surrounding whitespace.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// valueOr returns v, prompting for it when empty.
func (p *prompter) valueOr(v, prompt string) (string, error) {
	if v != "" {
		return v, nil
	}
	return p.line(prompt)
}

// terminalSecret reads a secret from the terminal without echo when standard
// input is a terminal and falls back to a plain line otherwise.
func terminalSecret(in *bufio.Reader, out io.Writer) secretReader {
	return func(prompt string) ([]byte, error) {
		fd := int(os.Stdin.Fd())
		if !terminal.IsTerminal(fd) {
			s, err := in.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && s != "") {
				return nil, err
			}
			return []byte(strings.TrimSpace(s)), nil
		}
		fmt.Fprint(out, prompt)
		secret, err := terminal.ReadPassword(fd)
		fmt.Fprintln(out)
		return secret, err
	}
}

// zero clears a secret held in memory.
func zero(b []byte) {
	for i := range b {
		b[i] = 0x00
	}
}

// run signs or verifies a claim as selected by cfg, prompting through p for
// anything the configuration does not provide, and writes the result to out.
func run(cfg *config, p *prompter, out io.Writer) error {
	cloreAddr, err := p.valueOr(cfg.CloreAddr, "CLORE address: ")
	if err != nil {
		return err
	}
	evmAddr, err := p.valueOr(cfg.EVMAddr, "Ethereum address: ")
	if err != nil {
		return err
	}

	if cfg.Verify {
		ok, err := msgsign.VerifyClaim(evmAddr, cloreAddr, cfg.Signature,
			cfg.params, cfg.format)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Message:   %s\n", msgsign.ClaimMessage(evmAddr,
			cloreAddr))
		fmt.Fprintf(out, "Verified:  %v\n", ok)
		if !ok {
			return errInvalidSignature
		}
		return nil
	}

	secret, err := p.readSecret("Private key (WIF): ")
	if err != nil {
		return fmt.Errorf("unable to read private key: %w", err)
	}
	defer zero(secret)

	req := &msgsign.ClaimRequest{
		WIF:          strings.TrimSpace(string(secret)),
		CloreAddress: cloreAddr,
		EVMAddress:   evmAddr,
	}
	res, err := msgsign.SignClaim(req, cfg.params, cfg.format)
	if err != nil {
		return err
	}
	if res.KeyAddress != cloreAddr {
		fmt.Fprintf(out, "Warning:   key controls %s, not %s\n",
			res.KeyAddress, cloreAddr)
	}

	fmt.Fprintf(out, "Message:   %s\n", res.Message)
	fmt.Fprintf(out, "Signature: %s\n", res.Signature)
	fmt.Fprintf(out, "Format:    %v\n", res.Format)
	return nil
}

// clrsignMain is the real main function for clrsign.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func clrsignMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil
		}
		return err
	}
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.String())
		return nil
	}

	if !cfg.NoFileLog {
		err := log.InitLogRotator(filepath.Join(cfg.LogDir,
			defaultLogFilename))
		if err != nil {
			return err
		}
		defer log.LogRotator.Close()
	}
	log.SetLogLevels(cfg.DebugLevel)
	clrsLog.Debugf("Version %s, network %s", version.String(),
		cfg.params.Name)

	in := bufio.NewReader(os.Stdin)
	p := &prompter{
		in:         in,
		out:        os.Stderr,
		readSecret: terminalSecret(in, os.Stderr),
	}
	if err := run(cfg, p, os.Stdout); err != nil {
		clrsLog.Debugf("Claim failed: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := clrsignMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
