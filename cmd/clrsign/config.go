// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cloreai/clrsign/chaincfg"
	"github.com/cloreai/clrsign/internal/log"
	"github.com/cloreai/clrsign/msgsign"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "clrsign.conf"
	defaultLogFilename    = "clrsign.log"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultNetwork        = "clore"
	defaultFormat         = "message"
)

var (
	defaultHomeDir    = clrsignHomeDir()
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for clrsign.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	Network     string `short:"n" long:"network" description:"Network of the keys and addresses {clore, mainnet, testnet3}"`
	Format      string `short:"f" long:"format" description:"Signature format {message, der}"`
	CloreAddr   string `short:"a" long:"clore" description:"CLORE address whose balance is claimed (prompted for when empty)"`
	EVMAddr     string `short:"e" long:"evm" description:"0x-prefixed Ethereum address receiving the tokens (prompted for when empty)"`
	Verify      bool   `long:"verify" description:"Verify a claim signature instead of creating one"`
	Signature   string `short:"s" long:"signature" description:"Base64 claim signature to verify"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	NoFileLog   bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	params *chaincfg.Params
	format msgsign.Format
}

// clrsignHomeDir returns an OS appropriate home directory for clrsign.
func clrsignHomeDir() string {
	// Search for Windows APPDATA first.  This won't exist on POSIX OSes.
	appData := os.Getenv("APPDATA")
	if appData != "" {
		return filepath.Join(appData, "Clrsign")
	}

	// Fall back to standard HOME directory that works for most POSIX OSes.
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".clrsign")
	}

	// In the worst case, use the current directory.
	return "."
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// A missing configuration file is not an error.  Command line options always
// take precedence.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		Network:    defaultNetwork,
		Format:     defaultFormat,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if preCfg.ShowVersion {
		return &preCfg, nil
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.HelpFlag)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s",
			strings.Join(remainingArgs, " "))
	}

	cfg.params, err = chaincfg.ParamsByName(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("loadConfig: invalid network: %w", err)
	}

	cfg.format, err = msgsign.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}

	if !log.ValidLogLevel(cfg.DebugLevel) {
		str := "loadConfig: the specified debug level [%v] is invalid"
		return nil, fmt.Errorf(str, cfg.DebugLevel)
	}

	if cfg.Verify && cfg.Signature == "" {
		return nil, errors.New("loadConfig: --verify requires --signature")
	}
	if !cfg.Verify && cfg.Signature != "" {
		return nil, errors.New("loadConfig: --signature is only used " +
			"with --verify")
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	return &cfg, nil
}
