// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestSubsystems ensures every subsystem is listed in sorted order and that
// levels are applied per subsystem.
func TestSubsystems(t *testing.T) {
	require.Equal(t, []string{"BTEC", "CLRS", "ECDS", "MSGS"},
		SupportedSubsystems())

	SetLogLevels("warn")
	for _, id := range SupportedSubsystems() {
		require.Equal(t, btclog.LevelWarn, subsystemLoggers[id].Level(), id)
	}

	SetLogLevel("MSGS", "trace")
	require.Equal(t, btclog.LevelTrace, subsystemLoggers["MSGS"].Level())

	// Unknown subsystems are ignored.
	SetLogLevel("NOPE", "trace")
	SetLogLevels("info")
}

// TestValidLogLevel ensures only the known level names are accepted.
func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn",
		"error", "critical", "off"} {

		require.True(t, ValidLogLevel(level), level)
	}
	require.False(t, ValidLogLevel("loud"))
}

// TestInitLogRotator ensures the log directory is created and output is
// written through the rotator.
func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "clrsign.log")
	require.NoError(t, InitLogRotator(logFile))
	defer func() {
		LogRotator.Close()
		LogRotator = nil
	}()

	ClrsLog.Infof("rotator test")
}
