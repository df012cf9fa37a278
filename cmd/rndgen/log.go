// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/rnd"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to stderr and, when enabled,
// to the write-end pipe of a log rotator.  Stderr is used so generated values
// on stdout are never interleaved with log output.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it write to the backend.
var (
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It is only set when a log
	// file is configured.
	logRotator *rotator.Rotator

	rndgLog = backendLog.Logger("RNDG")
	randLog = backendLog.Logger("RAND")
)

// Initialize package-global logger variables.
func init() {
	rnd.UseLogger(randLog)
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// closeLogRotator flushes and closes the log rotator when one was created.
func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

// setLogLevels sets the logging level of all subsystem loggers.
func setLogLevels(level slog.Level) {
	rndgLog.SetLevel(level)
	randLog.SetLevel(level)
}
