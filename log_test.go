// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/decred/rnd/seed"
	"github.com/decred/slog"
)

// TestUseLogger ensures the package logger can be replaced and that the logger
// is forwarded to the seed package.
func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.NewBackend(&buf).Logger("RAND")
	UseLogger(logger)
	defer UseLogger(slog.Disabled)

	if log != logger {
		t.Fatalf("Expected log to be set to logger, got %v", log)
	}

	// A first clock reading equal to the first uniquifier value produces a
	// zero seed candidate, which the seed package discards at the trace level.
	readings := []time.Duration{3447679086515839964, 0}
	clock := func() time.Duration {
		r := readings[0]
		if len(readings) > 1 {
			readings = readings[1:]
		}
		return r
	}
	logger.SetLevel(slog.LevelTrace)
	if _, err := NewStc64WithSource(seed.NewSource(clock)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Discarding seed candidate") {
		t.Fatalf("seed package did not log through the provided logger, "+
			"log output: %q", buf.String())
	}
}
