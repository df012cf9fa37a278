// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/decred/slog"
)

// TestUseLogger ensures the package logger can be replaced and that discarded
// seed candidates are logged at the trace level.
func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.NewBackend(&buf).Logger("SEED")
	logger.SetLevel(slog.LevelTrace)
	UseLogger(logger)
	defer UseLogger(slog.Disabled)

	if log != logger {
		t.Fatalf("Expected log to be set to logger, got %v", log)
	}

	// Force a zero candidate so the retry path logs.
	first := time.Duration(3447679086515839964)
	s := NewSource(scriptedClock(first, 0))
	if _, err := s.Raw(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Discarding seed candidate 0") {
		t.Fatalf("retry was not logged, log output: %q", buf.String())
	}
}
