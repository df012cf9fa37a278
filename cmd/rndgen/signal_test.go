// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"
	"time"
)

// TestShutdownListener ensures an interrupt delivered immediately after the
// listener returns cancels the context instead of terminating the process.
func TestShutdownListener(t *testing.T) {
	ctx := shutdownListener()
	if shutdownRequested(ctx) {
		t.Fatal("shutdown requested before any signal")
	}

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("unable to find own process: %v", err)
	}
	if err := proc.Signal(os.Interrupt); err != nil {
		t.Skipf("sending interrupt is not supported: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not canceled after interrupt")
	}
	if !shutdownRequested(ctx) {
		t.Fatal("shutdown not reported after interrupt")
	}
}
