// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptSignals defines the signals that stop output.  This may be modified
// during init depending on the platform.
var interruptSignals = []os.Signal{os.Interrupt}

// shutdownListener returns a context that is canceled when one of the
// interrupt signals is received.  The signals are registered before it
// returns so none of them can terminate the process once output starts.
func shutdownListener() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, interruptSignals...)
	go func() {
		sig := <-interruptChannel
		rndgLog.Debugf("Received signal (%s).  Stopping output...", sig)
		cancel()
	}()

	return ctx
}

// shutdownRequested returns true when the provided context was canceled.
func shutdownRequested(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}

	return false
}
