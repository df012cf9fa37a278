// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"time"

	"github.com/spacemonkeygo/monotime"
)

// Epoch is the fixed reference instant that seed clocks measure against.
var Epoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock returns the time elapsed since Epoch with nanosecond resolution.  A
// negative reading means the time source is behind Epoch.
type Clock func() time.Duration

// MonotonicClock returns a Clock that reads the wall clock once to anchor
// itself against Epoch and afterwards only advances with the monotonic clock,
// so subsequent readings never go backwards even when the wall clock is
// adjusted.
func MonotonicClock() Clock {
	anchor := time.Since(Epoch)
	start := monotime.Monotonic()
	return func() time.Duration {
		return anchor + (monotime.Monotonic() - start)
	}
}
