// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd

import (
	"github.com/decred/rnd/seed"
	"github.com/decred/slog"
)

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
// The default amount of logging is none.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.  The
// logger is also used by the seed package.
func UseLogger(logger slog.Logger) {
	log = logger
	seed.UseLogger(logger)
}
