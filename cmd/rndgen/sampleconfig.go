// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
)

// sampleConfig is a string containing the commented example config for rndgen.
//
//go:embed sample-rndgen.conf
var sampleConfig string
