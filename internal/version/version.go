// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information of the rndgen utility.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Version is the semantic version of rndgen.  It may be overridden at build
// time with:
// '-ldflags "-X github.com/decred/rnd/internal/version.Version=fullsemver"'
//
// It MUST be of the form MAJOR.MINOR.PATCH with an optional pre-release
// suffix or the package panics at startup.
var Version = "0.1.0-pre"

// Major, Minor and Patch are the numeric components of Version, set during
// initialization.
var Major, Minor, Patch uint

// parseVersion splits a MAJOR.MINOR.PATCH[-PRERELEASE] string into its numeric
// components.
func parseVersion(s string) (major, minor, patch uint, err error) {
	core, _, _ := strings.Cut(s, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed version string %q", s)
	}
	var nums [3]uint
	for i, p := range parts {
		if len(p) > 1 && p[0] == '0' {
			return 0, 0, 0, fmt.Errorf("malformed version string %q: "+
				"leading zero", s)
		}
		n, err := strconv.ParseUint(p, 10, 0)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("malformed version string %q: %w",
				s, err)
		}
		nums[i] = uint(n)
	}
	return nums[0], nums[1], nums[2], nil
}

func init() {
	var err error
	Major, Minor, Patch, err = parseVersion(Version)
	if err != nil {
		panic(err)
	}
}

// vcsCommitID returns the abbreviated commit the binary was built from, if
// known.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, bs := range bi.Settings {
		if bs.Key == "vcs.revision" {
			if len(bs.Value) > 9 {
				return bs.Value[:9]
			}
			return bs.Value
		}
	}
	return ""
}

// String returns Version with the commit appended as build metadata when it is
// available.
func String() string {
	if commit := vcsCommitID(); commit != "" && !strings.Contains(Version, "+") {
		return Version + "+" + commit
	}
	return Version
}
