// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package seed produces the 64-bit seeds used to bootstrap the generators in
package rnd when the caller does not supply one explicitly.

Seeds are derived without any external entropy device.  Each request advances
a multiplicative congruential "uniquifier", combines it with a nanosecond
timestamp measured from a fixed epoch and whitens the result with a strong
64-bit mixer.  A Source guarantees that every returned raw seed is non-zero and
differs from the seed it returned immediately before.  Seeds returned by
non-adjacent calls are not compared.

The seeds are NOT suitable for any cryptographic purpose.  They are trivially
predictable by anyone able to estimate the time of the request.

# Sources

A Source is an explicit context object.  Most callers use the lazily created
process-wide Default source, either directly or through the package level Raw
and Next functions.  Tests and simulations that need deterministic seeding can
create their own Source with NewSource and a custom Clock.

All Source methods are safe for concurrent access.  Concurrent requests are
fully serialized.

# Errors

The only failure is a clock that reports a time before Epoch.  It is reported
as an Error wrapping ErrClockInverted and is not recoverable:

	s, err := seed.Raw()
	if errors.Is(err, seed.ErrClockInverted) {
		// The system clock is set before 2022.
	}
*/
package seed
