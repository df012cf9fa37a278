// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rnd implements fast, non-cryptographic pseudorandom number generators
suitable for simulations and other numeric work.

None of the generators in this package are cryptographically secure.  Their
state can be recovered from a small number of outputs and their seeds are
derived from the time of day.  Do not use them to generate keys, nonces,
tokens or any other secret.

# Generators

Three generators are provided.  All of them implement Source and the
math/rand/v2 Source interface:

  - Stc64 is Tyge Løvset's stc64, the fastest generator and the recommended
    default.  It has a guaranteed minimum period of 2^64 and an average period
    of about 2^255.
  - Xoshiro256StarStar is Blackman and Vigna's xoshiro256**.  It has a period
    of 2^256-1 and is 4-dimensionally equidistributed.
  - L64X1024Mix is the L64X1024MixRandom algorithm of the LXM family.  It has
    a period of 2^64*(2^1024-1), 1088 bits of state and is 16-dimensionally
    equidistributed.  Use it when tuples of up to 16 consecutive outputs must
    be uniformly distributed.  It is about 3 to 4 times slower than Stc64.

Every generator can be created in three ways:

	g, err := rnd.NewStc64()            // seeded from seed.Default()
	g, err := rnd.NewStc64WithSource(s) // seeded from an explicit seed.Source
	g := rnd.NewStc64FromSeed(42)       // reproducible output

The entropy seeded constructors only fail when the system clock is set before
seed.Epoch.  Explicitly seeded generators produce the same output on every run
and platform.

Generators are not safe for concurrent access.  Give each goroutine its own
instance instead.

A limitation shared by all generators is that they are seeded by a single
64-bit value, which can reach only a tiny fraction of their state space.  This
is not expected to be detectable in practice.

# Derived Values

Rand wraps any Source and provides everything else: bounded integers without
modulo bias, closed integer intervals, floats in [0,1) and half-open
intervals, booleans, random bytes through io.Reader, slice filling, shuffling
and pairs of standard normal values.

	r := rnd.New(rnd.NewStc64FromSeed(42))
	die := r.Int64Range(1, 6)
	x, y := r.NormFloat64Pair()

Methods that take a bound panic when the bound is invalid, for example a
non-positive n passed to Int64N or max < min passed to Int64Range.

# Package Functions

The package level functions such as Int64, Float64 and Int64N draw from a pool
of entropy seeded Stc64 generators and are safe for concurrent access.  Borrow
lends a pooled Rand to a function for a sequence of draws:

	rnd.Borrow(func(r *rnd.Rand) {
		for i := range points {
			points[i].X, points[i].Y = r.NormFloat64Pair()
		}
	})
*/
package rnd
