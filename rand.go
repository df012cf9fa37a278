// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd

// Source is a generator of uniformly distributed 64-bit values.  Int64 must
// return values uniformly distributed over the entire int64 range, negative
// values included.
//
// All derived operations of Rand are built on this single method, so any
// pointer to a generator, or any type wrapping one, can be used wherever a
// Source is accepted.
type Source interface {
	Int64() int64
}

// Rand provides uniform integers, floats, booleans, bytes and normally
// distributed values drawn from an underlying Source.  Rand methods are not
// safe for concurrent access unless the Source is.
type Rand struct {
	src Source
}

// New returns a Rand that draws from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Source returns the underlying source of r.
func (r *Rand) Source() Source {
	return r.src
}
