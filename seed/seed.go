// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"fmt"
	"sync"

	"github.com/decred/rnd/internal/bitmix"
)

const (
	// Golden is the golden ratio scaled to 64 bits (0x9e3779b97f4a7c15).
	Golden = -0x61c8864680b583eb

	// initialUniquifier is the starting value of the uniquifier of every
	// Source.  It must be odd.
	initialUniquifier = 0x1ed8b55fac9dec

	// uniquifierMultiplier is the multiplier of the uniquifier sequence taken
	// from Pierre L'Ecuyer, "Tables of Linear Congruential Generators of
	// Different Sizes and Good Lattice Structure".
	uniquifierMultiplier = 0x106689d45497fdb5

	// zeroSeed replaces an explicit seed of zero (0xffea4f554090c1d1).
	zeroSeed = -0x15b0aabf6f3e2f
)

// Source is a seed acquisition context.  The zero value is ready for use and
// behaves like a source created by NewSource with a nil clock.
type Source struct {
	// clock is set by NewSource or on the first raw seed request.  It is
	// protected by lastMtx once the source is in use.
	clock Clock

	// uniquifierMtx protects uniquifier.  It is only ever acquired while
	// lastMtx is held.
	uniquifierMtx sync.Mutex
	uniquifier    int64

	// lastMtx serializes raw seed requests and protects lastSeed.
	lastMtx  sync.Mutex
	lastSeed int64

	// stateMtx protects state, the golden ratio sequence handed out by Next.
	stateMtx sync.Mutex
	state    int64
}

// NewSource returns a new seed source reading time from the provided clock.  A
// nil clock selects MonotonicClock.
func NewSource(clock Clock) *Source {
	if clock == nil {
		clock = MonotonicClock()
	}
	return &Source{
		clock:      clock,
		uniquifier: initialUniquifier,
	}
}

// defaultSource is the lazily created process-wide source.
var defaultSource = sync.OnceValue(func() *Source {
	log.Debugf("Creating process-wide seed source")
	return NewSource(nil)
})

// Default returns the process-wide seed source.  It is created on first use
// and lives for the remainder of the process.
func Default() *Source {
	return defaultSource()
}

// nextUniquifier advances the uniquifier and returns its new value.
func (s *Source) nextUniquifier() int64 {
	s.uniquifierMtx.Lock()
	if s.uniquifier == 0 {
		// The sequence never reaches zero, so zero marks a zero value
		// source.
		s.uniquifier = initialUniquifier
	}
	s.uniquifier *= uniquifierMultiplier
	u := s.uniquifier
	s.uniquifierMtx.Unlock()
	return u
}

// candidate derives a new raw seed candidate from the next uniquifier and the
// current clock reading.
//
// This function MUST be called with the last seed mutex held.
func (s *Source) candidate() (int64, error) {
	if s.clock == nil {
		s.clock = MonotonicClock()
	}
	now := s.clock()
	if now < 0 {
		str := fmt.Sprintf("clock reading %v is before the seed epoch %v",
			now, Epoch)
		return 0, makeError(ErrClockInverted, str)
	}
	return bitmix.StaffordMix13(s.nextUniquifier() ^ int64(now)), nil
}

// Raw returns a new raw seed.  The returned seed is never zero and never equal
// to the seed returned by the previous call on the same source.
//
// An error wrapping ErrClockInverted is returned when the clock reports a time
// before Epoch.
//
// This function is safe for concurrent access.
func (s *Source) Raw() (int64, error) {
	s.lastMtx.Lock()
	defer s.lastMtx.Unlock()

	seed, err := s.candidate()
	if err != nil {
		return 0, err
	}
	for seed == 0 || seed == s.lastSeed {
		log.Tracef("Discarding seed candidate %d (previous %d)", seed,
			s.lastSeed)
		seed, err = s.candidate()
		if err != nil {
			return 0, err
		}
	}
	s.lastSeed = seed
	return seed, nil
}

// Next returns the next seed of the golden ratio sequence of the source.  The
// sequence is started from a raw seed on first use, and each returned value
// is additionally mixed so consecutive seeds share no apparent structure.
//
// This function is safe for concurrent access.
func (s *Source) Next() (int64, error) {
	s.stateMtx.Lock()
	defer s.stateMtx.Unlock()

	if s.state == 0 {
		raw, err := s.Raw()
		if err != nil {
			return 0, err
		}
		s.state = raw
	}
	s.state += Golden
	return bitmix.RRXMRRXMSX(s.state), nil
}

// Mix converts an explicitly provided seed into the seed of a new golden
// ratio sequence.  A seed of zero is replaced by a fixed non-zero constant.
func Mix(seed int64) int64 {
	if seed == 0 {
		seed = zeroSeed
	}
	return bitmix.RRXMRRXMSX(seed + Golden)
}

// Raw returns a new raw seed from the Default source.
func Raw() (int64, error) {
	return Default().Raw()
}

// Next returns the next seed of the Default source.
func Next() (int64, error) {
	return Default().Next()
}
