// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bootstrap provides the small generators used to expand a single
// 64-bit seed into the larger state of the generators in package rnd.  They
// are not intended for general use.
package bootstrap

import (
	"math/bits"

	"github.com/decred/rnd/internal/bitmix"
	"github.com/decred/rnd/seed"
)

// minGammaTransitions is the minimum number of 01 and 10 bit transitions a
// gamma must contain.
const minGammaTransitions = 24

// gammaFlip is XORed into a gamma without enough bit transitions
// (0xaaaaaaaaaaaaaaaa).
const gammaFlip = -0x5555555555555556

// SplitMix64 is a generator with a single word of state advanced by a Weyl
// sequence.  It is not safe for concurrent access.
type SplitMix64 struct {
	state int64
	gamma int64 // always odd
}

// NewSplitMix64 returns a SplitMix64 seeded with the next seed of the provided
// source.
func NewSplitMix64(src *seed.Source) (*SplitMix64, error) {
	s, err := src.Next()
	if err != nil {
		return nil, err
	}
	return newSplitMix64(s), nil
}

// NewSplitMix64FromSeed returns a SplitMix64 deterministically derived from
// the provided seed.
func NewSplitMix64FromSeed(s int64) *SplitMix64 {
	return newSplitMix64(seed.Mix(s))
}

func newSplitMix64(s int64) *SplitMix64 {
	return &SplitMix64{
		state: s,
		gamma: mixGamma(s + seed.Golden),
	}
}

// mixGamma derives an odd Weyl increment from v that has enough bit
// transitions to avoid short cycles.
func mixGamma(v int64) int64 {
	v = bitmix.RRXMRRXMSX(v) | 1
	n := bits.OnesCount64(uint64(v ^ int64(uint64(v)>>1)))
	if n < minGammaTransitions {
		return v ^ gammaFlip
	}
	return v
}

// Int64 returns the next 64-bit output.
func (g *SplitMix64) Int64() int64 {
	g.state += g.gamma
	return bitmix.XNASAM(g.state)
}

// Int32 returns the next 32-bit output.  It advances the state exactly like
// Int64 but uses a narrower mixer.
func (g *SplitMix64) Int32() int32 {
	g.state += g.gamma
	return bitmix.StaffordMix04(g.state)
}
