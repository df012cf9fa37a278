// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bootstrap

import "github.com/decred/rnd/seed"

// xorShiftEscapeSteps is the number of outputs discarded after seeding.
const xorShiftEscapeSteps = 20

// XorShift128Plus is Sebastiano Vigna's xorshift128+ generator.  It seeds the
// state arrays of the primary generators.  It is not safe for concurrent
// access.
type XorShift128Plus struct {
	x0, x1 int64
}

// NewXorShift128Plus returns a XorShift128Plus seeded through a SplitMix64
// that draws its seed from the provided source.
func NewXorShift128Plus(src *seed.Source) (*XorShift128Plus, error) {
	sm, err := NewSplitMix64(src)
	if err != nil {
		return nil, err
	}
	return newXorShift128Plus(sm), nil
}

// NewXorShift128PlusFromSeed returns a XorShift128Plus deterministically
// derived from the provided seed.
func NewXorShift128PlusFromSeed(s int64) *XorShift128Plus {
	return newXorShift128Plus(NewSplitMix64FromSeed(s))
}

func newXorShift128Plus(sm *SplitMix64) *XorShift128Plus {
	g := &XorShift128Plus{
		x0: sm.Int64(),
		x1: sm.Int64(),
	}
	for i := 0; i < xorShiftEscapeSteps; i++ {
		g.Int64()
	}
	return g
}

// Int64 returns the next 64-bit output.
func (g *XorShift128Plus) Int64() int64 {
	s0 := g.x1
	s1 := g.x0
	r := s1 + s0
	s1 ^= s1 << 23
	g.x1 = s1 ^ s0 ^ int64(uint64(s1)>>18) ^ int64(uint64(s0)>>5)
	g.x0 = s0
	return r
}
