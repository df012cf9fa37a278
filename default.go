// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd

import (
	"sync"
	"time"
)

// pool holds entropy seeded Stc64 generators for the package level functions.
// A pooled generator is only ever lent to a single caller at a time.
var pool = sync.Pool{
	New: func() any {
		g, err := NewStc64()
		if err != nil {
			panic(err)
		}
		log.Tracef("Seeded new pooled generator")
		return New(g)
	},
}

// Borrow lends fn exclusive use of a pooled, entropy seeded Rand for the
// duration of the call.  The Rand must not be retained after fn returns.
//
// Borrow panics if a new generator can not be seeded because the system clock
// is set before seed.Epoch.
func Borrow(fn func(r *Rand)) {
	r := pool.Get().(*Rand)
	defer pool.Put(r)
	fn(r)
}

// Int64 returns a uniform random int64 over the full range from a pooled
// generator.
func Int64() (v int64) {
	Borrow(func(r *Rand) { v = r.Int64() })
	return v
}

// Uint64 returns a uniform random uint64 from a pooled generator.
func Uint64() (v uint64) {
	Borrow(func(r *Rand) { v = r.Uint64() })
	return v
}

// Int32 returns a uniform random int32 over the full range from a pooled
// generator.
func Int32() (v int32) {
	Borrow(func(r *Rand) { v = r.Int32() })
	return v
}

// Float64 returns a uniform random float64 in [0,1) from a pooled generator.
func Float64() (v float64) {
	Borrow(func(r *Rand) { v = r.Float64() })
	return v
}

// Float32 returns a uniform random float32 in [0,1) from a pooled generator.
func Float32() (v float32) {
	Borrow(func(r *Rand) { v = r.Float32() })
	return v
}

// Bool returns true or false with equal probability from a pooled generator.
func Bool() (v bool) {
	Borrow(func(r *Rand) { v = r.Bool() })
	return v
}

// Int64N returns a uniform random int64 in [0,n) from a pooled generator.
// Panics if n <= 0.
func Int64N(n int64) (v int64) {
	if n <= 0 {
		panic("rnd: invalid argument to Int64N")
	}
	Borrow(func(r *Rand) { v = r.int64N(n) })
	return v
}

// Int32N returns a uniform random int32 in [0,n) from a pooled generator.
// Panics if n <= 0.
func Int32N(n int32) (v int32) {
	if n <= 0 {
		panic("rnd: invalid argument to Int32N")
	}
	Borrow(func(r *Rand) { v = int32(r.int64N(int64(n))) })
	return v
}

// Int64Range returns a uniform random int64 in [min,max] from a pooled
// generator.
// Panics if max < min.
func Int64Range(min, max int64) (v int64) {
	if max < min {
		panic("rnd: invalid argument to Int64Range")
	}
	Borrow(func(r *Rand) { v = r.Int64Range(min, max) })
	return v
}

// Float64Range returns a uniform random float64 in [min,max) from a pooled
// generator.
// Panics if max < min.
func Float64Range(min, max float64) (v float64) {
	if max < min {
		panic("rnd: invalid argument to Float64Range")
	}
	Borrow(func(r *Rand) { v = r.Float64Range(min, max) })
	return v
}

// Read fills b with random bytes from a pooled generator.
func Read(b []byte) {
	Borrow(func(r *Rand) { r.Read(b) })
}

// NormFloat64Pair returns two independent standard normally distributed values
// from a pooled generator.
func NormFloat64Pair() (x, y float64) {
	Borrow(func(r *Rand) { x, y = r.NormFloat64Pair() })
	return x, y
}

// Duration returns a random duration in [0,n) from a pooled generator.
// Panics if n <= 0.
func Duration(n time.Duration) (v time.Duration) {
	if n <= 0 {
		panic("rnd: invalid argument to Duration")
	}
	Borrow(func(r *Rand) { v = r.Duration(n) })
	return v
}

// Shuffle randomizes the order of n elements using a pooled generator.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rnd: invalid argument to Shuffle")
	}
	Borrow(func(r *Rand) { r.Shuffle(n, swap) })
}
