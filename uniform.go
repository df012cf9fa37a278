// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd

import (
	"math"
	"time"
)

const (
	// float64Norm scales the top 53 bits of a draw into [0,1).
	float64Norm = 1.0 / (1 << 53)

	// float32Norm scales the top 24 bits of a draw into [0,1).
	float32Norm = 1.0 / (1 << 24)
)

// Int64 returns a uniform random int64 over the full range.
func (r *Rand) Int64() int64 {
	return r.src.Int64()
}

// Uint64 returns a uniform random uint64.  It allows a Rand to be used as a
// math/rand/v2 Source.
func (r *Rand) Uint64() uint64 {
	return uint64(r.src.Int64())
}

// Int32 returns a uniform random int32 over the full range taken from the high
// 32 bits of a draw.
func (r *Rand) Int32() int32 {
	return int32(uint64(r.src.Int64()) >> 32)
}

// Float64 returns a uniform random float64 in [0,1).
func (r *Rand) Float64() float64 {
	return float64(uint64(r.src.Int64())>>11) * float64Norm
}

// Float32 returns a uniform random float32 in [0,1).
func (r *Rand) Float32() float32 {
	return float32(uint64(r.src.Int64())>>40) * float32Norm
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.Int64() < 0
}

// Int64N returns a uniform random int64 in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rnd: invalid argument to Int64N")
	}
	return r.int64N(n)
}

// int64N implements Int64N for a strictly positive n.
func (r *Rand) int64N(n int64) int64 {
	m := n - 1
	x := r.src.Int64()
	if n&m == 0 { // n is power of two, can mask
		return x & m
	}

	// Reduce a non-negative 63-bit draw u modulo n and reject it when it
	// falls into the final partial block of size 2^63 mod n.  Exactly those
	// draws make u + m - (u % n) overflow into the negative range.
	u := int64(uint64(x) >> 1)
	for {
		v := u % n
		if u+m-v >= 0 {
			return v
		}
		u = int64(uint64(r.src.Int64()) >> 1)
	}
}

// Int32N returns a uniform random int32 in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand) Int32N(n int32) int32 {
	if n <= 0 {
		panic("rnd: invalid argument to Int32N")
	}
	return int32(r.int64N(int64(n)))
}

// Int64Range returns a uniform random int64 in the closed interval [min,max].
// Panics if max < min.
func (r *Rand) Int64Range(min, max int64) int64 {
	if max < min {
		panic("rnd: invalid argument to Int64Range")
	}
	span := max - min + 1
	switch {
	case span > 0:
		return min + r.int64N(span)

	case span == 0:
		// The interval covers every int64.
		return r.src.Int64()
	}

	// The interval is wider than the positive int64 range, so draw from the
	// full range and reject values outside.  At least half of all draws are
	// accepted.
	for {
		x := r.src.Int64()
		if x >= min && x <= max {
			return x
		}
	}
}

// Int32Range returns a uniform random int32 in the closed interval [min,max].
// Panics if max < min.
func (r *Rand) Int32Range(min, max int32) int32 {
	if max < min {
		panic("rnd: invalid argument to Int32Range")
	}
	return int32(int64(min) + r.int64N(int64(max)-int64(min)+1))
}

// Float64Range returns a uniform random float64 in the half-open interval
// [min,max).
// Panics if max < min.
func (r *Rand) Float64Range(min, max float64) float64 {
	if max < min {
		panic("rnd: invalid argument to Float64Range")
	}
	v := min + (max-min)*r.Float64()
	if v >= max && max > min {
		// Rounding may carry draws just below 1 up to max.
		v = math.Nextafter(max, min)
	}
	return v
}

// Float32Range returns a uniform random float32 in the half-open interval
// [min,max).
// Panics if max < min.
func (r *Rand) Float32Range(min, max float32) float32 {
	if max < min {
		panic("rnd: invalid argument to Float32Range")
	}
	v := min + (max-min)*r.Float32()
	if v >= max && max > min {
		v = math.Nextafter32(max, min)
	}
	return v
}

// Read fills b with random bytes.  Every draw supplies up to eight bytes,
// least significant byte first.  It always returns len(b) and a nil error.
func (r *Rand) Read(b []byte) (n int, err error) {
	for n < len(b) {
		x := uint64(r.src.Int64())
		for i := 0; i < 8 && n < len(b); i++ {
			b[n] = byte(x)
			x >>= 8
			n++
		}
	}
	return n, nil
}

// Int64s fills s with uniform random int64 values.
func (r *Rand) Int64s(s []int64) {
	for i := range s {
		s[i] = r.src.Int64()
	}
}

// Float64s fills s with uniform random float64 values in [0,1).
func (r *Rand) Float64s(s []float64) {
	for i := range s {
		s[i] = r.Float64()
	}
}

// NormFloat64Pair returns two independent standard normally distributed
// values, that is, with mean 0 and variance 1.  It uses Marsaglia's polar
// method.
func (r *Rand) NormFloat64Pair() (float64, float64) {
	for {
		u1 := 2*r.Float64() - 1
		u2 := 2*r.Float64() - 1
		q := u1*u1 + u2*u2
		if q >= 1 || q == 0 {
			continue
		}
		p := math.Sqrt(-2 * math.Log(q) / q)
		return u1 * p, u2 * p
	}
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("rnd: invalid argument to Duration")
	}
	return time.Duration(r.int64N(int64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rnd: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(r.int64N(int64(i + 1)))
		swap(i, j)
	}
}
