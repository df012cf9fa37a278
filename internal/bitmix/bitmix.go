// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitmix provides the stateless 64-bit finalizers used to derive seeds
// and to scramble generator output.
//
// All functions operate on the two's complement bit pattern of their input.
// Right shifts are logical and all multiplications wrap.  The constants and
// rotation amounts are part of the reproducibility contract of every generator
// in this module and must never change.
package bitmix

import "math/bits"

// StaffordMix13 is variant 13 of David Stafford's 64-bit finalizers.  It is the
// strongest mixer and is used to whiten raw process seeds.
func StaffordMix13(v int64) int64 {
	x := uint64(v)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return int64(x ^ (x >> 31))
}

// StaffordMix04 is variant 4 of David Stafford's finalizers truncated to the
// high 32 bits of the result.
func StaffordMix04(v int64) int32 {
	x := uint64(v)
	x = (x ^ (x >> 33)) * 0x62a9d9ed799705f5
	return int32(((x ^ (x >> 28)) * 0xcb24d0a5c88c35b3) >> 32)
}

// RRXMRRXMSX is Pelle Evensen's rrxmrrxmsx_0 mixer.
func RRXMRRXMSX(v int64) int64 {
	x := uint64(v)
	x ^= bits.RotateLeft64(x, -25) ^ bits.RotateLeft64(x, -50)
	x *= 0xa24baed4963ee407
	x ^= bits.RotateLeft64(x, -24) ^ bits.RotateLeft64(x, -49)
	x *= 0x9fb21c651e98df25
	return int64(x ^ (x >> 28))
}

// XNASAM is Jon Maiga's xNASAM mixer.
func XNASAM(v int64) int64 {
	x := uint64(v) ^ 0x6a09e667f3bcc909
	x ^= bits.RotateLeft64(x, -25) ^ bits.RotateLeft64(x, -47)
	x *= 0x9e6c63d0676a9a99
	x ^= (x >> 23) ^ (x >> 51)
	x *= 0x9e6d62d06f6a9a9b
	return int64(x ^ (x >> 23) ^ (x >> 51))
}

// LeaMix64 is the 64-bit mixing function identified by Doug Lea and used as the
// output stage of the LXM family of generators.
func LeaMix64(v int64) int64 {
	const m = 0xdaba0b6eb09322e3
	x := uint64(v)
	x = (x ^ (x >> 32)) * m
	x = (x ^ (x >> 32)) * m
	return int64(x ^ (x >> 32))
}
