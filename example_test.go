// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rnd_test

import (
	"fmt"
	randv2 "math/rand/v2"

	"github.com/decred/rnd"
	"github.com/decred/rnd/seed"
)

// This example demonstrates reproducible bounded draws from an explicitly
// seeded generator.
func ExampleNew() {
	r := rnd.New(rnd.NewStc64FromSeed(7))
	for i := 0; i < 5; i++ {
		fmt.Print(r.Int64N(100), " ")
	}
	fmt.Println()

	// Output:
	// 91 90 64 50 45
}

// This example demonstrates drawing a raw value from a xoshiro256**
// generator.
func ExampleNewXoshiro256StarStarFromSeed() {
	g := rnd.NewXoshiro256StarStarFromSeed(42)
	fmt.Println(g.Int64())

	// Output:
	// -1747613562241731923
}

// This example demonstrates seeding a generator from an explicit seed source
// and using it with math/rand/v2.
func ExampleNewL64X1024MixWithSource() {
	g, err := rnd.NewL64X1024MixWithSource(seed.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	r := randv2.New(g)
	n := r.IntN(10)
	fmt.Println(n >= 0 && n < 10)

	// Output:
	// true
}

// This example demonstrates borrowing a pooled generator for a sequence of
// draws.
func ExampleBorrow() {
	var sum int64
	rnd.Borrow(func(r *rnd.Rand) {
		for i := 0; i < 10; i++ {
			sum += r.Int64Range(1, 6)
		}
	})
	fmt.Println(sum >= 10 && sum <= 60)

	// Output:
	// true
}
