// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

import (
	"math/bits"

	"github.com/decred/tinyprng/math/uint128"
	"github.com/jrick/bitset"
)

// word64 returns 64 bits of output from the source.  32-bit sources are called
// twice with the first word forming the high half, and 128-bit sources
// contribute their high word.
func word64[W Word](src Source[W]) uint64 {
	switch s := any(src).(type) {
	case Source[uint32]:
		hi := s.Generate()
		lo := s.Generate()
		return uint64(hi)<<32 | uint64(lo)
	case Source[uint64]:
		return s.Generate()
	case Source[uint128.Uint128]:
		return s.Generate().Hi
	}
	panic("uniform: unsupported source type")
}

// Uint64 returns 64 uniformly distributed bits from the source.
func Uint64[W Word](src Source[W]) uint64 {
	return word64(src)
}

// Uint64n returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint64n[W Word](src Source[W], n uint64) uint64 {
	if n == 0 {
		panic("uniform: invalid argument to Uint64n")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return word64(src) & (n - 1)
	}

	// Lemire's multiply and reject: the high word of x*n is uniform in [0,n)
	// once products whose low word falls below 2^64 mod n are rejected.
	hi, lo := bits.Mul64(word64(src), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(word64(src), n)
		}
	}
	return hi
}

// Int64n returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64n[W Word](src Source[W], n int64) int64 {
	if n <= 0 {
		panic("uniform: invalid argument to Int64n")
	}
	return int64(Uint64n(src, uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle[W Word](src Source[W], n int, swap func(i, j int)) {
	if n < 0 {
		panic("uniform: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(Uint64n(src, uint64(i+1)))
		swap(i, j)
	}
}

// Sample returns k distinct integers chosen uniformly from [0,n).  The order
// of the returned values is not uniformly random and callers that need a
// random order must shuffle the result.
// Panics if n < 0, k < 0, or k > n.
func Sample[W Word](src Source[W], n, k int) []int {
	if n < 0 || k < 0 || k > n {
		panic("uniform: invalid argument to Sample")
	}

	// Floyd's algorithm selects each candidate once and falls back to the
	// current upper bound on collision.
	chosen := bitset.NewBytes(n)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		v := int(Uint64n(src, uint64(j+1)))
		if chosen.Get(v) {
			v = j
		}
		chosen.Set(v)
		out = append(out, v)
	}
	return out
}
