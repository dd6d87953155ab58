// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pcg

import (
	"math/bits"

	"github.com/decred/tinyprng/math/uint128"
)

const (
	// Multiplier is the multiplier of the 64-bit state advance.
	Multiplier = 1957840684519283055

	// Increment is the increment of the 64-bit LCG state advance.
	Increment = 3571826365018266039
)

var (
	// Multiplier128 is the multiplier of the 128-bit state advance,
	// 0x1957840684519283055.  It must not be modified.
	Multiplier128 = uint128.New(0x195, 0x7840684519283055)

	// Increment128 is the increment of the 128-bit LCG state advance,
	// 0x3571826365018266039.  It must not be modified.
	Increment128 = uint128.New(0x357, 0x1826365018266039)
)

// XshRr returns the xorshift high, random rotation permutation of a 64-bit
// state.  The top 5 bits select the rotation applied to the 32 bits that
// follow the mixing shift.
func XshRr(state uint64) uint32 {
	rot := int(state >> 59)
	x := state ^ state>>18
	return bits.RotateLeft32(uint32(x>>27), -rot)
}

// XshRs returns the xorshift high, random shift permutation of a 64-bit
// state.  The top 3 bits select a shift in [22, 29].
func XshRs(state uint64) uint32 {
	shift := 22 + state>>61
	x := state ^ state>>22
	return uint32(x >> shift)
}

// XslRr returns the xorshift low, random rotation permutation of a 128-bit
// state.  The top 6 bits select the rotation applied to the xor of the two
// 64-bit halves.
func XslRr(state uint128.Uint128) uint64 {
	rot := int(state.Hi >> 58)
	return bits.RotateLeft64(state.Hi^state.Lo, -rot)
}

// advance64 returns the next 64-bit state.
func advance64(state uint64, lcg bool) uint64 {
	if lcg {
		return state*Multiplier + Increment
	}
	return state * Multiplier
}

// advance128 returns the next 128-bit state.
func advance128(state uint128.Uint128, lcg bool) uint128.Uint128 {
	next := state.Mul(Multiplier128)
	if lcg {
		next = next.Add(Increment128)
	}
	return next
}
