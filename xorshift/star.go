// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xorshift

import (
	"github.com/decred/tinyprng/uniform"
)

const (
	// star64Multiplier scrambles the Xorshift64Star output.
	star64Multiplier = 0xa738f8117ca1d037

	// star1024Multiplier scrambles the Xorshift1024Star output.
	star1024Multiplier = 0xaac17d8efa43cab7

	// ringMask wraps the Xorshift1024Star cursor.
	ringMask = 15
)

// Xorshift64Star is a 64-bit xorshift generator whose output is the updated
// state multiplied by a fixed odd constant.  The stored state is never
// returned directly.
type Xorshift64Star struct {
	state uint64
}

// NewXorshift64Star returns a generator with the seed as its initial state.
func NewXorshift64Star(seed uint64) *Xorshift64Star {
	return &Xorshift64Star{state: seed}
}

// Generate advances the state and returns the scrambled state.
func (x *Xorshift64Star) Generate() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * star64Multiplier
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (x *Xorshift64Star) GenerateReal() float64 {
	return uniform.Real[uint64](x)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (x *Xorshift64Star) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](x)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (x *Xorshift64Star) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](x, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (x *Xorshift64Star) Fill(dst []uint64) {
	uniform.Fill[uint64](x, dst)
}

// Xorshift1024Star is a xorshift generator over sixteen 64-bit words.  Each
// call advances a cursor around the ring, mixes the word under the previous
// cursor position into the new one, and returns the new word multiplied by a
// fixed odd constant.
type Xorshift1024Star struct {
	state [16]uint64
	index int
}

// NewXorshift1024Star returns a generator whose state is the seed array
// verbatim with the cursor at slot 0.
func NewXorshift1024Star(seed [16]uint64) *Xorshift1024Star {
	return &Xorshift1024Star{state: seed}
}

// Generate advances the ring cursor, updates the word under it, and returns
// the scrambled word.
func (x *Xorshift1024Star) Generate() uint64 {
	s := x.state[x.index]
	x.index = (x.index + 1) & ringMask
	t := x.state[x.index]
	t ^= t << 31
	t ^= t >> 11
	t ^= s ^ (s >> 30)
	x.state[x.index] = t
	return t * star1024Multiplier
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (x *Xorshift1024Star) GenerateReal() float64 {
	return uniform.Real[uint64](x)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (x *Xorshift1024Star) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](x)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (x *Xorshift1024Star) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](x, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (x *Xorshift1024Star) Fill(dst []uint64) {
	uniform.Fill[uint64](x, dst)
}
