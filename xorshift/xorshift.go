// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xorshift

import (
	"github.com/decred/tinyprng/math/uint128"
	"github.com/decred/tinyprng/uniform"
)

// Xorshift32 is a xorshift generator with a single 32-bit register.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 returns a generator with the seed as its initial state.
func NewXorshift32(seed uint32) *Xorshift32 {
	return &Xorshift32{state: seed}
}

// Generate advances the state and returns it.
func (x *Xorshift32) Generate() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (x *Xorshift32) GenerateReal() float64 {
	return uniform.Real[uint32](x)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (x *Xorshift32) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint32](x)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (x *Xorshift32) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint32](x, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (x *Xorshift32) Fill(dst []uint32) {
	uniform.Fill[uint32](x, dst)
}

// Xorshift64 is a xorshift generator with a single 64-bit register.
type Xorshift64 struct {
	state uint64
}

// NewXorshift64 returns a generator with the seed as its initial state.
func NewXorshift64(seed uint64) *Xorshift64 {
	return &Xorshift64{state: seed}
}

// Generate advances the state and returns it.
func (x *Xorshift64) Generate() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (x *Xorshift64) GenerateReal() float64 {
	return uniform.Real[uint64](x)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (x *Xorshift64) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](x)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (x *Xorshift64) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](x, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (x *Xorshift64) Fill(dst []uint64) {
	uniform.Fill[uint64](x, dst)
}

// Xorshift128 is a xorshift generator with four 32-bit words.  The words are
// stored most significant first.
type Xorshift128 struct {
	state [4]uint32
}

// NewXorshift128 returns a generator whose four state words are the seed
// sliced into 32-bit words from high to low.
func NewXorshift128(seed uint128.Uint128) *Xorshift128 {
	return &Xorshift128{state: [4]uint32{
		uint32(seed.Hi >> 32),
		uint32(seed.Hi),
		uint32(seed.Lo >> 32),
		uint32(seed.Lo),
	}}
}

// Generate rotates the state ring by one word, mixes the outgoing and
// incoming words into the first slot, and returns the four state words
// concatenated from high to low.
func (x *Xorshift128) Generate() uint128.Uint128 {
	st := &x.state
	t, s := st[3], st[0]
	st[3], st[2], st[1] = st[2], st[1], s
	t ^= t << 11
	t ^= t >> 8
	st[0] = t ^ s ^ (s >> 19)
	return uint128.New(uint64(st[0])<<32|uint64(st[1]),
		uint64(st[2])<<32|uint64(st[3]))
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (x *Xorshift128) GenerateReal() float64 {
	return uniform.Real[uint128.Uint128](x)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (x *Xorshift128) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint128.Uint128](x)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (x *Xorshift128) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint128.Uint128](x, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (x *Xorshift128) Fill(dst []uint128.Uint128) {
	uniform.Fill[uint128.Uint128](x, dst)
}
