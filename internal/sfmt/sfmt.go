// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sfmt provides an experimental SIMD-oriented Fast Mersenne Twister
// with 32-bit output.
//
// The generator is incomplete: the cursor that selects the words feeding the
// shift terms of the recursion is fixed at construction and never advances,
// so the output does not match the reference SFMT19937 sequence.  It is kept
// internal and is not part of the public generator set.
package sfmt

const (
	// mexp is the Mersenne exponent of the period.
	mexp = 19937

	// N is the number of 128-bit words of state.
	N = mexp/128 + 1

	pos1 = 122
	sl1  = 18
	sl2  = 1
	sr1  = 1

	msk1 = 0xdfffffef
	msk2 = 0xddfecb7f
	msk3 = 0xbffaffff
	msk4 = 0xbffffff6

	// fill is the value of every 32-bit word in a new state.
	fill = 0x8b8b8b8b
)

// masks holds the per-lane recursion masks in lane order.
var masks = [4]uint32{msk2, msk1, msk4, msk3}

// w128 is a 128-bit state word stored as four 32-bit lanes.  The 64-bit view
// of the word is little endian: lane 2i is the low half of 64-bit word i.
type w128 [4]uint32

// u64 returns the 64-bit word i of w.
func (w *w128) u64(i int) uint64 {
	return uint64(w[2*i]) | uint64(w[2*i+1])<<32
}

// fromHalves returns the 128-bit word with the given 64-bit halves laid out
// high half of each first.
func fromHalves(lo, hi uint64) w128 {
	return w128{uint32(lo >> 32), uint32(lo), uint32(hi >> 32), uint32(hi)}
}

// SFMT is the experimental generator state.
type SFMT struct {
	state [N]w128
	seek  int
	index int
}

// New returns a generator whose state words are all 0x8b8b8b8b.
func New() *SFMT {
	s := &SFMT{seek: N - 2}
	for i := range s.state {
		s.state[i] = w128{fill, fill, fill, fill}
	}
	return s
}

// lshift128 returns the byte-wise left shift of the 128-bit value formed from
// the words at the cursor.
func (s *SFMT) lshift128(shift uint) w128 {
	a, b := &s.state[s.seek+1], &s.state[s.seek]
	th := a.u64(0)<<32 | a.u64(1)
	tl := b.u64(0)<<32 | b.u64(1)
	oh := th<<(shift*8) | tl>>(64-shift*8)
	ol := tl << (shift * 8)
	return fromHalves(ol, oh)
}

// rshift128 returns the byte-wise right shift of the 128-bit value formed
// from the words at the cursor.
func (s *SFMT) rshift128(shift uint) w128 {
	a, b := &s.state[s.seek+1], &s.state[s.seek]
	th := a.u64(1)<<32 | b.u64(0)
	tl := b.u64(1)<<32 | b.u64(0)
	oh := th>>(shift*8) | th<<(64-shift*8)
	ol := tl >> (shift * 8)
	return fromHalves(ol, oh)
}

// recursion updates state word i1 from itself, word i2, and the shift terms.
func (s *SFMT) recursion(i1, i2 int) {
	x := s.lshift128(sl2)
	y := s.rshift128(sl2)
	c := &s.state[s.seek+1]
	for k := range masks {
		s.state[i1][k] ^= x[k] ^ (s.state[i2][k]>>sr1)&masks[k] ^ y[k] ^
			c[k]<<sl1
	}
}

// regenerate updates every state word in one batch.
func (s *SFMT) regenerate() {
	i := 0
	for ; i < N-pos1; i++ {
		s.recursion(i, i+pos1)
	}
	for ; i < N; i++ {
		s.recursion(i, i+pos1-N)
	}
}

// Generate returns the first lane of the next state word, regenerating the
// state when every word has been used.
func (s *SFMT) Generate() uint32 {
	if s.index >= N {
		s.regenerate()
		s.index = 0
	}
	r := s.state[s.index][0]
	s.index++
	return r
}
