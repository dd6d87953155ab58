// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pcg

import (
	"github.com/decred/tinyprng/math/uint128"
	"github.com/decred/tinyprng/uniform"
)

// XslRr12864 is a PCG generator with 128-bit LCG state and 64-bit XSL-RR output.
type XslRr12864 struct {
	state uint128.Uint128
}

// NewXslRr12864 returns a generator with the seed as its initial state.
func NewXslRr12864(seed uint128.Uint128) *XslRr12864 {
	return &XslRr12864{state: seed}
}

// Generate advances the state and returns the XSL-RR permutation of the
// state prior to the advance.
func (p *XslRr12864) Generate() uint64 {
	s := p.state
	p.state = advance128(s, true)
	return XslRr(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XslRr12864) GenerateReal() float64 {
	return uniform.Real[uint64](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XslRr12864) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XslRr12864) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XslRr12864) Fill(dst []uint64) {
	uniform.Fill[uint64](p, dst)
}

// XslRr12864Mcg is a PCG generator with 128-bit MCG state and 64-bit XSL-RR
// output.  The increment is omitted from the advance.
type XslRr12864Mcg struct {
	state uint128.Uint128
}

// NewXslRr12864Mcg returns a generator with the seed as its initial state.
func NewXslRr12864Mcg(seed uint128.Uint128) *XslRr12864Mcg {
	return &XslRr12864Mcg{state: seed}
}

// Generate advances the state and returns the XSL-RR permutation of the
// state prior to the advance.
func (p *XslRr12864Mcg) Generate() uint64 {
	s := p.state
	p.state = advance128(s, false)
	return XslRr(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XslRr12864Mcg) GenerateReal() float64 {
	return uniform.Real[uint64](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XslRr12864Mcg) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XslRr12864Mcg) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XslRr12864Mcg) Fill(dst []uint64) {
	uniform.Fill[uint64](p, dst)
}
