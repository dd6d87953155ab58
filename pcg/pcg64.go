// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pcg

import (
	"github.com/decred/tinyprng/uniform"
)

// XshRr6432 is a PCG generator with 64-bit LCG state and 32-bit XSH-RR output.
type XshRr6432 struct {
	state uint64
}

// NewXshRr6432 returns a generator with the seed as its initial state.
func NewXshRr6432(seed uint64) *XshRr6432 {
	return &XshRr6432{state: seed}
}

// Generate advances the state and returns the XSH-RR permutation of the
// state prior to the advance.
func (p *XshRr6432) Generate() uint32 {
	s := p.state
	p.state = advance64(s, true)
	return XshRr(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XshRr6432) GenerateReal() float64 {
	return uniform.Real[uint32](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XshRr6432) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint32](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XshRr6432) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint32](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XshRr6432) Fill(dst []uint32) {
	uniform.Fill[uint32](p, dst)
}

// XshRr6432Mcg is a PCG generator with 64-bit MCG state and 32-bit XSH-RR output.
// The increment is omitted from the advance.
type XshRr6432Mcg struct {
	state uint64
}

// NewXshRr6432Mcg returns a generator with the seed as its initial state.
func NewXshRr6432Mcg(seed uint64) *XshRr6432Mcg {
	return &XshRr6432Mcg{state: seed}
}

// Generate advances the state and returns the XSH-RR permutation of the
// state prior to the advance.
func (p *XshRr6432Mcg) Generate() uint32 {
	s := p.state
	p.state = advance64(s, false)
	return XshRr(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XshRr6432Mcg) GenerateReal() float64 {
	return uniform.Real[uint32](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XshRr6432Mcg) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint32](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XshRr6432Mcg) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint32](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XshRr6432Mcg) Fill(dst []uint32) {
	uniform.Fill[uint32](p, dst)
}

// XshRs6432 is a PCG generator with 64-bit LCG state and 32-bit XSH-RS output.
type XshRs6432 struct {
	state uint64
}

// NewXshRs6432 returns a generator with the seed as its initial state.
func NewXshRs6432(seed uint64) *XshRs6432 {
	return &XshRs6432{state: seed}
}

// Generate advances the state and returns the XSH-RS permutation of the
// state prior to the advance.
func (p *XshRs6432) Generate() uint32 {
	s := p.state
	p.state = advance64(s, true)
	return XshRs(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XshRs6432) GenerateReal() float64 {
	return uniform.Real[uint32](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XshRs6432) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint32](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XshRs6432) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint32](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XshRs6432) Fill(dst []uint32) {
	uniform.Fill[uint32](p, dst)
}

// XshRs6432Mcg is a PCG generator with 64-bit MCG state and 32-bit XSH-RS output.
// The increment is omitted from the advance.
type XshRs6432Mcg struct {
	state uint64
}

// NewXshRs6432Mcg returns a generator with the seed as its initial state.
func NewXshRs6432Mcg(seed uint64) *XshRs6432Mcg {
	return &XshRs6432Mcg{state: seed}
}

// Generate advances the state and returns the XSH-RS permutation of the
// state prior to the advance.
func (p *XshRs6432Mcg) Generate() uint32 {
	s := p.state
	p.state = advance64(s, false)
	return XshRs(s)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (p *XshRs6432Mcg) GenerateReal() float64 {
	return uniform.Real[uint32](p)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (p *XshRs6432Mcg) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint32](p)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (p *XshRs6432Mcg) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint32](p, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (p *XshRs6432Mcg) Fill(dst []uint32) {
	uniform.Fill[uint32](p, dst)
}
