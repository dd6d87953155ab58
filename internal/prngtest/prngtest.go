// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prngtest provides shared test assertions for the generator
// packages.  It is only intended to be imported from tests.
package prngtest

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/tinyprng/math/uint128"
	"github.com/decred/tinyprng/uniform"
)

const (
	// CenteringDraws is the number of draws averaged by the centering
	// assertions.
	CenteringDraws = 100000

	// RangeDraws is the number of draws checked by the range assertions.
	RangeDraws = 1000000

	// rangeLo and rangeHi define the interval used to exercise
	// GenerateRealInRange.
	rangeLo = -1000
	rangeHi = 1000
)

// Generator is the method set shared by every generator in this module.
type Generator[W uniform.Word] interface {
	uniform.Source[W]
	GenerateReal() float64
	GenerateRealClosed() float64
	GenerateRealInRange(lo, hi float64) float64
}

// Top64 returns the most significant 64 bits of the word, left aligned so
// that words of every width share the same scale.
func Top64[W uniform.Word](w W) uint64 {
	switch v := any(w).(type) {
	case uint32:
		return uint64(v) << 32
	case uint64:
		return v
	case uint128.Uint128:
		return v.Hi
	}
	panic("prngtest: unsupported word type")
}

// AssertCentered asserts that the mean of CenteringDraws raw outputs of a
// freshly created generator is within 1% of the midpoint of the output range.
func AssertCentered[W uniform.Word](t testing.TB, name string, newGen func() Generator[W]) {
	t.Helper()

	const n = CenteringDraws
	g := newGen()
	var sum uint64
	for i := 0; i < n; i++ {
		sum += Top64(g.Generate()) / n
	}

	const mid = math.MaxUint64 / 2
	const tolerance = math.MaxUint64 / 100
	delta := sum - mid
	if sum < mid {
		delta = mid - sum
	}
	if delta >= tolerance {
		t.Fatalf("%s: mean %x is not within 1%% of %x\nstate: %s", name,
			sum, uint64(mid), spew.Sdump(g))
	}
}

// AssertRealCentered asserts that the means of CenteringDraws results of
// GenerateReal and GenerateRealClosed are within 1% of 0.5 and that the mean
// of GenerateRealInRange(-1000, 1000) is within 1% of the half width around 0.
func AssertRealCentered[W uniform.Word](t testing.TB, name string, newGen func() Generator[W]) {
	t.Helper()

	const n = CenteringDraws
	tests := []struct {
		what      string
		draw      func(g Generator[W]) float64
		want      float64
		tolerance float64
	}{{
		what:      "GenerateReal",
		draw:      func(g Generator[W]) float64 { return g.GenerateReal() },
		want:      0.5,
		tolerance: 0.01,
	}, {
		what:      "GenerateRealClosed",
		draw:      func(g Generator[W]) float64 { return g.GenerateRealClosed() },
		want:      0.5,
		tolerance: 0.01,
	}, {
		what: "GenerateRealInRange",
		draw: func(g Generator[W]) float64 {
			return g.GenerateRealInRange(rangeLo, rangeHi)
		},
		want:      0,
		tolerance: rangeHi / 100,
	}}

	for _, test := range tests {
		g := newGen()
		var sum float64
		for i := 0; i < n; i++ {
			sum += test.draw(g) / n
		}
		if math.Abs(sum-test.want) >= test.tolerance {
			t.Fatalf("%s: %s mean %v is not within %v of %v", name,
				test.what, sum, test.tolerance, test.want)
		}
	}
}

// AssertRange asserts that RangeDraws results of GenerateReal lie in [0, 1)
// and that RangeDraws results of GenerateRealInRange(-1000, 1000) lie in
// [-1000, 1000).
func AssertRange[W uniform.Word](t testing.TB, name string, newGen func() Generator[W]) {
	t.Helper()

	g := newGen()
	for i := 0; i < RangeDraws; i++ {
		if v := g.GenerateReal(); v < 0 || v >= 1 {
			t.Fatalf("%s: draw %d: GenerateReal %v out of range", name, i, v)
		}
	}

	g = newGen()
	for i := 0; i < RangeDraws; i++ {
		v := g.GenerateRealInRange(rangeLo, rangeHi)
		if v < rangeLo || v >= rangeHi {
			t.Fatalf("%s: draw %d: GenerateRealInRange %v out of range", name,
				i, v)
		}
	}
}

// AssertDeterministic asserts that two generators created by newGen produce
// the same n raw outputs and that bulk filling matches sequential calls.
func AssertDeterministic[W uniform.Word](t testing.TB, name string, newGen func() Generator[W], n int) {
	t.Helper()

	a, b := newGen(), newGen()
	bulk := make([]W, n)
	uniform.Fill[W](newGen(), bulk)
	for i := 0; i < n; i++ {
		va, vb := a.Generate(), b.Generate()
		if va != vb {
			t.Fatalf("%s: output %d differs between instances -- %v != %v",
				name, i, va, vb)
		}
		if bulk[i] != va {
			t.Fatalf("%s: bulk output %d differs from sequential -- %v != %v",
				name, i, bulk[i], va)
		}
	}
}

// AssertNonDegenerate asserts that two consecutive outputs differ.
func AssertNonDegenerate[W uniform.Word](t testing.TB, name string, g Generator[W]) {
	t.Helper()

	if a, b := g.Generate(), g.Generate(); a == b {
		t.Fatalf("%s: consecutive outputs are identical (%v)\nstate: %s",
			name, a, spew.Sdump(g))
	}
}

// AssertOutputs asserts that the generator produces the expected outputs in
// order.
func AssertOutputs[W uniform.Word](t testing.TB, name string, g Generator[W], want []W) {
	t.Helper()

	for i, w := range want {
		if got := g.Generate(); got != w {
			t.Fatalf("%s: output %d mismatch -- got %v, want %v", name, i,
				got, w)
		}
	}
}
