// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mt64

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/tinyprng/internal/prngtest"
)

// testKey is the key used by the array seeding tests.
var testKey = []uint64{0x123, 0x234, 0x345, 0x456}

// longKey returns a key longer than the state so the key index wraps after
// the state index.
func longKey() []uint64 {
	key := make([]uint64, N+32)
	for i := range key {
		key[i] = 1
	}
	return key
}

// TestKnownOutputs ensures both flavors produce the expected outputs for
// scalar, array, and long array seeds.
func TestKnownOutputs(t *testing.T) {
	tests := []struct {
		name string
		gen  *MT64
		want []uint64
	}{{
		name: "published reference key",
		gen:  NewFromSlice([]uint64{0x12345, 0x23456, 0x34567, 0x45678}),
		want: []uint64{
			7266447313870364031, 4946485549665804864, 16945909448695747420,
		},
	}, {
		name: "published default seed",
		gen:  New(DefaultSeed),
		want: []uint64{14514284786278117030},
	}, {
		name: "published scalar seed",
		gen:  New(0x1818729182367349),
		want: []uint64{0x6a0024a80c6adb29, 0xd251a992a4521ea7, 0x4bd3a978cedd7b1d},
	}, {
		name: "published single word key",
		gen:  NewFromSlice([]uint64{0x1818729182367349}),
		want: []uint64{0x0f5972611a6f2a74, 0x7899cc74239f6120, 0x223ee7482d2a8a42},
	}, {
		name: "published test key",
		gen:  NewFromSlice(testKey),
		want: []uint64{0x7d49723c00686afc, 0xbd59b8e7590821a1, 0x928fbe1f3230ebc2},
	}, {
		name: "published long key",
		gen:  NewFromSlice(longKey()),
		want: []uint64{0x408ec0a07c09c37b},
	}, {
		name: "compat default seed",
		gen:  NewCompat(DefaultSeed),
		want: []uint64{0x014579bed769aa59, 0x5ad1331d29e107ee, 0xef77ae2ac9e4fa72},
	}, {
		name: "compat scalar seed",
		gen:  NewCompat(0x1818729182367349),
		want: []uint64{0x1d5ad561077c0270, 0x9b3072ac8a0f63d3, 0x6fac6151993fd0a1},
	}, {
		name: "compat test key",
		gen:  NewCompatFromSlice(testKey),
		want: []uint64{
			0x14c8a70c, 0xb514e252feff1535, 0xb514e252da9f269d, 0x2ab1afe3,
			0x332db244,
		},
	}, {
		name: "compat long key",
		gen:  NewCompatFromSlice(longKey()),
		want: []uint64{0xbacef439, 0x177d46aa, 0xb514e2526fbfdf50},
	}}

	for _, test := range tests {
		prngtest.AssertOutputs(t, test.name, prngtest.Generator[uint64](test.gen),
			test.want)
	}
}

// TestZeroValue ensures an unseeded generator seeds itself with the default
// seed on first use.
func TestZeroValue(t *testing.T) {
	var m MT64
	if m.Flavor() != Published {
		t.Fatalf("unexpected flavor %v", m.Flavor())
	}
	if got, want := m.Generate(), New(DefaultSeed).Generate(); got != want {
		t.Fatalf("unexpected first output -- got %x, want %x", got, want)
	}
	if !m.seeded || m.index != 1 {
		t.Fatalf("unexpected state after first output: %s", spew.Sdump(m.index,
			m.seeded))
	}
}

// TestBatchBoundary ensures the state is regenerated exactly once per batch
// of N outputs and that outputs on both sides of the boundary are correct.
func TestBatchBoundary(t *testing.T) {
	tests := []struct {
		name string
		gen  *MT64
		want [3]uint64 // outputs N-1, N, and N+1
	}{{
		name: "published",
		gen:  NewFromSlice(testKey),
		want: [3]uint64{0xdc409a20baaa97fe, 0xa34fdc1ba8af2eb5, 0xc68be57da3eda3d5},
	}, {
		name: "compat",
		gen:  NewCompatFromSlice(testKey),
		want: [3]uint64{0xb514e252a0f5c6f3, 0x7fee094d, 0x5a8a712902096ed7},
	}}

	for _, test := range tests {
		m := test.gen
		if m.index != N {
			t.Fatalf("%s: unexpected index after seeding %d", test.name,
				m.index)
		}

		var regenerations int
		var got [3]uint64
		for i := 0; i < N+2; i++ {
			before := m.index
			v := m.Generate()
			if before == N && m.index == 1 {
				regenerations++
			}
			if i >= N-1 {
				got[i-(N-1)] = v
			}
			if i == N-1 && m.index != N {
				t.Fatalf("%s: index %d after a full batch", test.name, m.index)
			}
		}
		if regenerations != 2 {
			t.Fatalf("%s: got %d regenerations, want 2", test.name,
				regenerations)
		}
		if got != test.want {
			t.Fatalf("%s: unexpected outputs around the boundary -- got %x, "+
				"want %x", test.name, got, test.want)
		}
	}
}

// TestArrayTruncation ensures compat array seeding truncates every state word
// except the first to 32 bits while published seeding keeps the full width and
// forces the top bit of the first word.
func TestArrayTruncation(t *testing.T) {
	compat := NewCompatFromSlice(testKey)
	for i := 1; i < N; i++ {
		if compat.state[i]>>32 != 0 {
			t.Fatalf("compat word %d not truncated: %x", i, compat.state[i])
		}
	}

	published := NewFromSlice(testKey)
	if published.state[0] != 1<<63 {
		t.Fatalf("unexpected first published word %x", published.state[0])
	}
	var wide bool
	for i := 1; i < N; i++ {
		if published.state[i]>>32 != 0 {
			wide = true
			break
		}
	}
	if !wide {
		t.Fatal("published state was truncated")
	}
}

// TestEmptyKeyPanics ensures array seeding with an empty key panics with a
// descriptive message for both flavors.
func TestEmptyKeyPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{name: "published nil", fn: func() { NewFromSlice(nil) }},
		{name: "published empty", fn: func() { NewFromSlice([]uint64{}) }},
		{name: "compat nil", fn: func() { NewCompatFromSlice(nil) }},
	}

	for _, test := range tests {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("%s: did not panic", test.name)
					return
				}
				if r != "mt64: empty key" {
					t.Errorf("%s: unexpected panic %v", test.name, r)
				}
			}()
			test.fn()
		}()
	}
}

// TestFlavor ensures the constructors set the expected flavor.
func TestFlavor(t *testing.T) {
	tests := []struct {
		gen  *MT64
		want Flavor
		str  string
	}{
		{New(1), Published, "published"},
		{NewFromSlice([]uint64{1}), Published, "published"},
		{NewCompat(1), Compat, "compat"},
		{NewCompatFromSlice([]uint64{1}), Compat, "compat"},
	}

	for i, test := range tests {
		if got := test.gen.Flavor(); got != test.want {
			t.Errorf("#%d: got flavor %v, want %v", i, got, test.want)
		}
		if got := test.gen.Flavor().String(); got != test.str {
			t.Errorf("#%d: got name %q, want %q", i, got, test.str)
		}
	}
	if got := Flavor(9).String(); got != "unknown" {
		t.Errorf("unexpected name for unknown flavor %q", got)
	}
}

// TestCompatReal ensures the real conversion of compat output matches the
// recorded value.
func TestCompatReal(t *testing.T) {
	m := NewCompatFromSlice(testKey)
	if got, want := m.GenerateReal(), 1.8902755012303873e-11; got != want {
		t.Fatalf("unexpected real -- got %v, want %v", got, want)
	}
}

// TestStatistics ensures both flavors are deterministic, non-degenerate,
// centered, and produce reals in range for both seeding methods.
func TestStatistics(t *testing.T) {
	tests := []struct {
		name   string
		newGen func() prngtest.Generator[uint64]
	}{{
		name:   "published scalar",
		newGen: func() prngtest.Generator[uint64] { return New(0x1818729182367349) },
	}, {
		name:   "published array",
		newGen: func() prngtest.Generator[uint64] { return NewFromSlice(testKey) },
	}, {
		name:   "compat scalar",
		newGen: func() prngtest.Generator[uint64] { return NewCompat(0x1818729182367349) },
	}, {
		name:   "compat array",
		newGen: func() prngtest.Generator[uint64] { return NewCompatFromSlice(testKey) },
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prngtest.AssertDeterministic(t, test.name, test.newGen, 2*N+7)
			prngtest.AssertNonDegenerate(t, test.name, test.newGen())
			prngtest.AssertCentered(t, test.name, test.newGen)
			prngtest.AssertRealCentered(t, test.name, test.newGen)
			prngtest.AssertRange(t, test.name, test.newGen)
		})
	}
}

// BenchmarkGenerate benchmarks generating a single word including the
// amortized batch regeneration.
func BenchmarkGenerate(b *testing.B) {
	m := New(DefaultSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Generate()
	}
}
