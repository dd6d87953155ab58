// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

import (
	"testing"

	"github.com/decred/tinyprng/math/uint128"
)

// queueSource is a Source that cycles through a fixed list of raw words.
type queueSource[W Word] struct {
	words []W
	calls int
}

func (q *queueSource[W]) Generate() W {
	w := q.words[q.calls%len(q.words)]
	q.calls++
	return w
}

func newQueue[W Word](words ...W) *queueSource[W] {
	return &queueSource[W]{words: words}
}

// TestRealConstants ensures the real conversions are bit-for-bit identical to
// the reference scaling for all three word widths including the boundary
// words.
func TestRealConstants(t *testing.T) {
	tests := []struct {
		name       string
		real       float64
		realClosed float64
		wantReal   float64
		wantClosed float64
	}{{
		name:       "32-bit zero",
		real:       WordToReal(uint32(0)),
		realClosed: WordToRealClosed(uint32(0)),
		wantReal:   0,
		wantClosed: 0,
	}, {
		name:       "32-bit max",
		real:       WordToReal(uint32(0xffffffff)),
		realClosed: WordToRealClosed(uint32(0xffffffff)),
		wantReal:   1,
		wantClosed: 0.9999999997671694,
	}, {
		name:       "32-bit half",
		real:       WordToReal(uint32(0x80000000)),
		realClosed: WordToRealClosed(uint32(0x80000000)),
		wantReal:   0.5000000001164153,
		wantClosed: 0.5,
	}, {
		name:       "32-bit xorshift32 first output",
		real:       WordToReal(uint32(0x1443882a)),
		realClosed: WordToRealClosed(uint32(0x1443882a)),
		wantReal:   0.0791554548961938,
		wantClosed: 0.07915545487776399,
	}, {
		name:       "64-bit zero",
		real:       WordToReal(uint64(0)),
		realClosed: WordToRealClosed(uint64(0)),
		wantReal:   0,
		wantClosed: 0,
	}, {
		name:       "64-bit max",
		real:       WordToReal(uint64(0xffffffffffffffff)),
		realClosed: WordToRealClosed(uint64(0xffffffffffffffff)),
		wantReal:   1.0000000002328306,
		wantClosed: 1,
	}, {
		name:       "64-bit high chunk max low chunk zero",
		real:       WordToReal(uint64(0xffffffff00000000)),
		realClosed: WordToRealClosed(uint64(0xffffffff00000000)),
		wantReal:   1,
		wantClosed: 0.9999999997671694,
	}, {
		name:       "64-bit high chunk max low chunk nonzero",
		real:       WordToReal(uint64(0xffffffff12345678)),
		realClosed: WordToRealClosed(uint64(0xffffffff12345678)),
		wantReal:   1.0000000000165568,
		wantClosed: 0.9999999997837262,
	}, {
		name:       "64-bit bottom bits ignored",
		real:       WordToReal(uint64(3)),
		realClosed: WordToRealClosed(uint64(3)),
		wantReal:   0,
		wantClosed: 0,
	}, {
		name:       "64-bit xorshift64 first output",
		real:       WordToReal(uint64(0x14cd6406b73)),
		realClosed: WordToRealClosed(uint64(0x14cd6406b73)),
		wantReal:   7.749463444193215e-08,
		wantClosed: 7.74946344239344e-08,
	}, {
		name:       "128-bit max",
		real:       WordToReal(uint128.New(0xffffffffffffffff, 0xffffffffffffffff)),
		realClosed: WordToRealClosed(uint128.New(0xffffffffffffffff, 0xffffffffffffffff)),
		wantReal:   1.0000000002328306,
		wantClosed: 1,
	}, {
		name:       "128-bit low word ignored",
		real:       WordToReal(uint128.New(0, 0xffffffffffffffff)),
		realClosed: WordToRealClosed(uint128.New(0, 0xffffffffffffffff)),
		wantReal:   0,
		wantClosed: 0,
	}, {
		name:       "128-bit xorshift128 first output",
		real:       WordToReal(uint128.New(0x0029e4f400000000, 0)),
		realClosed: WordToRealClosed(uint128.New(0x0029e4f400000000, 0)),
		wantReal:   0.0006392570213971792,
		wantClosed: 0.0006392570212483406,
	}}

	for _, test := range tests {
		if test.real != test.wantReal {
			t.Errorf("%s: unexpected real -- got %v, want %v", test.name,
				test.real, test.wantReal)
		}
		if test.realClosed != test.wantClosed {
			t.Errorf("%s: unexpected closed real -- got %v, want %v",
				test.name, test.realClosed, test.wantClosed)
		}
	}
}

// TestRealUsesSource ensures the source based conversions consume exactly one
// word per call and agree with the word based conversions.
func TestRealUsesSource(t *testing.T) {
	words := []uint64{0, 0x8000000000000000, 0x0123456789abcdef, 0xfffffffffffffffc}
	src := newQueue(words...)
	for i, w := range words {
		if got, want := Real[uint64](src), WordToReal(w); got != want {
			t.Fatalf("#%d: unexpected real -- got %v, want %v", i, got, want)
		}
	}
	for i, w := range words {
		got, want := RealClosed[uint64](src), WordToRealClosed(w)
		if got != want {
			t.Fatalf("#%d: unexpected closed real -- got %v, want %v", i, got,
				want)
		}
	}
	if src.calls != 2*len(words) {
		t.Fatalf("unexpected number of calls -- got %d, want %d", src.calls,
			2*len(words))
	}
}

// TestRealInRange ensures the affine range map behaves as documented for
// normal, empty, and inverted ranges.
func TestRealInRange(t *testing.T) {
	tests := []struct {
		name   string
		word   uint32
		lo, hi float64
		want   float64
	}{{
		name: "zero word maps to lo",
		word: 0,
		lo:   -1000,
		hi:   1000,
		want: -1000,
	}, {
		name: "max word maps to hi",
		word: 0xffffffff,
		lo:   -1000,
		hi:   1000,
		want: 1000,
	}, {
		name: "empty range",
		word: 0x12345678,
		lo:   3.5,
		hi:   3.5,
		want: 3.5,
	}, {
		name: "inverted range zero word",
		word: 0,
		lo:   10,
		hi:   -10,
		want: 10,
	}, {
		name: "inverted range max word",
		word: 0xffffffff,
		lo:   10,
		hi:   -10,
		want: -10,
	}}

	for _, test := range tests {
		got := RealInRange[uint32](newQueue(test.word), test.lo, test.hi)
		if got != test.want {
			t.Errorf("%s: unexpected result -- got %v, want %v", test.name,
				got, test.want)
		}
	}
}

// TestFill ensures the bulk helpers produce the same sequence as sequential
// calls.
func TestFill(t *testing.T) {
	words := []uint128.Uint128{
		uint128.New(1, 2),
		uint128.New(0xffffffff00000000, 0),
		uint128.New(0x0123456789abcdef, 0xfedcba9876543210),
	}

	got := make([]uint128.Uint128, 5)
	Fill[uint128.Uint128](newQueue(words...), got)
	for i := range got {
		if want := words[i%len(words)]; got[i] != want {
			t.Fatalf("#%d: unexpected word -- got %s, want %s", i,
				got[i].Hex(), want.Hex())
		}
	}

	reals := make([]float64, 5)
	Reals[uint128.Uint128](newQueue(words...), reals)
	for i := range reals {
		if want := WordToReal(words[i%len(words)]); reals[i] != want {
			t.Fatalf("#%d: unexpected real -- got %v, want %v", i, reals[i],
				want)
		}
	}
}
