// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

import (
	"github.com/decred/tinyprng/math/uint128"
)

// Word is the set of raw output types produced by the generators.
type Word interface {
	uint32 | uint64 | uint128.Uint128
}

// Source is implemented by any generator that produces raw words of type W.
// Each call to Generate must advance the generator state exactly once.
type Source[W Word] interface {
	Generate() W
}

// These constants define the reciprocals used to scale the high and low
// chunks of a raw word.  They are untyped so the quotient is computed exactly
// and rounded to float64 once.
const (
	realScaleHi = 1.0 / 4294967295.0
	realScaleLo = 1.0 / 18446744073709551615.0

	closedScaleHi = 1.0 / 4294967296.0
	closedScaleLo = 1.0 / 18446744073709551616.0

	// lowChunkMask keeps the low 32 bits of the low chunk minus the bottom
	// two bits.
	lowChunkMask = 0xfffffffc
)

// chunks splits the raw word into the high and low chunks used by the real
// conversions.  The split flag is false for 32-bit words which are scaled as
// a single chunk.
func chunks[W Word](w W) (hi, lo uint64, split bool) {
	switch v := any(w).(type) {
	case uint32:
		return uint64(v), 0, false
	case uint64:
		return v >> 32, v & lowChunkMask, true
	case uint128.Uint128:
		return v.Hi >> 32, v.Hi & lowChunkMask, true
	}
	panic("uniform: unsupported word type")
}

// WordToReal converts the raw word to a float64 using the scaling of Real.
func WordToReal[W Word](w W) float64 {
	hi, lo, split := chunks(w)
	if !split {
		return float64(hi) * realScaleHi
	}
	return float64(hi)*realScaleHi + float64(lo)*realScaleLo
}

// WordToRealClosed converts the raw word to a float64 using the scaling of
// RealClosed.
func WordToRealClosed[W Word](w W) float64 {
	hi, lo, split := chunks(w)
	if !split {
		return float64(hi) * closedScaleHi
	}
	return float64(hi)*closedScaleHi + float64(lo)*closedScaleLo
}

// Real returns a float64 derived from the next raw word of the source.  The
// result is in [0, 1) except that the 32-bit maximum yields exactly 1 and wider
// words with a high 32-bit chunk of 0xffffffff yield 1 or marginally more.
func Real[W Word](src Source[W]) float64 {
	return WordToReal(src.Generate())
}

// RealClosed returns a float64 in [0, 1] derived from the next raw word of the
// source.
func RealClosed[W Word](src Source[W]) float64 {
	return WordToRealClosed(src.Generate())
}

// RealInRange returns lo + (hi-lo)*Real(src).
//
// No bounds are rejected.  When lo == hi the result is always lo, and when
// lo > hi the interval is traversed in the opposite direction so results lie
// in (hi, lo].
func RealInRange[W Word](src Source[W], lo, hi float64) float64 {
	return lo + (hi-lo)*Real(src)
}

// Fill fills dst with consecutive raw words from the source.  The result is
// identical to calling Generate len(dst) times.
func Fill[W Word](src Source[W], dst []W) {
	for i := range dst {
		dst[i] = src.Generate()
	}
}

// Reals fills dst with consecutive results of Real.
func Reals[W Word](src Source[W], dst []float64) {
	for i := range dst {
		dst[i] = WordToReal(src.Generate())
	}
}
