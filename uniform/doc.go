// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uniform converts the raw integer output of the generators in this
module into floating point values and bounded integers.

Every generator exposes a Generate method returning a 32-bit, 64-bit, or
128-bit word.  The functions in this package are generic over that word width
and only depend on the Generate capability, so the same conversion code serves
every generator:

	x := xorshift.NewXorshift64(1337)
	f := uniform.Real[uint64](x)
	g := uniform.RealInRange[uint64](x, -1000, 1000)

# Real Number Conversion

Real and RealClosed split the raw word into a high 32-bit chunk and a low chunk
that has its bottom two bits cleared, scale each chunk by a fixed reciprocal,
and sum the results.  32-bit words skip the split and are scaled directly.
128-bit words use the top two 32-bit chunks and discard the low 64 bits.

The reciprocals are part of the numeric contract and are bit-for-bit
compatible with the reference generators.  Real scales by 1/(2^32-1) and
1/(2^64-1), so its results are not strictly below 1 at the top of the range:

  - The 32-bit maximum maps to exactly 1.
  - Every 64-bit or 128-bit word whose high 32-bit chunk is 0xffffffff maps to
    1 or marginally above it.  That is 2^32 raw words, so a uniformly random
    word lands there with probability 2^-32 per draw.

All other words map into [0, 1).  RealClosed scales by 1/2^32 and 1/2^64 and
covers [0, 1]; for the 64-bit and 128-bit widths only the largest raw words
round to exactly 1.

# Bounded Integers

Uint64n and Int64n provide unbiased bounded integers on top of any generator.
Shuffle performs a Fisher-Yates shuffle and Sample selects distinct indexes.
All of them panic when called with
an invalid bound.
*/
package uniform
