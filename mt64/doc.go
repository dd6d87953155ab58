// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mt64 implements the 64-bit Mersenne Twister pseudo-random number
generator.

The generator keeps 312 words of state and regenerates all of them in a single
batch every 312 outputs.  Each output is a tempered copy of the next state
word.

# Flavors

Two flavors share the state layout and the batch regeneration but differ in
how the state is seeded and how outputs are tempered:

  - Published, created with New and NewFromSlice, follows the MT19937-64
    reference algorithm and reproduces its published output.
  - Compat, created with NewCompat and NewCompatFromSlice, reproduces the
    output of an older library that mixed the 32-bit seeding and tempering
    constants into the 64-bit generator.  It exists so recorded sequences can
    be replayed bit for bit and should not be chosen for new work.  Array
    seeding truncates every state word to 32 bits, so about half of the
    outputs of the first batch after array seeding fit in 32 bits.

# Seeding

Scalar seeding fills the state from a single word.  Array seeding first seeds
with 19650218 and then mixes the key into the state with two passes whose
state and key indexes both wrap.  An empty key is a programming error and
causes a panic.

The zero value of MT64 is an unseeded published generator.  The first call to
Generate seeds it with 5489 and logs a warning.

Generators are not safe for concurrent access and are not suitable for
cryptographic use.
*/
package mt64
