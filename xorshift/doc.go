// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package xorshift implements the xorshift family of pseudo-random number
generators.

Five variants are provided:

  - Xorshift32: 32-bit state, shift triplet (13, 17, 5)
  - Xorshift64: 64-bit state, shift triplet (13, 7, 17)
  - Xorshift128: four 32-bit words rotated as a ring, shift triplet (11, 8, 19)
  - Xorshift64Star: 64-bit state with a multiplicative output scramble
  - Xorshift1024Star: sixteen 64-bit words with a 4-bit ring cursor and a
    multiplicative output scramble

The seed is used verbatim as the initial state.  No seed is rejected.  An
all-zero seed is a fixed point of every variant and the generator will return
zero forever, so callers are responsible for providing non-zero seed material.

The generators are deterministic and are not safe for concurrent access.  Use
one instance per goroutine.  The output is not suitable for cryptographic use.
*/
package xorshift
