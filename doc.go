// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package tinyprng provides a registry of the deterministic pseudo-random number
generators implemented by this module behind a single Generator interface.

The generators themselves live in the xorshift, pcg, and mt64 packages and can
be used directly when the concrete type and native word width are known.  This
package is intended for callers that select a generator by name at runtime,
such as command line tools and test harnesses:

	g, err := tinyprng.New("pcg-xsh-rr-64-32", []uint64{0x1818729182367349})
	if err != nil {
		return err
	}
	fmt.Println(g.Next(), g.Real())

# Seed Words

Every generator is seeded from a slice of 64-bit words.  Generators with a
scalar seed use the first word, truncated to 32 bits for the 32-bit state
generators.  128-bit seeds take the first two words as the high and low halves
or, when only one word is provided, use it as the low half.  xorshift1024*
requires 16 words.  The Mersenne Twister generators are seeded with all of the
words using array seeding.

Extra words that a generator does not use are ignored.

# Errors

Errors returned by New are of type Error and wrap an ErrorKind, so callers can
use errors.Is to check for a specific kind.
*/
package tinyprng
