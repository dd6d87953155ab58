// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"encoding/binary"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/tinyprng/math/uint128"
	"lukechampine.com/blake3"
)

// phraseContext is the BLAKE3 key derivation context for seed phrases.
const phraseContext = "tinyprng 2025-01-01 seed phrase v1"

// Random32 returns a random 32-bit seed.
func Random32() uint32 {
	return rand.Uint32()
}

// Random64 returns a random 64-bit seed.
func Random64() uint64 {
	return rand.Uint64()
}

// Random128 returns a random 128-bit seed.
func Random128() uint128.Uint128 {
	return uint128.New(rand.Uint64(), rand.Uint64())
}

// RandomWords returns n random 64-bit seed words.  It panics if n < 0.
func RandomWords(n int) []uint64 {
	if n < 0 {
		panic("seed: negative word count")
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = rand.Uint64()
	}
	return words
}

// FromPhrase deterministically derives n seed words from the phrase.  The
// words are read little endian from consecutive 8-byte chunks of the BLAKE3
// key derivation output for the phrase, so the first k words for a given
// phrase are the same for every n >= k.  It panics if n < 0.
func FromPhrase(phrase string, n int) []uint64 {
	if n < 0 {
		panic("seed: negative word count")
	}

	buf := make([]byte, 8*n)
	blake3.DeriveKey(buf, phraseContext, []byte(phrase))
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return words
}
