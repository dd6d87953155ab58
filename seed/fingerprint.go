// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"encoding/hex"
	"math"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/tinyprng/math/uint128"
)

// Fingerprint is a rolling BLAKE-256 digest over a stream of values.  Values
// are written little endian at their natural width, so the same numeric value
// added at different widths changes the digest differently.
//
// The zero value is not usable.  Use NewFingerprint.
type Fingerprint struct {
	hasher *blake256.Hasher256
	count  uint64
}

// NewFingerprint returns an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{hasher: blake256.NewHasher256()}
}

// AddUint32 adds a 32-bit value to the fingerprint.
func (f *Fingerprint) AddUint32(v uint32) {
	f.hasher.WriteUint32LE(v)
	f.count++
}

// AddUint64 adds a 64-bit value to the fingerprint.
func (f *Fingerprint) AddUint64(v uint64) {
	f.hasher.WriteUint64LE(v)
	f.count++
}

// AddUint128 adds a 128-bit value to the fingerprint.  The low word is
// written first.
func (f *Fingerprint) AddUint128(v uint128.Uint128) {
	f.hasher.WriteUint64LE(v.Lo)
	f.hasher.WriteUint64LE(v.Hi)
	f.count++
}

// AddFloat64 adds the IEEE 754 binary representation of a float64 to the
// fingerprint.
func (f *Fingerprint) AddFloat64(v float64) {
	f.hasher.WriteUint64LE(math.Float64bits(v))
	f.count++
}

// Count returns the number of values added to the fingerprint.
func (f *Fingerprint) Count() uint64 {
	return f.count
}

// Sum returns the digest of all values added so far.  It does not change the
// state, so more values may be added afterwards.
func (f *Fingerprint) Sum() [blake256.Size]byte {
	return f.hasher.Sum256()
}

// String returns the digest of all values added so far as a hex string.
func (f *Fingerprint) String() string {
	sum := f.Sum()
	return hex.EncodeToString(sum[:])
}
