// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mt64

import (
	"github.com/decred/tinyprng/uniform"
)

const (
	// N is the number of 64-bit words of state.
	N = 312

	// M is the offset of the word mixed into each regenerated word.
	M = 156

	// MatrixA is the twist matrix constant.
	MatrixA = 0xB5026F5AA96619E9

	// upperMask selects the most significant 33 bits of a state word.
	upperMask = 0xFFFFFFFF80000000

	// lowerMask selects the least significant 31 bits of a state word.
	lowerMask = 0x7FFFFFFF

	// DefaultSeed is used to seed a generator that was never seeded.
	DefaultSeed = 5489

	// arraySeed is the scalar seed applied before mixing in a key.
	arraySeed = 19650218
)

// Flavor identifies the seeding and tempering constants used by a generator.
type Flavor uint8

const (
	// Published follows the MT19937-64 reference algorithm.
	Published Flavor = iota

	// Compat reproduces the output of the older mixed 32/64-bit library.
	Compat
)

// String returns the flavor as a human-readable name.
func (f Flavor) String() string {
	switch f {
	case Published:
		return "published"
	case Compat:
		return "compat"
	}
	return "unknown"
}

// MT64 is a 64-bit Mersenne Twister.  The zero value is an unseeded generator
// of the Published flavor.
type MT64 struct {
	state  [N]uint64
	index  int
	seeded bool
	flavor Flavor
}

// New returns a Published generator seeded with a single word.
func New(seed uint64) *MT64 {
	m := &MT64{flavor: Published}
	m.seed(seed)
	return m
}

// NewFromSlice returns a Published generator seeded with the key.  It panics
// if the key is empty.
func NewFromSlice(key []uint64) *MT64 {
	m := &MT64{flavor: Published}
	m.seedArray(key)
	return m
}

// NewCompat returns a Compat generator seeded with a single word.
func NewCompat(seed uint64) *MT64 {
	m := &MT64{flavor: Compat}
	m.seed(seed)
	return m
}

// NewCompatFromSlice returns a Compat generator seeded with the key.  It
// panics if the key is empty.
func NewCompatFromSlice(key []uint64) *MT64 {
	m := &MT64{flavor: Compat}
	m.seedArray(key)
	return m
}

// Flavor returns the flavor of the generator.
func (m *MT64) Flavor() Flavor {
	return m.flavor
}

// seed fills the state from a single word and marks the state as exhausted so
// the next call to Generate regenerates it.
func (m *MT64) seed(seed uint64) {
	st := &m.state
	st[0] = seed
	switch m.flavor {
	case Compat:
		for i := 1; i < N; i++ {
			p := st[i-1]
			st[i] = (6364136223846793005*(p^(p>>30)) + uint64(i)) &
				0x5555555555555555
		}
	default:
		for i := 1; i < N; i++ {
			p := st[i-1]
			st[i] = 6364136223846793005*(p^(p>>62)) + uint64(i)
		}
	}
	m.index = N
	m.seeded = true
}

// seedArray mixes the key into a state seeded with arraySeed.
func (m *MT64) seedArray(key []uint64) {
	if len(key) == 0 {
		panic("mt64: empty key")
	}

	// The compat flavor uses the 32-bit mixing constants and truncates
	// every mixed word.
	mul1, mul2 := uint64(3935559000370003845), uint64(2862933555777941757)
	shift, mask := 62, ^uint64(0)
	if m.flavor == Compat {
		mul1, mul2 = 1664525, 1566083941
		shift, mask = 30, 0xffffffff
	}

	m.seed(arraySeed)
	st := &m.state
	i, j := 1, 0
	k := N
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		p := st[i-1]
		st[i] = ((st[i] ^ (p^(p>>shift))*mul1) + key[j] + uint64(j)) & mask
		i++
		j++
		if i >= N {
			st[0] = st[N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		p := st[i-1]
		st[i] = ((st[i] ^ (p^(p>>shift))*mul2) - uint64(i)) & mask
		i++
		if i >= N {
			st[0] = st[N-1]
			i = 1
		}
	}
	if m.flavor == Published {
		// Assure a non-zero initial state.
		st[0] = 1 << 63
	}
}

// twist regenerates every state word in one batch and resets the cursor.
func (m *MT64) twist() {
	st := &m.state
	mag := [2]uint64{0, MatrixA}
	for i := 0; i < N; i++ {
		y := st[i]&upperMask | st[(i+1)%N]&lowerMask
		st[i] = st[(i+M)%N] ^ y>>1 ^ mag[y&1]
	}
	m.index = 0
}

// temper scrambles a state word into an output word.
func (m *MT64) temper(y uint64) uint64 {
	if m.flavor == Compat {
		y ^= y >> 11
		y ^= (y << 7) & 0x9d2c5680
		y ^= (y << 15) & 0xefc60000
		y ^= y >> 18
		return y
	}
	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71D67FFFEDA60000
	y ^= (y << 37) & 0xFFF7EEE000000000
	y ^= y >> 43
	return y
}

// Generate returns the next tempered output, regenerating the state first
// when all words of the current batch have been used.
func (m *MT64) Generate() uint64 {
	if !m.seeded {
		log.Warnf("Generator used before seeding; seeding with default "+
			"seed %d", DefaultSeed)
		m.seed(DefaultSeed)
	}
	if m.index >= N {
		m.twist()
	}
	y := m.state[m.index]
	m.index++
	return m.temper(y)
}

// GenerateReal returns a float64 in [0, 1) except at the top of the range
// where it may reach or marginally exceed 1.  See the uniform package for the
// exact boundary.
func (m *MT64) GenerateReal() float64 {
	return uniform.Real[uint64](m)
}

// GenerateRealClosed returns a float64 in [0, 1].
func (m *MT64) GenerateRealClosed() float64 {
	return uniform.RealClosed[uint64](m)
}

// GenerateRealInRange returns lo + (hi-lo)*GenerateReal().
func (m *MT64) GenerateRealInRange(lo, hi float64) float64 {
	return uniform.RealInRange[uint64](m, lo, hi)
}

// Fill fills dst with consecutive outputs.
func (m *MT64) Fill(dst []uint64) {
	uniform.Fill[uint64](m, dst)
}
