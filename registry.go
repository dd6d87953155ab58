// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyprng

import (
	"fmt"
	"sort"

	"github.com/decred/tinyprng/math/uint128"
	"github.com/decred/tinyprng/mt64"
	"github.com/decred/tinyprng/pcg"
	"github.com/decred/tinyprng/uniform"
	"github.com/decred/tinyprng/xorshift"
)

// Generator is a seeded pseudo-random number generator of any family and
// output width.
type Generator interface {
	// Name returns the registered name of the generator.
	Name() string

	// Width returns the number of bits in each raw output.
	Width() int

	// Next returns the next raw output widened to 128 bits.
	Next() uint128.Uint128

	// Real returns the next output as a float64 in [0, 1) except at the
	// top of the range, where it may reach or marginally exceed 1 as
	// documented by the uniform package.
	Real() float64

	// RealClosed returns the next output as a float64 in [0, 1].
	RealClosed() float64

	// RealInRange returns lo + (hi-lo)*Real().
	RealInRange(lo, hi float64) float64
}

// native is the method set shared by the concrete generator types.
type native[W uniform.Word] interface {
	uniform.Source[W]
	GenerateReal() float64
	GenerateRealClosed() float64
	GenerateRealInRange(lo, hi float64) float64
}

// adapter exposes a concrete generator through the Generator interface.
type adapter[W uniform.Word] struct {
	name  string
	width int
	gen   native[W]
}

// Ensure adapter implements the Generator interface.
var _ Generator = (*adapter[uint32])(nil)

func (a *adapter[W]) Name() string { return a.name }
func (a *adapter[W]) Width() int   { return a.width }

func (a *adapter[W]) Next() uint128.Uint128 {
	switch v := any(a.gen.Generate()).(type) {
	case uint32:
		return uint128.From64(uint64(v))
	case uint64:
		return uint128.From64(v)
	case uint128.Uint128:
		return v
	}
	panic("tinyprng: unsupported word type")
}

func (a *adapter[W]) Real() float64       { return a.gen.GenerateReal() }
func (a *adapter[W]) RealClosed() float64 { return a.gen.GenerateRealClosed() }
func (a *adapter[W]) RealInRange(lo, hi float64) float64 {
	return a.gen.GenerateRealInRange(lo, hi)
}

// wrap returns a Generator for the concrete generator.
func wrap[W uniform.Word](name string, width int, gen native[W]) Generator {
	return &adapter[W]{name: name, width: width, gen: gen}
}

// Descriptor describes a registered generator.
type Descriptor struct {
	// Name is the name used to look up the generator.
	Name string

	// Family is the generator family.
	Family string

	// Width is the number of bits in each raw output.
	Width int

	// SeedWords is the minimum number of 64-bit seed words required.
	SeedWords int

	// Description is a short human-readable description.
	Description string

	create func(name string, words []uint64) Generator
}

// seed128 returns the 128-bit seed formed from the first one or two words.
func seed128(words []uint64) uint128.Uint128 {
	if len(words) == 1 {
		return uint128.From64(words[0])
	}
	return uint128.New(words[0], words[1])
}

// descriptors houses all registered generators.
var descriptors = []Descriptor{{
	Name:        "xorshift32",
	Family:      "xorshift",
	Width:       32,
	SeedWords:   1,
	Description: "32-bit xorshift",
	create: func(name string, w []uint64) Generator {
		return wrap[uint32](name, 32, xorshift.NewXorshift32(uint32(w[0])))
	},
}, {
	Name:        "xorshift64",
	Family:      "xorshift",
	Width:       64,
	SeedWords:   1,
	Description: "64-bit xorshift",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, xorshift.NewXorshift64(w[0]))
	},
}, {
	Name:        "xorshift128",
	Family:      "xorshift",
	Width:       128,
	SeedWords:   1,
	Description: "128-bit xorshift over four 32-bit words",
	create: func(name string, w []uint64) Generator {
		return wrap[uint128.Uint128](name, 128,
			xorshift.NewXorshift128(seed128(w)))
	},
}, {
	Name:        "xorshift64star",
	Family:      "xorshift",
	Width:       64,
	SeedWords:   1,
	Description: "64-bit xorshift with multiplicative output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, xorshift.NewXorshift64Star(w[0]))
	},
}, {
	Name:        "xorshift1024star",
	Family:      "xorshift",
	Width:       64,
	SeedWords:   16,
	Description: "1024-bit xorshift ring with multiplicative output",
	create: func(name string, w []uint64) Generator {
		var seed [16]uint64
		copy(seed[:], w)
		return wrap[uint64](name, 64, xorshift.NewXorshift1024Star(seed))
	},
}, {
	Name:        "pcg-xsh-rr-64-32",
	Family:      "pcg",
	Width:       32,
	SeedWords:   1,
	Description: "PCG 64-bit LCG state, XSH-RR output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint32](name, 32, pcg.NewXshRr6432(w[0]))
	},
}, {
	Name:        "pcg-xsh-rr-64-32-mcg",
	Family:      "pcg",
	Width:       32,
	SeedWords:   1,
	Description: "PCG 64-bit MCG state, XSH-RR output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint32](name, 32, pcg.NewXshRr6432Mcg(w[0]))
	},
}, {
	Name:        "pcg-xsh-rs-64-32",
	Family:      "pcg",
	Width:       32,
	SeedWords:   1,
	Description: "PCG 64-bit LCG state, XSH-RS output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint32](name, 32, pcg.NewXshRs6432(w[0]))
	},
}, {
	Name:        "pcg-xsh-rs-64-32-mcg",
	Family:      "pcg",
	Width:       32,
	SeedWords:   1,
	Description: "PCG 64-bit MCG state, XSH-RS output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint32](name, 32, pcg.NewXshRs6432Mcg(w[0]))
	},
}, {
	Name:        "pcg-xsl-rr-128-64",
	Family:      "pcg",
	Width:       64,
	SeedWords:   1,
	Description: "PCG 128-bit LCG state, XSL-RR output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, pcg.NewXslRr12864(seed128(w)))
	},
}, {
	Name:        "pcg-xsl-rr-128-64-mcg",
	Family:      "pcg",
	Width:       64,
	SeedWords:   1,
	Description: "PCG 128-bit MCG state, XSL-RR output",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, pcg.NewXslRr12864Mcg(seed128(w)))
	},
}, {
	Name:        "mt64",
	Family:      "mt64",
	Width:       64,
	SeedWords:   1,
	Description: "64-bit Mersenne Twister (MT19937-64)",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, mt64.NewFromSlice(w))
	},
}, {
	Name:        "mt64-compat",
	Family:      "mt64",
	Width:       64,
	SeedWords:   1,
	Description: "64-bit Mersenne Twister, legacy compatible constants",
	create: func(name string, w []uint64) Generator {
		return wrap[uint64](name, 64, mt64.NewCompatFromSlice(w))
	},
}}

// registry maps generator names to their descriptors.
var registry = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(descriptors))
	for i := range descriptors {
		m[descriptors[i].Name] = &descriptors[i]
	}
	return m
}()

// Names returns the names of all registered generators in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the descriptor of the named generator and whether or not it
// is registered.
func Lookup(name string) (Descriptor, bool) {
	d, ok := registry[name]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// New returns the named generator seeded with the provided words.  See the
// package documentation for how the words are mapped onto each generator's
// seed.
func New(name string, words []uint64) (Generator, error) {
	d, ok := registry[name]
	if !ok {
		str := fmt.Sprintf("unknown generator %q", name)
		return nil, makeError(ErrUnknownGenerator, str)
	}
	if len(words) == 0 {
		str := fmt.Sprintf("generator %q requires a seed", name)
		return nil, makeError(ErrMissingSeed, str)
	}
	if len(words) < d.SeedWords {
		str := fmt.Sprintf("generator %q requires %d seed words, got %d",
			name, d.SeedWords, len(words))
		return nil, makeError(ErrSeedLength, str)
	}

	log.Debugf("Creating %s generator from %d seed words", name, len(words))
	return d.create(name, words), nil
}
