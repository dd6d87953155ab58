// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint128

import (
	"fmt"
	"math/bits"

	"github.com/decred/dcrd/math/uint256"
)

// Uint128 is an unsigned 128-bit integer.  All arithmetic is performed modulo
// 2^128.
//
// Unlike the uint256 package, values are immutable and every operation returns
// a new value.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// New returns the 128-bit value with the given high and low 64-bit words.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 returns the 128-bit value of the provided uint64.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero returns whether or not the value is zero.
func (n Uint128) IsZero() bool {
	return n.Hi == 0 && n.Lo == 0
}

// Eq returns whether or not the two values are equal.
func (n Uint128) Eq(n2 Uint128) bool {
	return n == n2
}

// Cmp compares the two values and returns -1 when n < n2, 0 when they are
// equal, and 1 when n > n2.
func (n Uint128) Cmp(n2 Uint128) int {
	switch {
	case n.Hi < n2.Hi:
		return -1
	case n.Hi > n2.Hi:
		return 1
	case n.Lo < n2.Lo:
		return -1
	case n.Lo > n2.Lo:
		return 1
	}
	return 0
}

// Uint64 returns the low-order 64 bits of the value.
func (n Uint128) Uint64() uint64 {
	return n.Lo
}

// Uint32 returns the low-order 32 bits of the value.
func (n Uint128) Uint32() uint32 {
	return uint32(n.Lo)
}

// Add returns n + n2 modulo 2^128.
func (n Uint128) Add(n2 Uint128) Uint128 {
	lo, carry := bits.Add64(n.Lo, n2.Lo, 0)
	hi, _ := bits.Add64(n.Hi, n2.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns n * n2 modulo 2^128.
func (n Uint128) Mul(n2 Uint128) Uint128 {
	// Only the low 128 bits of the full 256-bit product are kept, so the
	// high*high term never contributes and the cross terms only contribute
	// their low halves to the upper word.
	hi, lo := bits.Mul64(n.Lo, n2.Lo)
	hi += n.Hi*n2.Lo + n.Lo*n2.Hi
	return Uint128{Hi: hi, Lo: lo}
}

// Xor returns the bitwise exclusive or of the two values.
func (n Uint128) Xor(n2 Uint128) Uint128 {
	return Uint128{Hi: n.Hi ^ n2.Hi, Lo: n.Lo ^ n2.Lo}
}

// Or returns the bitwise or of the two values.
func (n Uint128) Or(n2 Uint128) Uint128 {
	return Uint128{Hi: n.Hi | n2.Hi, Lo: n.Lo | n2.Lo}
}

// And returns the bitwise and of the two values.
func (n Uint128) And(n2 Uint128) Uint128 {
	return Uint128{Hi: n.Hi & n2.Hi, Lo: n.Lo & n2.Lo}
}

// Lsh returns the value shifted left by the given number of bits.  Shifts of
// 128 bits or more result in zero.
func (n Uint128) Lsh(s uint) Uint128 {
	switch {
	case s >= 128:
		return Uint128{}
	case s >= 64:
		return Uint128{Hi: n.Lo << (s - 64)}
	case s == 0:
		return n
	}
	return Uint128{Hi: n.Hi<<s | n.Lo>>(64-s), Lo: n.Lo << s}
}

// Rsh returns the value shifted right by the given number of bits.  Shifts of
// 128 bits or more result in zero.
func (n Uint128) Rsh(s uint) Uint128 {
	switch {
	case s >= 128:
		return Uint128{}
	case s >= 64:
		return Uint128{Lo: n.Hi >> (s - 64)}
	case s == 0:
		return n
	}
	return Uint128{Hi: n.Hi >> s, Lo: n.Lo>>s | n.Hi<<(64-s)}
}

// Uint256 returns the value widened to a uint256.
func (n Uint128) Uint256() *uint256.Uint256 {
	v := new(uint256.Uint256).SetUint64(n.Hi)
	v.Lsh(64)
	return v.Add(new(uint256.Uint256).SetUint64(n.Lo))
}

// String returns the value as a base 10 string.
func (n Uint128) String() string {
	return n.Uint256().Text(uint256.OutputBaseDecimal)
}

// Hex returns the value as a zero-padded 32 digit hexadecimal string.
func (n Uint128) Hex() string {
	return fmt.Sprintf("%016x%016x", n.Hi, n.Lo)
}
