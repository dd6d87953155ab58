// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uint128 implements a fixed-width unsigned 128-bit integer.

The generators in this module need 128-bit registers for the xorshift128
output word and for the state of the 128-bit PCG variants.  Go has no native
128-bit type, so this package provides a small two-word value type with the
wrapping arithmetic those generators require.

All operations are performed modulo 2^128, so overflow wraps around exactly as
it does for the native unsigned integer types.

Conversion to the uint256 package is provided for formatting and for callers
that need wider arithmetic.
*/
package uint128
