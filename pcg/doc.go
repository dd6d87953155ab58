// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package pcg implements six variants of the permuted congruential generator
family.

Each generator advances a linear congruential state and emits a permutation of
the state as it was before the advance.  The variants differ in state width,
in whether the advance adds an increment (LCG) or omits it (MCG), and in the
output permutation:

	Type           State    Advance  Output
	XshRr6432      64-bit   LCG      32-bit XSH-RR
	XshRr6432Mcg   64-bit   MCG      32-bit XSH-RR
	XshRs6432      64-bit   LCG      32-bit XSH-RS
	XshRs6432Mcg   64-bit   MCG      32-bit XSH-RS
	XslRr12864     128-bit  LCG      64-bit XSL-RR
	XslRr12864Mcg  128-bit  MCG      64-bit XSL-RR

The multipliers and increments are fixed for the process and shared by every
instance of a given width.  The seed is used verbatim as the initial state, so
the first output of any generator is the permutation of its seed.  This makes
it possible to compute the first output by hand with the exported XshRr,
XshRs, and XslRr functions.

The MCG variants have a reduced period and a seed of zero is a fixed point for
them.  The generators are not safe for concurrent access and are not suitable
for cryptographic use.
*/
package pcg
