// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package seed provides seed material for the generators in this module and a
digest for recording the streams they produce.

Random seeds are drawn from a cryptographically secure userspace generator
that is periodically reseeded from the operating system.  They are suitable
when a run does not need to be reproduced.

FromPhrase derives any number of seed words from a passphrase using the BLAKE3
extendable output function, so a memorable string reproduces the same stream
on every platform.

Fingerprint is a rolling BLAKE-256 digest of emitted values.  Two runs that
emit the same values in the same order with the same widths produce the same
fingerprint, which makes it convenient to compare long streams without storing
them.
*/
package seed
