// Copyright (c) 2017-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// samplePrngdumpConf is a string containing the commented example config for
// prngdump.
//
//go:embed sample-prngdump.conf
var samplePrngdumpConf string

// Prngdump returns a string containing the commented example config for
// prngdump.
func Prngdump() string {
	return samplePrngdumpConf
}
