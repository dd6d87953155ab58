// Copyright (c) 2020-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging of long running value streams.

## Feature Overview

- Maintains the number of values produced between each logging interval
- Maintains the total number of values produced
- Logs the interval count, rate, and total every 10 seconds
- Logs any outstanding data immediately when forced
*/
package progresslog
