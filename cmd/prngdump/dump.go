// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/decred/tinyprng"
	"github.com/decred/tinyprng/internal/progresslog"
	"github.com/decred/tinyprng/seed"
)

// progressBatch is the number of values written between progress updates.
const progressBatch = 1 << 12

// dumper writes generator output in a configured format.
type dumper struct {
	gen    tinyprng.Generator
	format outputFormat
	lo, hi float64

	// fingerprint and progress are optional.
	fingerprint *seed.Fingerprint
	progress    *progresslog.Logger
}

// appendRaw appends the next raw output of the generator to buf as either a
// decimal or a zero-padded hexadecimal integer.
func (d *dumper) appendRaw(buf []byte) []byte {
	v := d.gen.Next()
	width := d.gen.Width()
	if d.fingerprint != nil {
		switch width {
		case 32:
			d.fingerprint.AddUint32(v.Uint32())
		case 64:
			d.fingerprint.AddUint64(v.Uint64())
		default:
			d.fingerprint.AddUint128(v)
		}
	}

	if d.format == formatHex {
		switch width {
		case 32:
			return fmt.Appendf(buf, "%08x", v.Uint32())
		case 64:
			return fmt.Appendf(buf, "%016x", v.Uint64())
		}
		return append(buf, v.Hex()...)
	}
	if width == 128 {
		return append(buf, v.String()...)
	}
	return strconv.AppendUint(buf, v.Uint64(), 10)
}

// appendReal appends the next real output of the generator to buf using the
// shortest representation that round trips.
func (d *dumper) appendReal(buf []byte) []byte {
	var r float64
	switch d.format {
	case formatReal:
		r = d.gen.Real()
	case formatClosed:
		r = d.gen.RealClosed()
	default:
		r = d.gen.RealInRange(d.lo, d.hi)
	}
	if d.fingerprint != nil {
		d.fingerprint.AddFloat64(r)
	}
	return strconv.AppendFloat(buf, r, 'g', -1, 64)
}

// appendNext appends the next value along with a trailing newline to buf.
func (d *dumper) appendNext(buf []byte) []byte {
	switch d.format {
	case formatUint, formatHex:
		buf = d.appendRaw(buf)
	default:
		buf = d.appendReal(buf)
	}
	return append(buf, '\n')
}

// run writes count values to w, one per line.  A count of zero writes values
// until the context is canceled.  Cancellation is checked between values and
// is not an error.  It returns the number of values written.
func (d *dumper) run(ctx context.Context, w io.Writer, count uint64) (uint64, error) {
	var written, pending uint64
	buf := make([]byte, 0, 64)
	for count == 0 || written < count {
		if shutdownRequested(ctx) {
			break
		}

		buf = d.appendNext(buf[:0])
		if _, err := w.Write(buf); err != nil {
			return written, fmt.Errorf("failed to write value %d: %w",
				written, err)
		}
		written++

		if d.progress != nil {
			pending++
			if pending == progressBatch {
				d.progress.LogProgress(pending, false)
				pending = 0
			}
		}
	}
	if d.progress != nil && pending > 0 {
		d.progress.LogProgress(pending, false)
	}

	return written, nil
}
