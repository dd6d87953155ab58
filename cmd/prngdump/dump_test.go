// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/decred/slog"
	"github.com/decred/tinyprng"
	"github.com/decred/tinyprng/internal/progresslog"
	"github.com/decred/tinyprng/seed"
)

// newTestDumper returns a dumper for a xorshift32 generator seeded with 1337.
func newTestDumper(t *testing.T, format outputFormat) *dumper {
	t.Helper()
	gen, err := tinyprng.New("xorshift32", []uint64{1337})
	if err != nil {
		t.Fatalf("unexpected error creating generator: %v", err)
	}
	return &dumper{gen: gen, format: format, lo: defaultLo, hi: defaultHi}
}

// TestDumpFormats ensures each output format renders the expected values.
func TestDumpFormats(t *testing.T) {
	tests := []struct {
		name   string
		format outputFormat
		want   []string
	}{{
		name:   "uint",
		format: formatUint,
		want:   []string{"339970090", "3449400233", "3849456703"},
	}, {
		name:   "hex",
		format: formatHex,
		want:   []string{"1443882a", "cd99aba9", "e5720c3f"},
	}, {
		name:   "real",
		format: formatReal,
		want: []string{"0.0791554548961938", "0.8031260766561902",
			"0.8962714820858724"},
	}, {
		name:   "closed",
		format: formatClosed,
		want: []string{"0.07915545487776399", "0.8031260764691979",
			"0.8962714818771929"},
	}, {
		name:   "range",
		format: formatRange,
		want: []string{"-0.8416890902076124", "0.6062521533123804",
			"0.7925429641717447"},
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		d := newTestDumper(t, test.format)
		var buf bytes.Buffer
		n, err := d.run(context.Background(), &buf, uint64(len(test.want)))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if n != uint64(len(test.want)) {
			t.Errorf("%s: wrote %d values, want %d", test.name, n,
				len(test.want))
			continue
		}
		want := strings.Join(test.want, "\n") + "\n"
		if got := buf.String(); got != want {
			t.Errorf("%s: unexpected output -- got %q, want %q", test.name,
				got, want)
		}
	}
}

// TestDumpWideHex ensures 64-bit and 128-bit values are zero padded to their
// full width.
func TestDumpWideHex(t *testing.T) {
	tests := []struct {
		name  string
		gen   string
		words []uint64
		want  string
	}{{
		name:  "xorshift64",
		gen:   "xorshift64",
		words: []uint64{1337},
		want:  "0000014cd6406b73\n",
	}, {
		name:  "xorshift128",
		gen:   "xorshift128",
		words: []uint64{1337},
		want:  "0029e4f4000000000000000000000000\n",
	}}

	for _, test := range tests {
		gen, err := tinyprng.New(test.gen, test.words)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		d := dumper{gen: gen, format: formatHex}
		var buf bytes.Buffer
		if _, err := d.run(context.Background(), &buf, 1); err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if got := buf.String(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

// TestDumpFingerprint ensures the fingerprint covers exactly the raw values
// that were written.
func TestDumpFingerprint(t *testing.T) {
	d := newTestDumper(t, formatHex)
	d.fingerprint = seed.NewFingerprint()
	var buf bytes.Buffer
	if _, err := d.run(context.Background(), &buf, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := seed.NewFingerprint()
	for _, v := range []uint32{0x1443882a, 0xcd99aba9, 0xe5720c3f} {
		want.AddUint32(v)
	}
	if d.fingerprint.Count() != 3 {
		t.Fatalf("unexpected count %d", d.fingerprint.Count())
	}
	if d.fingerprint.Sum() != want.Sum() {
		t.Fatalf("unexpected fingerprint -- got %s, want %s", d.fingerprint,
			want)
	}
}

// cancelWriter cancels a context once a given number of writes succeed.
type cancelWriter struct {
	writes int
	after  int
	cancel context.CancelFunc
}

func (w *cancelWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes == w.after {
		w.cancel()
	}
	return len(p), nil
}

// TestDumpCancel ensures cancellation stops an unbounded dump between values.
func TestDumpCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := newTestDumper(t, formatUint)
	w := &cancelWriter{after: 5, cancel: cancel}
	n, err := d.run(ctx, w, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 || w.writes != 5 {
		t.Fatalf("unexpected number of values -- got %d (%d writes), want 5",
			n, w.writes)
	}

	// An already canceled context writes nothing.
	n, err = d.run(ctx, w, 10)
	if err != nil || n != 0 {
		t.Fatalf("unexpected result -- got %d values, err %v", n, err)
	}
}

// errWriter fails every write.
type errWriter struct{}

var errTestWrite = errors.New("write failed")

func (errWriter) Write(p []byte) (int, error) { return 0, errTestWrite }

// TestDumpWriteError ensures write failures are returned.
func TestDumpWriteError(t *testing.T) {
	d := newTestDumper(t, formatUint)
	n, err := d.run(context.Background(), errWriter{}, 3)
	if !errors.Is(err, errTestWrite) {
		t.Fatalf("unexpected error -- got %v, want %v", err, errTestWrite)
	}
	if n != 0 {
		t.Fatalf("unexpected number of values %d", n)
	}
}

// TestDumpProgress ensures every written value is counted by the progress
// logger including a partial final batch.
func TestDumpProgress(t *testing.T) {
	const count = progressBatch*2 + 7
	d := newTestDumper(t, formatUint)
	d.progress = progresslog.New("Wrote", slog.Disabled)
	var buf bytes.Buffer
	if _, err := d.run(context.Background(), &buf, count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.progress.Total(); got != count {
		t.Fatalf("unexpected progress total -- got %d, want %d", got, count)
	}
}

// TestWriteGeneratorList ensures the generator list includes every
// registered generator.
func TestWriteGeneratorList(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGeneratorList(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	names := tinyprng.Names()
	if len(lines) != len(names)+1 {
		t.Fatalf("unexpected number of lines %d", len(lines))
	}
	for i, name := range names {
		if !strings.HasPrefix(lines[i+1], name+" ") {
			t.Errorf("line %d: %q does not start with %q", i+1, lines[i+1],
				name)
		}
	}
}

// TestFormatWords ensures seed words are rendered so they can be passed back
// via --seed.
func TestFormatWords(t *testing.T) {
	got := formatWords([]uint64{0, 0x1818729182367349})
	if want := "0x0,0x1818729182367349"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	for _, s := range strings.Split(got, ",") {
		if _, err := parseSeedWord(s); err != nil {
			t.Fatalf("unexpected error parsing %q: %v", s, err)
		}
	}
}
