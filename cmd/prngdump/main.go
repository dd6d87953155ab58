// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/decred/tinyprng"
	"github.com/decred/tinyprng/internal/progresslog"
	"github.com/decred/tinyprng/internal/version"
	"github.com/decred/tinyprng/sampleconfig"
	"github.com/decred/tinyprng/seed"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// writeGeneratorList writes a table of the registered generators to w.
func writeGeneratorList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-18s %-9s %5s %5s  %s\n", "NAME", "FAMILY", "WIDTH",
		"WORDS", "DESCRIPTION")
	for _, name := range tinyprng.Names() {
		d, _ := tinyprng.Lookup(name)
		fmt.Fprintf(bw, "%-18s %-9s %5d %5d  %s\n", d.Name, d.Family,
			d.Width, d.SeedWords, d.Description)
	}
	return bw.Flush()
}

// formatWords returns the seed words as a comma separated list of
// hexadecimal values suitable for passing back via --seed.
func formatWords(words []uint64) string {
	strs := make([]string, 0, len(words))
	for _, w := range words {
		strs = append(strs, fmt.Sprintf("%#x", w))
	}
	return strings.Join(strs, ",")
}

// prngdumpMain is the real main function for prngdump.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func prngdumpMain(cfg *config) error {
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}
	if cfg.SampleConfig {
		_, err := io.WriteString(os.Stdout, sampleconfig.Prngdump())
		return err
	}
	if cfg.List {
		return writeGeneratorList(os.Stdout)
	}

	if cfg.LogFile != "" {
		err := initLogRotator(cfg.LogFile, cfg.MaxLogSize, cfg.MaxLogFiles)
		if err != nil {
			return err
		}
		defer logRotator.Close()
	}

	// Enable CPU profiling if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("unable to create cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("unable to start cpu profile: %w", err)
		}
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	gen, err := tinyprng.New(cfg.Generator, cfg.words)
	if err != nil {
		return err
	}
	dumpLog.Debugf("Version %s", version.String())
	switch cfg.source {
	case seedRandom, seedPhrase:
		dumpLog.Infof("Seeding %s from %s with words %s", gen.Name(),
			cfg.source, formatWords(cfg.words))
	default:
		dumpLog.Debugf("Seeding %s from %s with words %s", gen.Name(),
			cfg.source, formatWords(cfg.words))
	}

	d := dumper{
		gen:    gen,
		format: cfg.format,
		lo:     cfg.Lo,
		hi:     cfg.Hi,
	}
	if cfg.Fingerprint {
		d.fingerprint = seed.NewFingerprint()
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		d.progress = progresslog.New("Wrote", dumpLog)
	}

	ctx := shutdownListener()
	out := bufio.NewWriter(os.Stdout)
	written, err := d.run(ctx, out, cfg.Count)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to flush output: %w", flushErr)
	}
	if err != nil {
		return err
	}
	if shutdownRequested(ctx) {
		dumpLog.Infof("Stopped after writing %d values", written)
	}

	if d.fingerprint != nil {
		fmt.Fprintf(os.Stderr, "fingerprint %s (%d values)\n",
			d.fingerprint, d.fingerprint.Count())
	}
	return nil
}

func main() {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		os.Exit(1)
	}

	if err := prngdumpMain(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
