// Copyright (c) 2016-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/tinyprng"
	"github.com/decred/tinyprng/seed"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

type config struct {
	Generator string `short:"g" description:"generator the words are intended for (sets the default word count)"`
	Words     int    `short:"n" description:"number of seed words; defaults to the number the generator requires"`
	Phrase    string `short:"p" description:"derive the words from a passphrase instead of system entropy"`
	Flags     bool   `short:"f" description:"print the words as prngdump --seed flags on a single line"`
}

// wordCount returns the number of words to generate for the config.
func wordCount(cfg *config) (int, error) {
	if cfg.Words < 0 {
		return 0, fmt.Errorf("invalid word count %d", cfg.Words)
	}
	if cfg.Words > 0 {
		return cfg.Words, nil
	}
	d, ok := tinyprng.Lookup(cfg.Generator)
	if !ok {
		return 0, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
	return d.SeedWords, nil
}

// writeWords writes the words to w either one per line or as a single line of
// --seed flags.
func writeWords(w io.Writer, words []uint64, asFlags bool) error {
	for i, word := range words {
		var err error
		switch {
		case !asFlags:
			_, err = fmt.Fprintf(w, "%#016x\n", word)
		case i == 0:
			_, err = fmt.Fprintf(w, "--seed=%#016x", word)
		default:
			_, err = fmt.Fprintf(w, " --seed=%#016x", word)
		}
		if err != nil {
			return err
		}
	}
	if asFlags && len(words) > 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func main() {
	cfg := config{
		Generator: "mt64",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) != 0 {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	n, err := wordCount(&cfg)
	if err != nil {
		fatalf("%v\n", err)
	}

	var words []uint64
	if cfg.Phrase != "" {
		words = seed.FromPhrase(cfg.Phrase, n)
	} else {
		words = seed.RandomWords(n)
	}
	if err := writeWords(os.Stdout, words, cfg.Flags); err != nil {
		fatalf("unable to write seed words: %v\n", err)
	}
}
