// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/tinyprng"
	"github.com/decred/tinyprng/mt64"
	"github.com/decred/tinyprng/seed"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName = "prngdump"

	defaultGenerator   = "mt64"
	defaultCount       = 10
	defaultFormat      = formatUint
	defaultLo          = -1
	defaultHi          = 1
	defaultLogLevel    = "info"
	defaultMaxLogSize  = 10
	defaultMaxLogFiles = 3

	// minDerivedWords is the minimum number of words derived from a phrase or
	// from entropy so that 128-bit generators receive a full seed.
	minDerivedWords = 2
)

// outputFormat identifies how each generated value is printed.
type outputFormat string

const (
	formatUint   outputFormat = "uint"
	formatHex    outputFormat = "hex"
	formatReal   outputFormat = "real"
	formatClosed outputFormat = "closed"
	formatRange  outputFormat = "range"
)

// validFormats houses all supported output formats.
var validFormats = map[outputFormat]struct{}{
	formatUint:   {},
	formatHex:    {},
	formatReal:   {},
	formatClosed: {},
	formatRange:  {},
}

// seedSource identifies where the seed words came from.
type seedSource string

const (
	seedDefault seedSource = "default"
	seedFlags   seedSource = "flags"
	seedPhrase  seedSource = "phrase"
	seedRandom  seedSource = "random"
)

// config defines the configuration options for prngdump.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file" no-ini:"true"`
	SampleConfig bool   `long:"sampleconfig" description:"Print the commented sample config and exit" no-ini:"true"`
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit" no-ini:"true"`
	List         bool   `short:"l" long:"list" description:"List the available generators and exit" no-ini:"true"`

	// Generator selection and seeding.
	Generator string   `short:"g" long:"generator" description:"Generator to use (see --list)"`
	Seeds     []string `short:"s" long:"seed" description:"Seed word as a decimal or 0x-prefixed hex uint64; may be specified multiple times"`
	Phrase    string   `long:"phrase" description:"Derive the seed words from a passphrase"`
	Random    bool     `long:"random" description:"Seed from operating system entropy"`

	// Output.
	Count       uint64  `short:"n" long:"count" description:"Number of values to write; 0 writes until interrupted"`
	Format      string  `short:"f" long:"format" description:"Output format {uint, hex, real, closed, range}"`
	Lo          float64 `long:"lo" description:"Lower bound of the range format"`
	Hi          float64 `long:"hi" description:"Upper bound of the range format"`
	Fingerprint bool    `long:"fingerprint" description:"Print a BLAKE-256 fingerprint of the written values to stderr"`

	// Logging and debugging.
	LogFile     string `long:"logfile" description:"Also write log output to this file"`
	MaxLogSize  int64  `long:"maxlogsize" description:"Maximum size in MiB of the log file before it is rotated"`
	MaxLogFiles int    `long:"maxlogfiles" description:"Maximum number of rotated log files to keep"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	CPUProfile  string `long:"cpuprofile" description:"Write CPU profile to the specified file"`

	descriptor tinyprng.Descriptor
	format     outputFormat
	words      []uint64
	source     seedSource
}

// parseSeedWord parses a seed word given either in decimal or as hexadecimal
// with a 0x prefix.
func parseSeedWord(s string) (uint64, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed word %q: %w", s, err)
	}
	return v, nil
}

// derivedWordCount returns the number of seed words to derive for the
// provided generator when they are not given explicitly.
func derivedWordCount(d *tinyprng.Descriptor) int {
	if d.SeedWords > minDerivedWords {
		return d.SeedWords
	}
	return minDerivedWords
}

// resolveSeed determines the seed words for the selected generator from the
// configured seed source.  Exactly one source may be given.  When none is
// given, every required word is set to the default MT seed.
func (cfg *config) resolveSeed() error {
	var numSources int
	if len(cfg.Seeds) > 0 {
		numSources++
	}
	if cfg.Phrase != "" {
		numSources++
	}
	if cfg.Random {
		numSources++
	}
	if numSources > 1 {
		return errors.New("only one of --seed, --phrase, and --random may " +
			"be specified")
	}

	switch {
	case len(cfg.Seeds) > 0:
		cfg.words = make([]uint64, 0, len(cfg.Seeds))
		for _, s := range cfg.Seeds {
			v, err := parseSeedWord(s)
			if err != nil {
				return err
			}
			cfg.words = append(cfg.words, v)
		}
		cfg.source = seedFlags

	case cfg.Phrase != "":
		cfg.words = seed.FromPhrase(cfg.Phrase, derivedWordCount(&cfg.descriptor))
		cfg.source = seedPhrase

	case cfg.Random:
		cfg.words = seed.RandomWords(derivedWordCount(&cfg.descriptor))
		cfg.source = seedRandom

	default:
		cfg.words = make([]uint64, cfg.descriptor.SeedWords)
		for i := range cfg.words {
			cfg.words[i] = mt64.DefaultSeed
		}
		cfg.source = seedDefault
	}

	if len(cfg.words) < cfg.descriptor.SeedWords {
		return fmt.Errorf("generator %q requires %d seed words, got %d",
			cfg.descriptor.Name, cfg.descriptor.SeedWords, len(cfg.words))
	}
	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//  5. Validate the options and resolve the seed words
//
// The returned error is a go-flags error of type flags.ErrHelp when help was
// requested.  When the version, the sample config, or the generator list was
// requested the remaining options are not validated.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Generator:   defaultGenerator,
		Count:       defaultCount,
		Format:      string(defaultFormat),
		Lo:          defaultLo,
		Hi:          defaultHi,
		DebugLevel:  defaultLogLevel,
		MaxLogSize:  defaultMaxLogSize,
		MaxLogFiles: defaultMaxLogFiles,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or an early exit was specified.  Any errors aside from the help
	// message error can be ignored here since they will be caught by the
	// final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	preRemaining, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}
	if err == nil && (preCfg.ShowVersion || preCfg.List || preCfg.SampleConfig) {
		return &preCfg, preRemaining, nil
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return nil, nil, fmt.Errorf("supported subsystems %v",
			supportedSubsystems())
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	if len(remainingArgs) > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments %q",
			remainingArgs)
	}

	if cfg.MaxLogSize <= 0 {
		return nil, nil, fmt.Errorf("the maximum log size must be positive "+
			"-- got %d", cfg.MaxLogSize)
	}
	if cfg.MaxLogFiles < 0 {
		return nil, nil, fmt.Errorf("the maximum number of log files must "+
			"not be negative -- got %d", cfg.MaxLogFiles)
	}

	cfg.format = outputFormat(cfg.Format)
	if _, ok := validFormats[cfg.format]; !ok {
		return nil, nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}

	d, ok := tinyprng.Lookup(cfg.Generator)
	if !ok {
		return nil, nil, fmt.Errorf("unknown generator %q -- available "+
			"generators %v", cfg.Generator, tinyprng.Names())
	}
	cfg.descriptor = d

	if err := cfg.resolveSeed(); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
