// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultGenerator = "stc64"
	defaultFormat    = "int"
	defaultCount     = 10
	defaultLogLevel  = "info"
)

// generatorNames and formatNames are the valid values of the respective
// options in the order they are shown in help output.
var (
	generatorNames = []string{"stc64", "xoshiro256", "l64x1024mix"}
	formatNames    = []string{"int", "uint", "hex", "float", "bool", "gauss", "raw"}
)

// config defines the configuration options for rndgen.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile   string `short:"C" long:"configfile" env:"RNDGEN_CONFIGFILE" description:"Path to an optional configuration file"`
	SampleConfig bool   `long:"sampleconfig" description:"Write a sample configuration file to stdout and exit"`
	Generator    string `short:"g" long:"generator" env:"RNDGEN_GENERATOR" description:"Generator to sample {stc64, xoshiro256, l64x1024mix}"`
	Seed         string `short:"s" long:"seed" env:"RNDGEN_SEED" description:"64-bit seed for reproducible output; entropy seeded when unset"`
	Count        int64  `short:"n" long:"count" description:"Number of values to write; 0 writes until interrupted"`
	Format       string `short:"f" long:"format" description:"Output format {int, uint, hex, float, bool, gauss, raw}"`
	Bound        int64  `short:"b" long:"bound" description:"Exclusive upper bound of int output; 0 for the full int64 range"`
	Force        bool   `long:"force" description:"Write raw output even when stdout is a terminal"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile      string `long:"logfile" env:"RNDGEN_LOGFILE" description:"Also write log output to this file, rotating it at 10 MiB"`

	// The following fields are set during validation.
	seed     int64
	seeded   bool
	logLevel slog.Level
}

// contains returns whether s is one of the provided values.
func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// validate checks the option values and fills in the derived fields.
func (cfg *config) validate() error {
	cfg.Generator = strings.ToLower(cfg.Generator)
	if !contains(generatorNames, cfg.Generator) {
		return fmt.Errorf("unknown generator %q: must be one of %s",
			cfg.Generator, strings.Join(generatorNames, ", "))
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if !contains(formatNames, cfg.Format) {
		return fmt.Errorf("unknown format %q: must be one of %s",
			cfg.Format, strings.Join(formatNames, ", "))
	}

	if cfg.Count < 0 {
		return fmt.Errorf("count %d must not be negative", cfg.Count)
	}

	switch {
	case cfg.Bound < 0:
		return fmt.Errorf("bound %d must not be negative", cfg.Bound)
	case cfg.Bound != 0 && cfg.Format != "int":
		return fmt.Errorf("bound may only be used with the int format, "+
			"not %q", cfg.Format)
	}

	if cfg.Seed != "" {
		s, err := strconv.ParseInt(cfg.Seed, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", cfg.Seed, err)
		}
		cfg.seed, cfg.seeded = s, true
	}

	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	cfg.logLevel = level

	return nil
}

// loadConfig initializes and parses the config using an optional config file
// and the provided command line arguments.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for the version flag and an
//     alternative config file
//  3. Load the configuration file when one is specified, overwriting the
//     defaults with any specified options
//  4. Parse the command line options and overwrite/add any specified options
//
// The returned error wraps a *flags.Error with type flags.ErrHelp when help
// output was requested.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Generator:  defaultGenerator,
		Format:     defaultFormat,
		Count:      defaultCount,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, err
	}
	if preCfg.ShowVersion || preCfg.SampleConfig {
		return &preCfg, nil
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		path := filepath.Clean(preCfg.ConfigFile)
		err := flags.NewIniParser(parser).ParseFile(path)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return nil, fmt.Errorf("unable to open config file: %w", err)
			}
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s",
			strings.Join(remainingArgs, " "))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
