// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

// TestLoadConfig ensures command line arguments are parsed and validated.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*config) bool
		wantErr bool
	}{{
		name: "defaults",
		args: nil,
		want: func(cfg *config) bool {
			return cfg.Generator == defaultGenerator &&
				cfg.Format == defaultFormat && cfg.Count == defaultCount &&
				!cfg.seeded && cfg.logLevel == slog.LevelInfo
		},
	}, {
		name: "all options",
		args: []string{"-g", "L64X1024Mix", "-s", "42", "-n", "0", "-f", "int",
			"-b", "6", "-d", "trace", "--force"},
		want: func(cfg *config) bool {
			return cfg.Generator == "l64x1024mix" && cfg.seeded &&
				cfg.seed == 42 && cfg.Count == 0 && cfg.Bound == 6 &&
				cfg.Force && cfg.logLevel == slog.LevelTrace
		},
	}, {
		name: "hex seed",
		args: []string{"--seed=0x10"},
		want: func(cfg *config) bool { return cfg.seeded && cfg.seed == 16 },
	}, {
		name: "negative seed",
		args: []string{"--seed=-5"},
		want: func(cfg *config) bool { return cfg.seeded && cfg.seed == -5 },
	}, {
		name: "version skips validation",
		args: []string{"-V", "--generator=unknown"},
		want: func(cfg *config) bool { return cfg.ShowVersion },
	}, {
		name:    "unknown generator",
		args:    []string{"--generator=mt19937"},
		wantErr: true,
	}, {
		name:    "unknown format",
		args:    []string{"--format=octal"},
		wantErr: true,
	}, {
		name:    "negative count",
		args:    []string{"--count=-1"},
		wantErr: true,
	}, {
		name:    "negative bound",
		args:    []string{"--bound=-1"},
		wantErr: true,
	}, {
		name:    "bound with float format",
		args:    []string{"--bound=10", "--format=float"},
		wantErr: true,
	}, {
		name:    "malformed seed",
		args:    []string{"--seed=forty-two"},
		wantErr: true,
	}, {
		name:    "invalid debug level",
		args:    []string{"--debuglevel=verbose"},
		wantErr: true,
	}, {
		name:    "unknown option",
		args:    []string{"--colour"},
		wantErr: true,
	}, {
		name:    "positional argument",
		args:    []string{"extra"},
		wantErr: true,
	}, {
		name:    "missing config file",
		args:    []string{"--configfile=" + filepath.Join(t.TempDir(), "nope.conf")},
		wantErr: true,
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		cfg, err := loadConfig(test.args)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got config %s", test.name,
					spew.Sdump(cfg))
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !test.want(cfg) {
			t.Errorf("%s: unexpected config %s", test.name, spew.Sdump(cfg))
		}
	}
}

// TestLoadConfigHelp ensures the help flag is reported as a flags.ErrHelp
// error.
func TestLoadConfigHelp(t *testing.T) {
	_, err := loadConfig([]string{"--help"})
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("got %v, want help error", err)
	}
}

// TestLoadConfigFile ensures options are read from a config file and that the
// command line takes precedence over it.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rndgen.conf")
	contents := "[Application Options]\ngenerator=l64x1024mix\ncount=3\nformat=hex\n"
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("unable to write config file: %v", err)
	}

	cfg, err := loadConfig([]string{"--configfile=" + path, "--count=5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator != "l64x1024mix" || cfg.Format != "hex" || cfg.Count != 5 {
		t.Fatalf("unexpected config %s", spew.Sdump(cfg))
	}

	// Invalid option values in the file are rejected.
	if err := os.WriteFile(path, []byte("[Application Options]\ncount=many\n"), 0600); err != nil {
		t.Fatalf("unable to write config file: %v", err)
	}
	if _, err := loadConfig([]string{"--configfile=" + path}); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

// TestLoadConfigEnv ensures options may be set via environment variables.
func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("RNDGEN_GENERATOR", "xoshiro256")
	t.Setenv("RNDGEN_SEED", "7")

	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator != "xoshiro256" || !cfg.seeded || cfg.seed != 7 {
		t.Fatalf("unexpected config %s", spew.Sdump(cfg))
	}
}

// TestSampleConfig ensures the sample config parses and mentions every
// configurable option.
func TestSampleConfig(t *testing.T) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.None)
	if err := flags.NewIniParser(parser).Parse(strings.NewReader(sampleConfig)); err != nil {
		t.Fatalf("unable to parse sample config: %v", err)
	}

	for _, opt := range []string{"generator", "seed", "count", "format",
		"bound", "force", "debuglevel", "logfile"} {

		if !strings.Contains(sampleConfig, "; "+opt+"=") {
			t.Errorf("sample config does not document %q", opt)
		}
	}
}
