// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Rndgen writes values sampled from the rnd generators to stdout.
//
// Output is reproducible when a seed is given:
//
//	rndgen --generator=xoshiro256 --seed=42 --count=5 --format=hex
//
// and entropy seeded otherwise.  The raw format writes 8 little-endian bytes
// per value, which is suitable for piping into statistical test suites such
// as PractRand:
//
//	rndgen --format=raw --count=0 | RNG_test stdin64
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"

	"github.com/decred/rnd"
	"github.com/decred/rnd/internal/version"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// checkInterval is the number of values written between checks for an
// interrupt.
const checkInterval = 1024

// generator describes the constructors of a selectable generator.
type generator struct {
	fromSeed func(int64) rnd.Source
	entropy  func() (rnd.Source, error)
}

// generators maps generator names to their constructors.
var generators = map[string]generator{
	"stc64": {
		fromSeed: func(s int64) rnd.Source { return rnd.NewStc64FromSeed(s) },
		entropy: func() (rnd.Source, error) {
			g, err := rnd.NewStc64()
			if err != nil {
				return nil, err
			}
			return g, nil
		},
	},
	"xoshiro256": {
		fromSeed: func(s int64) rnd.Source {
			return rnd.NewXoshiro256StarStarFromSeed(s)
		},
		entropy: func() (rnd.Source, error) {
			g, err := rnd.NewXoshiro256StarStar()
			if err != nil {
				return nil, err
			}
			return g, nil
		},
	},
	"l64x1024mix": {
		fromSeed: func(s int64) rnd.Source {
			return rnd.NewL64X1024MixFromSeed(s)
		},
		entropy: func() (rnd.Source, error) {
			g, err := rnd.NewL64X1024Mix()
			if err != nil {
				return nil, err
			}
			return g, nil
		},
	},
}

// newSource returns the generator selected by the config.
func newSource(cfg *config) (rnd.Source, error) {
	gen, ok := generators[cfg.Generator]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
	if cfg.seeded {
		rndgLog.Debugf("Using %s with seed %d", cfg.Generator, cfg.seed)
		return gen.fromSeed(cfg.seed), nil
	}
	rndgLog.Debugf("Using entropy seeded %s", cfg.Generator)
	return gen.entropy()
}

// formatter appends the next value in a specific format to buf.
type formatter func(buf []byte, r *rnd.Rand) []byte

// newFormatter returns the formatter for the configured output format.
func newFormatter(cfg *config) formatter {
	switch cfg.Format {
	case "uint":
		return func(buf []byte, r *rnd.Rand) []byte {
			return append(strconv.AppendUint(buf, r.Uint64(), 10), '\n')
		}

	case "hex":
		return func(buf []byte, r *rnd.Rand) []byte {
			return fmt.Appendf(buf, "%016x\n", r.Uint64())
		}

	case "float":
		return func(buf []byte, r *rnd.Rand) []byte {
			return append(strconv.AppendFloat(buf, r.Float64(), 'g', -1, 64), '\n')
		}

	case "bool":
		return func(buf []byte, r *rnd.Rand) []byte {
			return append(strconv.AppendBool(buf, r.Bool()), '\n')
		}

	case "gauss":
		// Normal values are generated in pairs, so the second value of each
		// pair is held for the next call.
		var next float64
		var havePending bool
		return func(buf []byte, r *rnd.Rand) []byte {
			v := next
			if havePending {
				havePending = false
			} else {
				v, next = r.NormFloat64Pair()
				havePending = true
			}
			return append(strconv.AppendFloat(buf, v, 'g', -1, 64), '\n')
		}

	case "raw":
		return func(buf []byte, r *rnd.Rand) []byte {
			return binary.LittleEndian.AppendUint64(buf, r.Uint64())
		}
	}

	if cfg.Bound > 0 {
		bound := cfg.Bound
		return func(buf []byte, r *rnd.Rand) []byte {
			return append(strconv.AppendInt(buf, r.Int64N(bound), 10), '\n')
		}
	}
	return func(buf []byte, r *rnd.Rand) []byte {
		return append(strconv.AppendInt(buf, r.Int64(), 10), '\n')
	}
}

// run writes the configured values to w.  A count of zero writes until the
// context is canceled or w returns an error.  A closed pipe ends output
// without error since the reader has consumed everything it wants.
func run(ctx context.Context, cfg *config, w io.Writer) error {
	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	r := rnd.New(src)
	format := newFormatter(cfg)

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	var written int64
	for cfg.Count == 0 || written < cfg.Count {
		if written%checkInterval == 0 && shutdownRequested(ctx) {
			break
		}
		buf = format(buf[:0], r)
		if _, err := bw.Write(buf); err != nil {
			return outputDone(err, written)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return outputDone(err, written)
	}
	rndgLog.Debugf("Wrote %d values", written)
	return nil
}

// outputDone filters a write error, treating a reader that closed the pipe as
// the normal end of output.
func outputDone(err error, written int64) error {
	if errors.Is(err, syscall.EPIPE) {
		rndgLog.Debugf("Output closed by reader after %d values", written)
		return nil
	}
	return err
}

// rndgenMain is the real main function for rndgen.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func rndgenMain() int {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Use rndgen -h to show usage")
		return 1
	}

	if cfg.ShowVersion {
		fmt.Printf("rndgen version %s\n", version.String())
		return 0
	}
	if cfg.SampleConfig {
		fmt.Print(sampleConfig)
		return 0
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer closeLogRotator()
	}
	setLogLevels(cfg.logLevel)

	if cfg.Format == "raw" && !cfg.Force && term.IsTerminal(int(os.Stdout.Fd())) {
		rndgLog.Errorf("Refusing to write raw output to a terminal; use " +
			"--force to override")
		return 1
	}

	ctx := shutdownListener()
	if err := run(ctx, cfg, os.Stdout); err != nil {
		rndgLog.Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(rndgenMain())
}
