// SPDX-License-Identifier: MIT

// Command bsput prices a ladder of European puts (and the matching calls)
// under Black–Scholes with a continuous dividend yield.
//
// Usage:
//
//	bsput [-config scenario.yaml] [-spots 55,56,57] [-strike 60] [-rate 0.01]
//	      [-yield 0.02] [-expiry 1] [-vol 0.05] [-backend batch] [-workers 4]
//	      [-places 5] [-plot puts.svg] [-csc] [-debug]
//
// Flags given on the command line override the values read from -config.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvnum/pricing"
)

func main() {
	configPath := flag.String("config", "", "path to YAML scenario")
	spots := flag.String("spots", "", "comma-separated spot prices")
	strike := flag.Float64("strike", 0, "strike price K")
	rate := flag.Float64("rate", 0, "risk-free rate r")
	yield := flag.Float64("yield", 0, "dividend yield y")
	expiry := flag.Float64("expiry", 0, "time to expiry t in years")
	vol := flag.Float64("vol", 0, "volatility sigma")
	backend := flag.String("backend", "", "scalar, batch or gonum")
	workers := flag.Int("workers", 0, "parallel workers for the batch")
	places := flag.Int("places", 0, "decimal places in the quote column")
	plotPath := flag.String("plot", "", "write the put curve to this image file (.svg, .png, .pdf)")
	showCSC := flag.Bool("csc", false, "print the sparse-matrix import example and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := newLogger(*debug)
	defer func() { _ = log.Sync() }()

	if *showCSC {
		if err := printCSCExample(os.Stdout); err != nil {
			log.Fatalf("csc example: %v", err)
		}
		return
	}

	sc, err := loadScenario(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// explicit flags win over the scenario file
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spots":
			sc.Spots, flagErr = parseSpots(*spots)
		case "strike":
			sc.Strike = *strike
		case "rate":
			sc.Rate = *rate
		case "yield":
			sc.Yield = *yield
		case "expiry":
			sc.Expiry = *expiry
		case "vol":
			sc.Vol = *vol
		case "backend":
			sc.Backend = *backend
		case "workers":
			sc.Workers = *workers
		case "places":
			sc.Places = *places
		}
	})
	if flagErr != nil {
		log.Fatalf("invalid -spots: %v", flagErr)
	}

	opts, err := sc.options()
	if err != nil {
		log.Fatalf("invalid engine settings: %v", err)
	}
	opts = append(opts, pricing.WithLogger(log))

	start := time.Now()
	rows, err := priceLadder(sc, opts)
	if err != nil {
		log.Fatalf("pricing failed: %v", err)
	}
	if err := writeTable(os.Stdout, rows, int32(sc.Places)); err != nil {
		log.Fatalf("writing table: %v", err)
	}
	log.Debugw("priced ladder", "n", len(rows), "elapsed", time.Since(start))

	if *plotPath != "" {
		if err := savePutCurve(*plotPath, sc, opts); err != nil {
			log.Fatalf("plot: %v", err)
		}
		log.Infof("wrote %s", *plotPath)
	}
}

// newLogger builds a development console logger at Info, or Debug with -debug.
func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}
	log = log.WithOptions(zap.IncreaseLevel(lvl), zap.AddStacktrace(zapcore.FatalLevel))

	return log.Sugar()
}
