// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command binhist histograms columns of numbers.
//
// Usage:
//
//	binhist <subcommand> [flags] lo hi N [inputs...]
//	binhist <subcommand> [flags] -axes <yaml> [inputs...]
//
// Each input line is one observation with one whitespace-separated
// column per histogram axis. Lines of the form "key: value" set
// configuration for the following lines, as in the Go benchmark
// format; the "weight" key sets the fill weight and the "labels" key
// gives comma-separated axis labels. Values may be plain numbers or
// Go durations, which are converted to seconds. If there are no
// inputs, binhist reads standard input.
//
// In the positional form, every column is histogrammed into N equal
// bins over [lo, hi). Either bound may be "auto" to use the range of
// the data. The -axes flag instead takes a YAML document (or @file to
// read one from a file) describing each axis:
//
//	errors: poisson
//	axes:
//	  - {lo: 0, hi: 10, bins: 20, label: latency}
//	  - {edges: [0, 1, 10, 100], label: size}
//
// The histogram can then be rebinned (-rebin), projected onto some of
// its axes (-project), and scaled (-scale), in that order, before it
// is printed by a subcommand:
//
//	ascii    bar chart of the first axis
//	text     bins and counts of the first axis
//	table    every bin, as a table
//	svg      step plot or 2-D tile plot
//	png      2-D heatmap image
//	summary  mean, standard deviation, and quantiles of the first axis
//	bins     the bins of each axis
//
// Flags in the BINHIST_FLAGS environment variable are parsed before
// the command line flags. Diagnostics are logged to stderr as JSON at
// the level given by BINHIST_LOG (see package internal/logging).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-binhist/internal/logging"
	"github.com/kballard/go-shellquote"
)

var logger = logging.New("binhist")

type subcommand struct {
	name, usage string
	cmd         func()
	flags       *flag.FlagSet
}

var subcommands []subcommand

// registerSubcommand adds a subcommand. It must be called from an
// init function.
func registerSubcommand(name, usage string, cmd func(), flags *flag.FlagSet) {
	subcommands = append(subcommands, subcommand{name, usage, cmd, flags})
}

func main() {
	log.SetPrefix("binhist: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args...]\n\nSubcommands:\n", os.Args[0])
		for _, sub := range subcommands {
			fmt.Fprintf(os.Stderr, "  %s %s\n", sub.name, sub.usage)
		}
		fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	for _, sub := range subcommands {
		if sub.name != name {
			continue
		}
		args, err := envFlags(os.Getenv("BINHIST_FLAGS"))
		if err != nil {
			log.Fatalf("BINHIST_FLAGS: %v", err)
		}
		sub.flags.Parse(append(args, flag.Args()[1:]...))
		sub.cmd()
		return
	}
	fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", name)
	flag.Usage()
	os.Exit(2)
}

// envFlags splits the value of a flags environment variable into
// arguments using shell quoting rules.
func envFlags(v string) ([]string, error) {
	args, err := shellquote.Split(v)
	if err != nil {
		return nil, err
	}
	return args, nil
}
