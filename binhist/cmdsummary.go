// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-binhist/histstat"
	"github.com/aclements/go-gg/table"
)

var cmdSummaryFlags = flag.NewFlagSet(os.Args[0]+" summary", flag.ExitOnError)
var cmdBinsFlags = flag.NewFlagSet(os.Args[0]+" bins", flag.ExitOnError)

func init() {
	f := cmdSummaryFlags
	setUsage(f, "summary", "lo hi N [inputs...]")
	addCommonFlags(f)
	registerSubcommand("summary", "[flags] lo hi N [inputs...] - print summary statistics", cmdSummary, f)

	f = cmdBinsFlags
	setUsage(f, "bins", "lo hi N [inputs...]")
	addCommonFlags(f)
	registerSubcommand("bins", "[flags] lo hi N [inputs...] - print the bins of each axis", cmdBins, f)
}

func cmdSummary() {
	h := mustHistogram(cmdSummaryFlags)
	f := createOutput()
	defer closeOutput(f)
	table.Fprint(f, summaryTable(histstat.Summarize(h)))
}

func summaryTable(s histstat.Summary) *table.Table {
	return new(table.Builder).
		Add("total", []float64{s.Total}).
		Add("mean", []float64{s.Mean}).
		Add("stddev", []float64{s.StdDev}).
		Add("median", []float64{s.Median}).
		Add("iqr", []float64{s.IQR}).
		Done()
}

func cmdBins() {
	axes, err := binAxes(cmdBinsFlags.Args())
	if errors.Is(err, errUsage) {
		cmdBinsFlags.Usage()
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}

	f := createOutput()
	defer closeOutput(f)
	if err := printBins(f, axes); err != nil {
		log.Fatal(err)
	}
}

// binAxes returns the axes described by args after the transforms
// selected by flags. In the positional form, the inputs are read to
// find the number of columns.
func binAxes(args []string) ([]*hist.Axis, error) {
	j, err := newJob(args, opts.axes.Axes == nil)
	if err != nil {
		return nil, err
	}
	h, err := hist.New(j.mode, j.axes...)
	if err != nil {
		return nil, err
	}
	if h, err = transform(h); err != nil {
		return nil, err
	}
	return h.Axes(), nil
}

func printBins(w io.Writer, axes []*hist.Axis) error {
	for i, a := range axes {
		if a.Label() != "" {
			fmt.Fprintf(w, "axis %d (%s):\n", i, a.Label())
		} else {
			fmt.Fprintf(w, "axis %d:\n", i)
		}
		for _, b := range a.Bins() {
			if _, err := fmt.Fprintf(w, "\t%v\n", b); err != nil {
				return err
			}
		}
	}
	return nil
}
