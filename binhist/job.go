// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-binhist/values"
	"github.com/aclements/go-moremath/stats"
	"go.uber.org/zap"
)

var errUsage = errors.New("bad arguments")

// job is a histogram described by a subcommand's arguments.
type job struct {
	paths   []string
	records []*values.Record
	axes    []*hist.Axis
	mode    hist.ErrorMode
}

// newJob parses the positional arguments of a subcommand and reads
// the inputs. If needData is false, inputs are read only if they are
// needed to choose the axes.
func newJob(args []string, needData bool) (*job, error) {
	j := new(job)
	mode := opts.axes.Errors
	if opts.errors != "" {
		mode = opts.errors
	}
	var err error
	if j.mode, err = hist.ParseErrorMode(mode); err != nil {
		return nil, err
	}

	var lo, hi, n string
	if opts.axes.Axes != nil {
		j.paths = args
	} else {
		if len(args) < 3 {
			return nil, errUsage
		}
		lo, hi, n = args[0], args[1], args[2]
		j.paths = args[3:]
		if lo == "auto" || hi == "auto" {
			needData = true
		}
	}

	if needData {
		if j.records, err = readInput(j.paths); err != nil {
			return nil, err
		}
	}
	if opts.axes.Axes != nil {
		j.axes, err = opts.axes.build()
	} else {
		j.axes, err = regularAxes(lo, hi, n, j.records)
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

// mustJob is newJob for the arguments of f. It exits on failure.
func mustJob(f *flag.FlagSet, needData bool) *job {
	j, err := newJob(f.Args(), needData)
	if errors.Is(err, errUsage) {
		f.Usage()
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
	return j
}

// mustHistogram builds the histogram described by the arguments of f.
// It exits on failure.
func mustHistogram(f *flag.FlagSet) *hist.Histogram {
	h, err := mustJob(f, true).histogram()
	if err != nil {
		log.Fatal(err)
	}
	return h
}

// readInput parses the observations in paths, or standard input if
// there are no paths or a path is "-".
func readInput(paths []string) ([]*values.Record, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var records []*values.Record
	for _, path := range paths {
		rs, err := func() ([]*values.Record, error) {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					return nil, err
				}
				defer f.Close()
			}
			rs, err := values.Parse(f)
			if err != nil {
				return nil, err
			}
			if err := values.ParseValues(rs, nil); err != nil {
				return nil, err
			}
			return rs, nil
		}()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, rs...)
	}
	logger.Debug("read input", zap.Strings("paths", paths), zap.Int("records", len(records)))
	return records, nil
}

// regularAxes returns an axis with n regular bins over [lo, hi) for
// each column of records, or a single axis if there are no records.
// lo and hi may be "auto" to use the range of each column. Axes are
// labeled by the "labels" configuration of the first record.
func regularAxes(lo, hi, n string, records []*values.Record) ([]*hist.Axis, error) {
	nbins, err := strconv.Atoi(n)
	if err != nil {
		return nil, fmt.Errorf("bad number of bins %q", n)
	}
	ncols := 1
	var labels []string
	if len(records) > 0 {
		ncols = len(records[0].Values)
		if l := records[0].Config["labels"]; l != "" {
			labels = strings.Split(l, ",")
		}
	}

	axes := make([]*hist.Axis, ncols)
	for col := range axes {
		var min, max float64
		if lo == "auto" || hi == "auto" {
			if len(records) == 0 {
				return nil, errors.New("auto range requires observations")
			}
			min, max = stats.Bounds(values.Column(records, col))
			if min == max {
				// Constant column. Center it in a unit range.
				min, max = min-0.5, max+0.5
			} else {
				// Include the maximum in the last bin.
				max = math.Nextafter(max, math.Inf(1))
			}
		}
		l, err := parseBound(lo, min)
		if err != nil {
			return nil, err
		}
		h, err := parseBound(hi, max)
		if err != nil {
			return nil, err
		}
		label := ""
		if col < len(labels) {
			label = strings.TrimSpace(labels[col])
		}
		if axes[col], err = hist.RegularBins(l, h, nbins, label); err != nil {
			return nil, fmt.Errorf("column %d: %w", col+1, err)
		}
	}
	return axes, nil
}

func parseBound(s string, auto float64) (float64, error) {
	if s == "auto" {
		return auto, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad bound %q", s)
	}
	return v, nil
}

// histogram fills a histogram with the job's observations and
// applies the transforms selected by flags.
func (j *job) histogram() (*hist.Histogram, error) {
	h, err := hist.New(j.mode, j.axes...)
	if err != nil {
		return nil, err
	}
	for _, r := range j.records {
		if len(r.Values) != len(j.axes) {
			return nil, fmt.Errorf("line %d: %d columns, want one for each of %d axes", r.Line, len(r.Values), len(j.axes))
		}
	}

	if opts.bulk {
		if err := h.FillBulkWeighted(values.Rows(j.records), values.Weights(j.records)); err != nil {
			return nil, err
		}
	} else {
		dropped := 0
		for _, r := range j.records {
			if !h.FillWeighted(r.Weight, r.Values...) {
				dropped++
				logger.Debug("observation outside histogram", zap.Int("line", r.Line), zap.Float64s("values", r.Values))
			}
		}
		if dropped > 0 {
			logger.Info("dropped observations", zap.Int("dropped", dropped), zap.Int("records", len(j.records)))
		}
		if h.ErrorMode() == hist.ErrorsPoisson {
			h.UpdatePoissonErrors()
		}
	}
	return transform(h)
}

// transform rebins, projects, and scales h as selected by flags.
func transform(h *hist.Histogram) (*hist.Histogram, error) {
	if opts.rebin != "" {
		g, axis, err := parseRebin(opts.rebin)
		if err != nil {
			return nil, err
		}
		if h, err = hist.Rebinned(h, g, axis); err != nil {
			return nil, err
		}
	}
	if opts.project != "" {
		keep, err := parseAxisList(opts.project)
		if err != nil {
			return nil, err
		}
		if h, err = hist.Projected(h, keep...); err != nil {
			return nil, err
		}
	}
	if opts.scale != 1 {
		h = h.Mul(opts.scale)
	}
	return h, nil
}

// createOutput opens the output file selected by -o, or returns
// standard output. Close it with closeOutput.
func createOutput() *os.File {
	if opts.out == "" {
		return os.Stdout
	}
	f, err := os.Create(opts.out)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

// closeOutput closes an output file returned by createOutput and
// exits if that fails.
func closeOutput(f *os.File) {
	if err := finishOutput(f); err != nil {
		log.Fatal(err)
	}
}

func finishOutput(f *os.File) error {
	if f == os.Stdout {
		return nil
	}
	return f.Close()
}
