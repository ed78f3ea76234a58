// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-binhist/hist"
	"gopkg.in/yaml.v3"
)

// opts are the flags shared by every subcommand.
var opts struct {
	axes    axesConfig
	errors  string
	project string
	rebin   string
	scale   float64
	bulk    bool
	out     string
}

func addCommonFlags(f *flag.FlagSet) {
	f.Var(axesFlag{&opts.axes}, "axes", "read axes from YAML `document`, or from a file if it starts with @")
	f.StringVar(&opts.errors, "errors", "", "track errors in `mode` none or poisson (default from -axes, or none)")
	f.StringVar(&opts.project, "project", "", "project onto comma-separated `axes`")
	f.StringVar(&opts.rebin, "rebin", "", "combine every `g[@axis]` adjacent bins of axis (default axis 0)")
	f.Float64Var(&opts.scale, "scale", 1, "multiply counts by `c`")
	f.BoolVar(&opts.bulk, "bulk", false, "fill all observations at once")
	f.StringVar(&opts.out, "o", "", "write output to `file` (default: stdout)")
}

// setUsage sets the usage message of a subcommand's flag set.
func setUsage(f *flag.FlagSet, name, args string) {
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
}

// axesConfig is the YAML description of a histogram's axes.
type axesConfig struct {
	Errors string       `yaml:"errors"`
	Axes   []axisConfig `yaml:"axes"`
}

// axisConfig describes one axis, either by regular bins or by edges.
type axisConfig struct {
	Lo    *float64  `yaml:"lo,omitempty"`
	Hi    *float64  `yaml:"hi,omitempty"`
	Bins  int       `yaml:"bins,omitempty"`
	Edges []float64 `yaml:"edges,omitempty"`
	Label string    `yaml:"label,omitempty"`
}

func parseAxesConfig(data []byte) (axesConfig, error) {
	var c axesConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return c, errors.New("empty axes document")
		}
		return c, err
	}
	if len(c.Axes) == 0 {
		return c, errors.New("axes document has no axes")
	}
	return c, nil
}

func (c axesConfig) build() ([]*hist.Axis, error) {
	axes := make([]*hist.Axis, len(c.Axes))
	for i, ac := range c.Axes {
		a, err := ac.axis()
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i] = a
	}
	return axes, nil
}

func (c axisConfig) axis() (*hist.Axis, error) {
	if c.Edges != nil {
		if c.Lo != nil || c.Hi != nil || c.Bins != 0 {
			return nil, errors.New("edges cannot be combined with lo, hi, or bins")
		}
		return hist.EdgeBins(c.Edges, c.Label)
	}
	if c.Lo == nil || c.Hi == nil {
		return nil, errors.New("need lo and hi, or edges")
	}
	return hist.RegularBins(*c.Lo, *c.Hi, c.Bins, c.Label)
}

// axesFlag is a flag.Value that parses an axes YAML document given
// inline or, if the value starts with @, read from a file.
type axesFlag struct {
	c *axesConfig
}

func (v axesFlag) Set(s string) error {
	data := []byte(s)
	if strings.HasPrefix(s, "@") {
		var err error
		data, err = ioutil.ReadFile(s[1:])
		if err != nil {
			return err
		}
	}
	c, err := parseAxesConfig(data)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (v axesFlag) String() string {
	if v.c == nil || v.c.Axes == nil {
		return ""
	}
	j, _ := json.Marshal(v.c)
	return string(j)
}

// parseRebin parses a -rebin value of the form "g" or "g@axis".
func parseRebin(s string) (grouping, axis int, err error) {
	gs, as := s, "0"
	if i := strings.IndexByte(s, '@'); i >= 0 {
		gs, as = s[:i], s[i+1:]
	}
	grouping, err = strconv.Atoi(gs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad rebin grouping %q", gs)
	}
	axis, err = strconv.Atoi(as)
	if err != nil {
		return 0, 0, fmt.Errorf("bad rebin axis %q", as)
	}
	return grouping, axis, nil
}

// parseAxisList parses a comma-separated list of axis indexes.
func parseAxisList(s string) ([]int, error) {
	var axes []int
	for _, f := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad axis %q", f)
		}
		axes = append(axes, i)
	}
	return axes, nil
}
