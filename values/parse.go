// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package values reads observations to be histogrammed from text.
//
// The input has one observation per line, with one whitespace
// separated column for each histogram axis. Blank lines and lines
// starting with "#" are ignored.
//
// As in the Go benchmark format, a line of the form "key: value",
// where key begins with a lower case letter and contains no upper
// case letters or spaces, is a configuration line. Configuration
// applies to every following observation until the key is set again.
// The "weight" key sets the fill weight of the following observations;
// an empty weight resets it to 1.
package values

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Record is a single observation (a single line of input).
type Record struct {
	// Values is the parsed value of each column. It is nil until
	// ParseValues is called.
	Values []float64

	// RawValues is each column exactly as written in the input.
	RawValues []string

	// Weight is the weight of this observation.
	Weight float64

	// Config is the configuration in effect for this record.
	// Records share Config maps, so it must not be modified.
	Config map[string]string

	// Line is the 1-based line number of this record.
	Line int
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads observations from r. Every observation must have the
// same number of columns.
//
// In the returned Records, RawValues is set, but Values is nil. Use
// ParseValues to convert raw values to numbers.
func Parse(r io.Reader) ([]*Record, error) {
	records := []*Record{}
	config := map[string]string{}
	weight := 1.0
	ncols := -1

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			if m[1] == "weight" {
				w, err := parseWeight(m[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineno, err)
				}
				weight = w
			}
			// Copy on write, since earlier records
			// share the old map.
			nconfig := make(map[string]string, len(config)+1)
			for k, v := range config {
				nconfig[k] = v
			}
			nconfig[m[1]] = m[2]
			config = nconfig
			continue
		}

		// Observation lines.
		f := strings.Fields(line)
		if ncols < 0 {
			ncols = len(f)
		} else if len(f) != ncols {
			return nil, fmt.Errorf("line %d: %d columns, want %d", lineno, len(f), ncols)
		}
		records = append(records, &Record{
			RawValues: f,
			Weight:    weight,
			Config:    config,
			Line:      lineno,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func parseWeight(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad weight %q", s)
	}
	return w, nil
}

// ValueParser is a function that parses a string value into a number
// or returns an error if the string cannot be parsed.
type ValueParser func(string) (float64, error)

// DefaultValueParsers is the default sequence of value parsers used
// by ParseValues if no parsers are specified. Durations are converted
// to seconds.
var DefaultValueParsers = []ValueParser{
	func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	func(s string) (float64, error) {
		d, err := time.ParseDuration(s)
		return d.Seconds(), err
	},
}

// ParseValues parses the raw values in records into numbers.
//
// Each column is parsed with the earliest parser in valueParsers that
// can parse every value in that column, so a column can hold, for
// example, all plain numbers or all durations. If no parser can parse
// a column, ParseValues returns an error naming the first value the
// first parser rejected and leaves Values unset.
//
// If valueParsers is nil, it uses DefaultValueParsers.
func ParseValues(records []*Record, valueParsers []ValueParser) error {
	if valueParsers == nil {
		valueParsers = DefaultValueParsers
	}
	if len(records) == 0 {
		return nil
	}

	ncols := len(records[0].RawValues)
	cols := make([][]float64, ncols)
	for col := range cols {
		vals := make([]float64, len(records))
		var firstErr error
		good := false
	tryParsers:
		for _, vp := range valueParsers {
			good = true
			for i, r := range records {
				v, err := vp(r.RawValues[col])
				if err != nil {
					// Parse error. Fail this parser.
					if firstErr == nil {
						firstErr = fmt.Errorf("line %d: column %d: cannot parse %q", r.Line, col+1, r.RawValues[col])
					}
					good = false
					continue tryParsers
				}
				vals[i] = v
			}
			break
		}
		if !good {
			return firstErr
		}
		cols[col] = vals
	}

	for i, r := range records {
		r.Values = make([]float64, ncols)
		for col := range cols {
			r.Values[col] = cols[col][i]
		}
	}
	return nil
}

// Rows returns the parsed values of every record.
func Rows(records []*Record) [][]float64 {
	rows := make([][]float64, len(records))
	for i, r := range records {
		rows[i] = r.Values
	}
	return rows
}

// Weights returns the weight of every record, or nil if every record
// has weight 1.
func Weights(records []*Record) []float64 {
	var ws []float64
	for i, r := range records {
		if r.Weight != 1 && ws == nil {
			ws = make([]float64, len(records))
			for j := 0; j < i; j++ {
				ws[j] = 1
			}
		}
		if ws != nil {
			ws[i] = r.Weight
		}
	}
	return ws
}

// Column returns the parsed values of column col of every record.
func Column(records []*Record, col int) []float64 {
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Values[col]
	}
	return xs
}
