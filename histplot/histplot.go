// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histplot presents histograms for people and for plotting
// programs.
//
// Every presentation works on one or two dimensions. One-dimensional
// presentations project a histogram onto its first axis, and
// two-dimensional presentations project it onto its first two axes.
package histplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-moremath/scale"
)

// project1 returns h projected onto its first axis.
func project1(h *hist.Histogram) *hist.Histogram {
	if h.Dim() == 1 {
		return h
	}
	p, err := hist.Projected(h, 0)
	if err != nil {
		// Axis 0 always exists.
		panic(err)
	}
	return p
}

// project2 returns h projected onto its first two axes.
func project2(h *hist.Histogram, what string) (*hist.Histogram, error) {
	switch {
	case h.Dim() < 2:
		return nil, fmt.Errorf("%w: %s needs at least 2 axes, histogram has %d", hist.ErrDimensionality, what, h.Dim())
	case h.Dim() == 2:
		return h, nil
	}
	return hist.Projected(h, 0, 1)
}

// fractions maps counts onto [0, 1] relative to the largest count.
// Negative counts map to 0. If no count is positive, every fraction
// is 0.
func fractions(counts []float64) []float64 {
	max := 0.0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	fs := make([]float64, len(counts))
	if max <= 0 {
		return fs
	}
	s := scale.Linear{Min: 0, Max: max}
	for i, c := range counts {
		f := s.Map(c)
		if f < 0 || math.IsNaN(f) {
			f = 0
		} else if f > 1 {
			f = 1
		}
		fs[i] = f
	}
	return fs
}
