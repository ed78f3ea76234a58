// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist implements multi-dimensional histograms with static
// binning.
//
// A Histogram has one or more Axes, each an ordered list of
// half-open Bins. Observations are binned along every axis at once
// and accumulate a weight in a dense, row-major array of counts. A
// histogram can optionally track an uncertainty for every count,
// described by its ErrorMode.
//
// Projected, Rebinned, and the arithmetic methods derive new
// histograms and never modify their inputs. A Histogram is not safe
// for concurrent fills.
package hist

import (
	"fmt"
	"math"
)

// Histogram is an N-dimensional array of weighted counts.
type Histogram struct {
	axes    []*Axis
	strides []int
	counts  []float64
	errors  []float64 // nil iff mode == ErrorsNone
	mode    ErrorMode
}

// New returns an empty histogram with the given axes. mode must be
// ErrorsNone or ErrorsPoisson; the other modes are only produced by
// transforms.
func New(mode ErrorMode, axes ...*Axis) (*Histogram, error) {
	switch {
	case !mode.valid():
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedErrorMode, mode)
	case mode != ErrorsNone && mode != ErrorsPoisson:
		return nil, fmt.Errorf("%w: cannot construct a histogram with errors %v", ErrUnsupportedErrorMode, mode)
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: histogram needs at least one axis", ErrValidation)
	}
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("%w: axis %d is nil", ErrValidation, i)
		}
	}
	return newHistogram(append([]*Axis(nil), axes...), mode), nil
}

// NewFromRows returns a histogram with the given axes filled from
// rows as by FillBulk.
func NewFromRows(mode ErrorMode, rows [][]float64, axes ...*Axis) (*Histogram, error) {
	h, err := New(mode, axes...)
	if err != nil {
		return nil, err
	}
	if err := h.FillBulk(rows); err != nil {
		return nil, err
	}
	return h, nil
}

// newHistogram allocates a zeroed histogram. It takes ownership of
// axes.
func newHistogram(axes []*Axis, mode ErrorMode) *Histogram {
	strides := make([]int, len(axes))
	size := 1
	for i := len(axes) - 1; i >= 0; i-- {
		strides[i] = size
		size *= axes[i].Len()
	}
	h := &Histogram{
		axes:    axes,
		strides: strides,
		counts:  make([]float64, size),
		mode:    mode,
	}
	if mode != ErrorsNone {
		h.errors = make([]float64, size)
	}
	return h
}

// Dim returns the number of axes of h.
func (h *Histogram) Dim() int {
	return len(h.axes)
}

// Axes returns the axes of h.
func (h *Histogram) Axes() []*Axis {
	return append([]*Axis(nil), h.axes...)
}

func (h *Histogram) Axis(i int) *Axis {
	return h.axes[i]
}

// Shape returns the number of bins along each axis.
func (h *Histogram) Shape() []int {
	shape := make([]int, len(h.axes))
	for i, a := range h.axes {
		shape[i] = a.Len()
	}
	return shape
}

// Size returns the total number of bins.
func (h *Histogram) Size() int {
	return len(h.counts)
}

func (h *Histogram) ErrorMode() ErrorMode {
	return h.mode
}

// Counts returns a copy of the counts of h in row-major order: the
// last axis varies fastest.
func (h *Histogram) Counts() []float64 {
	return append([]float64(nil), h.counts...)
}

// Errors returns a copy of the errors of h in the same order as
// Counts, or nil if h does not track errors.
func (h *Histogram) Errors() []float64 {
	if h.errors == nil {
		return nil
	}
	return append([]float64(nil), h.errors...)
}

// At returns the count of the bin at the given per-axis indexes. It
// panics if an index is out of range.
func (h *Histogram) At(idx ...int) float64 {
	return h.counts[h.flat(idx)]
}

// ErrorAt returns the error of the bin at the given per-axis
// indexes, or 0 if h does not track errors.
func (h *Histogram) ErrorAt(idx ...int) float64 {
	off := h.flat(idx)
	if h.errors == nil {
		return 0
	}
	return h.errors[off]
}

// Total returns the sum of all counts.
func (h *Histogram) Total() float64 {
	var t float64
	for _, c := range h.counts {
		t += c
	}
	return t
}

// Clone returns a deep copy of h. Axes are shared.
func (h *Histogram) Clone() *Histogram {
	h2 := newHistogram(h.axes, h.mode)
	copy(h2.counts, h.counts)
	copy(h2.errors, h.errors)
	return h2
}

// Fill adds 1 to the bin containing the point values, which must
// have one coordinate per axis. If any coordinate is outside its
// axis, Fill does nothing and returns false.
func (h *Histogram) Fill(values ...float64) bool {
	return h.FillWeighted(1, values...)
}

// FillWeighted is like Fill, but adds weight instead of 1. weight may
// be fractional or negative.
//
// Fills do not update errors. In ErrorsPoisson mode, call
// UpdatePoissonErrors after filling.
func (h *Histogram) FillWeighted(weight float64, values ...float64) bool {
	off, ok := h.locate(values)
	if !ok {
		return false
	}
	h.counts[off] += weight
	return true
}

// SetCounts replaces the counts of h with a copy of counts, which
// must be in the order returned by Counts. In ErrorsPoisson mode, the
// errors are recomputed.
func (h *Histogram) SetCounts(counts []float64) error {
	if len(counts) != len(h.counts) {
		return fmt.Errorf("%w: %d counts for %d bins", ErrValidation, len(counts), len(h.counts))
	}
	h.replaceCounts(append([]float64(nil), counts...))
	return nil
}

// SetErrors replaces the errors of h with a copy of errs. It fails if
// h does not track errors.
func (h *Histogram) SetErrors(errs []float64) error {
	if h.mode == ErrorsNone {
		return fmt.Errorf("%w: histogram does not track errors", ErrUnsupportedErrorMode)
	}
	if len(errs) != len(h.errors) {
		return fmt.Errorf("%w: %d errors for %d bins", ErrValidation, len(errs), len(h.errors))
	}
	copy(h.errors, errs)
	return nil
}

// UpdatePoissonErrors sets the errors of h to the square root of its
// counts. It fails unless h is in ErrorsPoisson mode.
func (h *Histogram) UpdatePoissonErrors() error {
	if h.mode != ErrorsPoisson {
		return fmt.Errorf("%w: errors are %v, not %v", ErrUnsupportedErrorMode, h.mode, ErrorsPoisson)
	}
	for i, c := range h.counts {
		h.errors[i] = math.Sqrt(c)
	}
	return nil
}

func (h *Histogram) replaceCounts(counts []float64) {
	h.counts = counts
	if h.mode == ErrorsPoisson {
		h.UpdatePoissonErrors()
	}
}

// locate returns the offset in counts of the bin containing values.
func (h *Histogram) locate(values []float64) (int, bool) {
	if len(values) != len(h.axes) {
		panic(fmt.Sprintf("hist: %d coordinates for %d-dimensional histogram", len(values), len(h.axes)))
	}
	off := 0
	for i, v := range values {
		j, ok := h.axes[i].Index(v)
		if !ok {
			return 0, false
		}
		off += j * h.strides[i]
	}
	return off, true
}

// flat converts per-axis indexes into an offset in counts.
func (h *Histogram) flat(idx []int) int {
	if len(idx) != len(h.axes) {
		panic(fmt.Sprintf("hist: %d indexes for %d-dimensional histogram", len(idx), len(h.axes)))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= h.axes[i].Len() {
			panic(fmt.Sprintf("hist: index %d out of range for axis %d with %d bins", j, i, h.axes[i].Len()))
		}
		off += j * h.strides[i]
	}
	return off
}

// unflat is the inverse of flat. It stores the indexes in idx.
func (h *Histogram) unflat(off int, idx []int) {
	for i, s := range h.strides {
		idx[i] = off / s
		off %= s
	}
}
