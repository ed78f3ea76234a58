// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
)

// Compatible reports whether h and o have the same number of axes and
// pairwise equal axes. Labels are ignored.
func (h *Histogram) Compatible(o *Histogram) bool {
	if len(h.axes) != len(o.axes) {
		return false
	}
	for i, a := range h.axes {
		if !a.Equal(o.axes[i]) {
			return false
		}
	}
	return true
}

// Add returns the bin-wise sum of h and o, which must be Compatible.
// If both track errors, the result's errors are their quadrature sum
// and its mode is ErrorsAdded. Otherwise the result does not track
// errors.
func (h *Histogram) Add(o *Histogram) (*Histogram, error) {
	return h.combine(o, ErrorsAdded, 1)
}

// Sub returns the bin-wise difference of h and o, which must be
// Compatible. Errors are combined as for Add, with mode
// ErrorsSubtracted.
func (h *Histogram) Sub(o *Histogram) (*Histogram, error) {
	return h.combine(o, ErrorsSubtracted, -1)
}

func (h *Histogram) combine(o *Histogram, mode ErrorMode, sign float64) (*Histogram, error) {
	if !h.Compatible(o) {
		return nil, fmt.Errorf("%w: cannot combine %v histogram with %v histogram", ErrIncompatibleAxes, h.Shape(), o.Shape())
	}
	if h.mode == ErrorsNone || o.mode == ErrorsNone {
		mode = ErrorsNone
	}
	out := newHistogram(h.axes, mode)
	for i, c := range h.counts {
		out.counts[i] = c + sign*o.counts[i]
	}
	if out.errors != nil {
		for i, e := range h.errors {
			out.errors[i] = math.Sqrt(e*e + o.errors[i]*o.errors[i])
		}
	}
	return out, nil
}

// Mul returns h with every count multiplied by c. If h tracks errors,
// they are multiplied by c as well and the result's mode is
// ErrorsScaled.
func (h *Histogram) Mul(c float64) *Histogram {
	return h.scale(func(x float64) float64 { return x * c })
}

// Div returns h with every count divided by c. If h tracks errors,
// they are divided by c as well and the result's mode is
// ErrorsScaled. Division by zero yields infinities and NaNs.
func (h *Histogram) Div(c float64) *Histogram {
	return h.scale(func(x float64) float64 { return x / c })
}

func (h *Histogram) scale(f func(float64) float64) *Histogram {
	mode := ErrorsNone
	if h.mode != ErrorsNone {
		mode = ErrorsScaled
	}
	out := newHistogram(h.axes, mode)
	for i, c := range h.counts {
		out.counts[i] = f(c)
	}
	for i := range out.errors {
		out.errors[i] = f(h.errors[i])
	}
	return out
}
