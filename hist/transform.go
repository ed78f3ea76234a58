// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
)

// Projected returns the marginal histogram of h over the axes not in
// keep. The result has the axes of h whose indexes are in keep, in
// the order they appear in h.
//
// If h tracks errors, the errors of the summed bins are added in
// quadrature and the result is in ErrorsDerived mode.
func Projected(h *Histogram, keep ...int) (*Histogram, error) {
	if len(keep) == 0 {
		return nil, fmt.Errorf("%w: projection must keep at least one axis", ErrValidation)
	}
	kept := make([]bool, len(h.axes))
	for _, k := range keep {
		if k < 0 || k >= len(h.axes) {
			return nil, fmt.Errorf("%w: axis %d out of range for %d-dimensional histogram", ErrValidation, k, len(h.axes))
		}
		if kept[k] {
			return nil, fmt.Errorf("%w: axis %d kept twice", ErrValidation, k)
		}
		kept[k] = true
	}

	var axes []*Axis
	var from []int
	for i, a := range h.axes {
		if kept[i] {
			axes = append(axes, a)
			from = append(from, i)
		}
	}
	out := newHistogram(axes, derivedMode(h.mode))

	idx := make([]int, len(h.axes))
	for off, c := range h.counts {
		h.unflat(off, idx)
		o := 0
		for j, i := range from {
			o += idx[i] * out.strides[j]
		}
		out.counts[o] += c
		if out.errors != nil {
			out.errors[o] += h.errors[off] * h.errors[off]
		}
	}
	out.sqrtErrors()
	return out, nil
}

// Rebinned returns a copy of h in which each run of grouping
// consecutive bins along the given axis is merged into one bin, as by
// Regrouped. The count of a merged bin is the sum of the counts it
// replaces.
//
// If h tracks errors, the errors of the merged bins are added in
// quadrature and the result is in ErrorsDerived mode.
func Rebinned(h *Histogram, grouping, axis int) (*Histogram, error) {
	if axis < 0 || axis >= len(h.axes) {
		return nil, fmt.Errorf("%w: axis %d out of range for %d-dimensional histogram", ErrValidation, axis, len(h.axes))
	}
	ra, err := Regrouped(h.axes[axis], grouping)
	if err != nil {
		return nil, err
	}
	axes := append([]*Axis(nil), h.axes...)
	axes[axis] = ra
	out := newHistogram(axes, derivedMode(h.mode))

	idx := make([]int, len(h.axes))
	for off, c := range h.counts {
		h.unflat(off, idx)
		idx[axis] /= grouping
		o := out.flat(idx)
		out.counts[o] += c
		if out.errors != nil {
			out.errors[o] += h.errors[off] * h.errors[off]
		}
	}
	out.sqrtErrors()
	return out, nil
}

func derivedMode(m ErrorMode) ErrorMode {
	if m == ErrorsNone {
		return ErrorsNone
	}
	return ErrorsDerived
}

// sqrtErrors turns accumulated squared errors into errors.
func (h *Histogram) sqrtErrors() {
	for i, e2 := range h.errors {
		h.errors[i] = math.Sqrt(e2)
	}
}
