// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"github.com/aclements/go-binhist/hist"
	"github.com/gonum/matrix/mat64"
)

// BarArgs holds the arguments of a bar or error-bar plot, in the
// conventional order.
type BarArgs struct {
	Centers []float64
	Counts  []float64
	Widths  []float64

	// HalfWidths and Errors are nil unless the histogram tracks
	// errors.
	HalfWidths []float64
	Errors     []float64
}

// Bars returns the bar plot arguments for the first axis of h.
func Bars(h *hist.Histogram) BarArgs {
	p := project1(h)
	a := p.Axis(0)
	args := BarArgs{
		Centers: a.Centers(),
		Counts:  p.Counts(),
		Widths:  make([]float64, a.Len()),
	}
	for i := range args.Widths {
		args.Widths[i] = a.Bin(i).Width()
	}
	if errs := p.Errors(); errs != nil {
		args.Errors = errs
		args.HalfWidths = make([]float64, a.Len())
		for i, w := range args.Widths {
			args.HalfWidths[i] = 0.5 * w
		}
	}
	return args
}

// ContourArgs holds the arguments of a contour plot.
type ContourArgs struct {
	// X and Y are the bin centers of the first and second axes.
	X, Y []float64

	// Z has one row per bin of the second axis and one column per
	// bin of the first axis.
	Z *mat64.Dense
}

// Contour returns the contour plot arguments for the first two axes
// of h. It fails with hist.ErrDimensionality if h has only one axis.
func Contour(h *hist.Histogram) (ContourArgs, error) {
	p, err := project2(h, "contour")
	if err != nil {
		return ContourArgs{}, err
	}
	ax, ay := p.Axis(0), p.Axis(1)
	counts := mat64.NewDense(ax.Len(), ay.Len(), p.Counts())
	return ContourArgs{
		X: ax.Centers(),
		Y: ay.Centers(),
		Z: mat64.DenseCopyOf(counts.T()),
	}, nil
}
