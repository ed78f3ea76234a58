// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-gg/table"
)

// Table returns h as a table with one row per bin.
//
// A one-dimensional histogram has columns "lo", "hi", "center", and
// "count". Histograms with more axes are projected onto their first
// two and have columns "x" and "y" (the bin centers) and "count". In
// both cases there is also an "error" column if h tracks errors.
func Table(h *hist.Histogram) (*table.Table, error) {
	if h.Dim() == 1 {
		return table1(h), nil
	}
	p, err := project2(h, "table")
	if err != nil {
		return nil, err
	}
	return table2(p), nil
}

func table1(h *hist.Histogram) *table.Table {
	a := h.Axis(0)
	los, his := make([]float64, a.Len()), make([]float64, a.Len())
	for i := range los {
		b := a.Bin(i)
		los[i], his[i] = b.Lo, b.Hi
	}
	tab := new(table.Builder).
		Add("lo", los).
		Add("hi", his).
		Add("center", a.Centers()).
		Add("count", h.Counts())
	if errs := h.Errors(); errs != nil {
		tab.Add("error", errs)
	}
	return tab.Done()
}

func table2(h *hist.Histogram) *table.Table {
	cx, cy := h.Axis(0).Centers(), h.Axis(1).Centers()
	xs := make([]float64, 0, h.Size())
	ys := make([]float64, 0, h.Size())
	// Counts are row-major, so y varies fastest.
	for _, x := range cx {
		for _, y := range cy {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("count", h.Counts())
	if errs := h.Errors(); errs != nil {
		tab.Add("error", errs)
	}
	return tab.Done()
}
