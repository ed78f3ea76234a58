// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Plot returns a plot of h. A one-dimensional histogram is drawn as a
// step outline of its counts. A histogram with more axes is
// projected onto its first two axes and drawn as tiles shaded by
// count.
//
// Render the plot with its WriteSVG method.
func Plot(h *hist.Histogram) (*gg.Plot, error) {
	if h.Dim() == 1 {
		return plot1(h), nil
	}
	p, err := project2(h, "plot")
	if err != nil {
		return nil, err
	}
	return plot2(p), nil
}

func plot1(h *hist.Histogram) *gg.Plot {
	a := h.Axis(0)

	// Each bin is a horizontal segment starting at its lower
	// edge. Repeat the last count at the upper edge of the last
	// bin to close the outline.
	counts := h.Counts()
	ys := append(counts, counts[len(counts)-1])
	tab := new(table.Builder).
		Add("x", a.Edges()).
		Add("count", ys).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "x", Y: "count"},
		Step:       gg.StepHV,
	})
	if a.Label() != "" {
		plot.Add(gg.AxisLabel("x", a.Label()))
	}
	return plot
}

func plot2(h *hist.Histogram) *gg.Plot {
	plot := gg.NewPlot(table2(h))
	plot.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "count"})
	if l := h.Axis(0).Label(); l != "" {
		plot.Add(gg.AxisLabel("x", l))
	}
	if l := h.Axis(1).Label(); l != "" {
		plot.Add(gg.AxisLabel("y", l))
	}
	return plot
}
