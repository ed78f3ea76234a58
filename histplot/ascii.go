// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-binhist/hist"
)

// DefaultASCIIWidth is the length of the longest bar drawn by
// WriteASCII if ASCIIConfig.Width is 0.
const DefaultASCIIWidth = 40

// ASCIIConfig controls WriteASCII.
type ASCIIConfig struct {
	// Width is the length of the bar of the largest count.
	Width int

	// Bar is repeated to draw each bar. If empty, it is "#".
	Bar string
}

// ASCIIRow is one bar of an ASCII bar chart.
type ASCIIRow struct {
	Lo, Hi float64
	Count  float64

	// Bar is the length of the bar, proportional to Count and
	// between 0 and the chart width.
	Bar int
}

// ASCIIRows returns one row for each bin of the first axis of h. The
// bar of the largest count has length width. If no count is
// positive, all bars are empty.
func ASCIIRows(h *hist.Histogram, width int) []ASCIIRow {
	p := project1(h)
	counts := p.Counts()
	fs := fractions(counts)
	rows := make([]ASCIIRow, len(counts))
	for i, c := range counts {
		b := p.Axis(0).Bin(i)
		rows[i] = ASCIIRow{b.Lo, b.Hi, c, int(fs[i] * float64(width))}
	}
	return rows
}

// WriteASCII writes an ASCII bar chart of h to w, one line per bin of
// the first axis of h.
func WriteASCII(w io.Writer, h *hist.Histogram, cfg ASCIIConfig) error {
	width := cfg.Width
	if width <= 0 {
		width = DefaultASCIIWidth
	}
	bar := cfg.Bar
	if bar == "" {
		bar = "#"
	}
	for _, row := range ASCIIRows(h, width) {
		if _, err := fmt.Fprintf(w, "\t%+.2f\t%+.2f\t%s\n", row.Lo, row.Hi, strings.Repeat(bar, row.Bar)); err != nil {
			return err
		}
	}
	return nil
}
