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

// Fprint writes the bins and counts of the first axis of h to w as a
// table with a header line. If h tracks errors, they are included as
// a fourth column.
func Fprint(w io.Writer, h *hist.Histogram) error {
	p := project1(h)
	a := p.Axis(0)
	label := a.Label()
	errs := p.Errors()

	// Construct lines.
	header := []string{
		strings.TrimSpace(label + " lo"),
		strings.TrimSpace(label + " hi"),
		"counts",
	}
	if errs != nil {
		header = append(header, "errors")
	}
	lines := [][]string{header}
	for i, c := range p.Counts() {
		b := a.Bin(i)
		line := []string{
			fmt.Sprintf("%+.2f", b.Lo),
			fmt.Sprintf("%+.2f", b.Hi),
			fmt.Sprintf("%+.2f", c),
		}
		if errs != nil {
			line = append(line, fmt.Sprintf("%.2f", errs[i]))
		}
		lines = append(lines, line)
	}

	// Compute column widths.
	widths := make([]int, len(header))
	for _, line := range lines {
		for i, elt := range line {
			if len(elt) > widths[i] {
				widths[i] = len(elt)
			}
		}
	}

	// Print lines, right aligned.
	for _, line := range lines {
		for i, elt := range line {
			var err error
			if i < len(line)-1 {
				_, err = fmt.Fprintf(w, "%*s  ", widths[i], elt)
			} else {
				_, err = fmt.Fprintf(w, "%*s\n", widths[i], elt)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
