// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import "fmt"

// FillBulk replaces the counts of h with a histogram of rows. Each
// row is one point with a coordinate per axis; points outside the
// histogram are dropped, exactly as Fill drops them. Unlike Fill,
// FillBulk does not accumulate into the existing counts.
//
// In ErrorsPoisson mode, the errors are recomputed as the square root
// of the new counts. This assumes unweighted counts.
//
// If any row has the wrong number of coordinates, FillBulk returns an
// error and leaves h unchanged.
func (h *Histogram) FillBulk(rows [][]float64) error {
	return h.FillBulkWeighted(rows, nil)
}

// FillBulkWeighted is like FillBulk, but row i has weight
// weights[i]. If weights is nil, every row has weight 1.
func (h *Histogram) FillBulkWeighted(rows [][]float64, weights []float64) error {
	if weights != nil && len(weights) != len(rows) {
		return fmt.Errorf("%w: %d weights for %d rows", ErrValidation, len(weights), len(rows))
	}
	for i, row := range rows {
		if len(row) != len(h.axes) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrValidation, i, len(row), len(h.axes))
		}
	}

	counts := make([]float64, len(h.counts))
	for i, row := range rows {
		off, ok := h.locate(row)
		if !ok {
			continue
		}
		if weights == nil {
			counts[off]++
		} else {
			counts[off] += weights[i]
		}
	}
	h.replaceCounts(counts)
	return nil
}
