// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/aclements/go-binhist/hist"
	"golang.org/x/image/draw"
)

// Heatmap returns a grayscale image of the first two axes of h. Each
// bin is a cell x cell square; the first axis grows to the right and
// the second axis grows upward. Darker cells have larger counts, and
// cells with no positive count are white.
func Heatmap(h *hist.Histogram, cell int) (*image.Gray, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("%w: heatmap cell size must be positive, got %d", hist.ErrValidation, cell)
	}
	p, err := project2(h, "heatmap")
	if err != nil {
		return nil, err
	}

	// Draw one pixel per bin.
	nx, ny := p.Axis(0).Len(), p.Axis(1).Len()
	src := image.NewGray(image.Rect(0, 0, nx, ny))
	for off, f := range fractions(p.Counts()) {
		i, j := off/ny, off%ny
		src.SetGray(i, ny-1-j, color.Gray{Y: uint8(255 - f*255)})
	}

	// Scale up.
	dst := image.NewGray(image.Rect(0, 0, nx*cell, ny*cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
