// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import "errors"

// Errors returned by this package wrap one of these values and can
// be matched with errors.Is.
var (
	// ErrValidation indicates malformed bins or axes, a bad
	// regrouping factor, or arguments that do not fit the shape
	// of a histogram.
	ErrValidation = errors.New("hist: validation error")

	// ErrIncompatibleAxes indicates arithmetic between histograms
	// whose axes have different bins.
	ErrIncompatibleAxes = errors.New("hist: incompatible axes")

	// ErrDimensionality indicates an operation that needs more
	// axes than the histogram has.
	ErrDimensionality = errors.New("hist: wrong dimensionality")

	// ErrUnsupportedErrorMode indicates an error mode that is not
	// recognized or not allowed for the requested operation.
	ErrUnsupportedErrorMode = errors.New("hist: unsupported error mode")
)
