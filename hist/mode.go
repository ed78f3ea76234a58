// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import "fmt"

// ErrorMode records how the error array of a Histogram was derived.
//
// A histogram is constructed with ErrorsNone or ErrorsPoisson. The
// other modes are produced only by transforms:
//
//	Add, Sub of two histograms with errors  ErrorsAdded, ErrorsSubtracted
//	Mul, Div by a scalar                    ErrorsScaled
//	Projected, Rebinned                     ErrorsDerived
//
// Any operation that involves a histogram in ErrorsNone produces a
// histogram in ErrorsNone.
type ErrorMode int

const (
	// ErrorsNone means no errors are tracked.
	ErrorsNone ErrorMode = iota

	// ErrorsPoisson means errors are the square root of the
	// counts. They are recomputed when the counts are replaced
	// in bulk.
	ErrorsPoisson

	// ErrorsAdded and ErrorsSubtracted mean errors are the
	// quadrature sum of the errors of two operands.
	ErrorsAdded
	ErrorsSubtracted

	// ErrorsScaled means errors were multiplied or divided by the
	// same scalar as the counts.
	ErrorsScaled

	// ErrorsDerived means errors were combined in quadrature by
	// summing bins, as projection and rebinning do.
	ErrorsDerived

	numErrorModes
)

var errorModeNames = [numErrorModes]string{
	ErrorsNone:       "none",
	ErrorsPoisson:    "poisson",
	ErrorsAdded:      "added",
	ErrorsSubtracted: "subtracted",
	ErrorsScaled:     "scaled",
	ErrorsDerived:    "derived",
}

func (m ErrorMode) valid() bool {
	return 0 <= m && m < numErrorModes
}

func (m ErrorMode) String() string {
	if m.valid() {
		return errorModeNames[m]
	}
	return fmt.Sprintf("ErrorMode(%d)", int(m))
}

// ParseErrorMode returns the ErrorMode whose String is s. The empty
// string is ErrorsNone.
func ParseErrorMode(s string) (ErrorMode, error) {
	if s == "" {
		return ErrorsNone, nil
	}
	for m, name := range errorModeNames {
		if name == s {
			return ErrorMode(m), nil
		}
	}
	return ErrorsNone, fmt.Errorf("%w: %q", ErrUnsupportedErrorMode, s)
}
