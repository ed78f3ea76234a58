// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist_test

import (
	"fmt"

	"github.com/aclements/go-binhist/hist"
)

func ExampleRegularBins() {
	a, err := hist.RegularBins(0, 10, 5, "x")
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Bins())
	// Output:
	// [[0, 2) [2, 4) [4, 6) [6, 8) [8, 10)]
}

func ExampleRegrouped() {
	a, _ := hist.RegularBins(0, 12, 6, "x")
	r, _ := hist.Regrouped(a, 3)
	fmt.Println(r.Bins())
	_, err := hist.Regrouped(a, 4)
	fmt.Println(err)
	// Output:
	// [[0, 6) [6, 12)]
	// hist: validation error: 6 bins of axis "x" are not divisible by grouping 4
}

func ExampleHistogram_Fill() {
	x, _ := hist.RegularBins(0, 3, 3, "x")
	y, _ := hist.RegularBins(0, 2, 2, "y")
	h, _ := hist.New(hist.ErrorsNone, x, y)

	h.Fill(0.5, 0.5)
	h.Fill(2.5, 1.5)
	h.FillWeighted(0.5, 2.5, 1.5)
	fmt.Println(h.Fill(3, 0)) // Out of range.

	p, _ := hist.Projected(h, 0)
	fmt.Println(h.Counts(), p.Counts())
	// Output:
	// false
	// [1 0 0 0 0 1.5] [1 0 1.5]
}

func ExampleHistogram_Add() {
	x, _ := hist.RegularBins(0, 2, 2, "")
	a, _ := hist.NewFromRows(hist.ErrorsPoisson, [][]float64{{0}, {0}, {0}, {0}, {1}}, x)
	b, _ := hist.NewFromRows(hist.ErrorsPoisson, [][]float64{{0}, {0}, {0}, {0}, {0}, {1}, {1}, {1}, {1}}, x)

	sum, _ := a.Add(b)
	fmt.Println(sum.Counts(), sum.Errors(), sum.ErrorMode())
	// Output:
	// [9 5] [3 2.23606797749979] added
}
