// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regular(t *testing.T, lo, hi float64, n int) *Axis {
	t.Helper()
	a, err := RegularBins(lo, hi, n, "")
	require.NoError(t, err)
	return a
}

func new2D(t *testing.T, mode ErrorMode) *Histogram {
	t.Helper()
	h, err := New(mode, regular(t, 0, 4, 4), regular(t, -1, 1, 2))
	require.NoError(t, err)
	return h
}

func randomRows(r *rand.Rand, n int, dims ...[2]float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, len(dims))
		for j, d := range dims {
			// Extend a little past each axis.
			w := d[1] - d[0]
			row[j] = d[0] - 0.1*w + r.Float64()*1.2*w
		}
		rows[i] = row
	}
	return rows
}

func TestNew(t *testing.T) {
	a := regular(t, 0, 1, 2)

	h, err := New(ErrorsNone, a)
	require.NoError(t, err)
	assert.Equal(t, ErrorsNone, h.ErrorMode())
	assert.Nil(t, h.Errors())
	assert.Equal(t, []float64{0, 0}, h.Counts())

	h, err = New(ErrorsPoisson, a, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, h.Errors())
	assert.Equal(t, []int{2, 2}, h.Shape())
	assert.Equal(t, 2, h.Dim())
	assert.Equal(t, 4, h.Size())

	for _, mode := range []ErrorMode{ErrorsAdded, ErrorsSubtracted, ErrorsScaled, ErrorsDerived, ErrorMode(42), ErrorMode(-1)} {
		_, err := New(mode, a)
		assert.True(t, errors.Is(err, ErrUnsupportedErrorMode), "mode %v: got %v", mode, err)
	}

	_, err = New(ErrorsNone)
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = New(ErrorsNone, a, nil)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFill(t *testing.T) {
	h := new2D(t, ErrorsNone)

	assert.True(t, h.Fill(0, -1))
	assert.True(t, h.Fill(3.5, 0.5))
	assert.True(t, h.FillWeighted(2.5, 3.5, 0.5))
	assert.True(t, h.FillWeighted(-0.5, 1, 0))

	assert.Equal(t, 1.0, h.At(0, 0))
	assert.Equal(t, 3.5, h.At(3, 1))
	assert.Equal(t, -0.5, h.At(1, 1))
	assert.Equal(t, 4.0, h.Total())
	assert.Equal(t, []float64{1, 0, 0, -0.5, 0, 0, 0, 3.5}, h.Counts())
}

func TestFillOutOfRange(t *testing.T) {
	h := new2D(t, ErrorsNone)
	h.Fill(1, 0)
	before := h.Counts()

	for _, p := range [][]float64{
		{-0.001, 0},     // Below first lo.
		{4, 0},          // At last hi.
		{1, 1},          // Second axis at last hi.
		{1, -2},         // Second axis below.
		{math.NaN(), 0}, // Not in any bin.
		{100, 100},
	} {
		assert.False(t, h.Fill(p...), "fill %v", p)
	}
	assert.Equal(t, before, h.Counts())
}

func TestFillWrongDimensionPanics(t *testing.T) {
	h := new2D(t, ErrorsNone)
	assert.Panics(t, func() { h.Fill(1) })
	assert.Panics(t, func() { h.Fill(1, 0, 0) })
}

func TestAtPanics(t *testing.T) {
	h := new2D(t, ErrorsNone)
	assert.Panics(t, func() { h.At(4, 0) })
	assert.Panics(t, func() { h.At(0) })
}

func TestFillBulkMatchesFill(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	rows := randomRows(r, 5000, [2]float64{0, 4}, [2]float64{-1, 1})

	h1 := new2D(t, ErrorsNone)
	for _, row := range rows {
		h1.Fill(row...)
	}
	h2 := new2D(t, ErrorsNone)
	require.NoError(t, h2.FillBulk(rows))
	assert.Equal(t, h1.Counts(), h2.Counts())
	assert.Less(t, h2.Total(), float64(len(rows)), "some rows should be out of range")
}

func TestFillBulkReplaces(t *testing.T) {
	h := new2D(t, ErrorsNone)
	h.Fill(0, 0)
	h.Fill(0, 0)
	require.NoError(t, h.FillBulk([][]float64{{3, -1}}))
	assert.Equal(t, 0.0, h.At(0, 1))
	assert.Equal(t, 1.0, h.At(3, 0))
	assert.Equal(t, 1.0, h.Total())
}

func TestFillBulkWeighted(t *testing.T) {
	h := new2D(t, ErrorsNone)
	rows := [][]float64{{0, 0}, {0, 0}, {2, -1}, {9, 9}}
	require.NoError(t, h.FillBulkWeighted(rows, []float64{0.5, 0.25, -2, 100}))
	assert.Equal(t, 0.75, h.At(0, 1))
	assert.Equal(t, -2.0, h.At(2, 0))
	assert.Equal(t, -1.25, h.Total())

	err := h.FillBulkWeighted(rows, []float64{1})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFillBulkValidation(t *testing.T) {
	h := new2D(t, ErrorsPoisson)
	h.Fill(1, 0)
	before := h.Counts()
	err := h.FillBulk([][]float64{{1, 0}, {1}})
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, before, h.Counts())
	assert.Equal(t, make([]float64, h.Size()), h.Errors())
}

func TestFillBulkPoisson(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	rows := randomRows(r, 1000, [2]float64{0, 4}, [2]float64{-1, 1})
	h, err := NewFromRows(ErrorsPoisson, rows, regular(t, 0, 4, 4), regular(t, -1, 1, 2))
	require.NoError(t, err)
	counts, errs := h.Counts(), h.Errors()
	for i, c := range counts {
		assert.Equal(t, math.Sqrt(c), errs[i])
	}
}

func TestFillMatchesLinearHist(t *testing.T) {
	// Integral values avoid any rounding differences between the
	// two binning methods.
	r := rand.New(rand.NewSource(4))
	h, err := New(ErrorsNone, regular(t, 0, 20, 10))
	require.NoError(t, err)
	lh := stats.NewLinearHist(0, 20, 10)
	for i := 0; i < 2000; i++ {
		x := float64(r.Intn(20))
		h.Fill(x)
		lh.Add(x)
	}
	_, want, _ := lh.Counts()
	for i, c := range want {
		assert.Equal(t, float64(c), h.At(i), "bin %d", i)
	}
}

func TestSetCountsAndErrors(t *testing.T) {
	h := new2D(t, ErrorsPoisson)
	counts := []float64{0, 1, 4, 9, 16, 25, 36, 49}
	require.NoError(t, h.SetCounts(counts))
	counts[0] = 100
	assert.Equal(t, 0.0, h.At(0, 0))
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, h.Errors())

	require.NoError(t, h.SetErrors([]float64{1, 1, 1, 1, 1, 1, 1, 1}))
	assert.Equal(t, 1.0, h.ErrorAt(0, 0))

	h.Fill(0, -1)
	h.Fill(0, -1)
	h.Fill(0, -1)
	h.Fill(0, -1)
	require.NoError(t, h.UpdatePoissonErrors())
	assert.Equal(t, 2.0, h.ErrorAt(0, 0))

	assert.True(t, errors.Is(h.SetCounts([]float64{1}), ErrValidation))
	assert.True(t, errors.Is(h.SetErrors([]float64{1}), ErrValidation))

	n := new2D(t, ErrorsNone)
	assert.True(t, errors.Is(n.SetErrors(make([]float64, 8)), ErrUnsupportedErrorMode))
	assert.True(t, errors.Is(n.UpdatePoissonErrors(), ErrUnsupportedErrorMode))
	assert.Equal(t, 0.0, n.ErrorAt(1, 1))
}

func TestClone(t *testing.T) {
	h := new2D(t, ErrorsPoisson)
	h.Fill(1, 0)
	h.UpdatePoissonErrors()
	c := h.Clone()
	h.Fill(1, 0)
	assert.Equal(t, 1.0, c.At(1, 1))
	assert.Equal(t, 1.0, c.ErrorAt(1, 1))
	assert.True(t, c.Compatible(h))
}

func TestParseErrorMode(t *testing.T) {
	for m := ErrorsNone; m < numErrorModes; m++ {
		got, err := ParseErrorMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseErrorMode("")
	require.NoError(t, err)
	assert.Equal(t, ErrorsNone, got)

	_, err = ParseErrorMode("gaussian")
	assert.True(t, errors.Is(err, ErrUnsupportedErrorMode))
	assert.Equal(t, "ErrorMode(9)", ErrorMode(9).String())
}
