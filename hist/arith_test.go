// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, mode ErrorMode, seed int64) *Histogram {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := randomRows(r, 2000, [2]float64{0, 4}, [2]float64{-1, 1})
	h := new2D(t, mode)
	require.NoError(t, h.FillBulk(rows))
	return h
}

func TestAddSub(t *testing.T) {
	// Independently filled, identical histograms.
	h1 := filled(t, ErrorsNone, 1)
	h2 := filled(t, ErrorsNone, 1)
	h3 := filled(t, ErrorsNone, 1)

	sum, err := h1.Add(h2)
	require.NoError(t, err)
	got, err := sum.Sub(h3)
	require.NoError(t, err)
	assert.Equal(t, h1.Counts(), got.Counts())
	assert.Equal(t, ErrorsNone, got.ErrorMode())
	assert.Nil(t, got.Errors())

	for i, c := range sum.Counts() {
		assert.Equal(t, 2*h1.Counts()[i], c)
	}
}

func TestMulDiv(t *testing.T) {
	h := filled(t, ErrorsNone, 2)
	for _, c := range []float64{0.01, 5, -3, 1e6} {
		got := h.Mul(c).Div(c)
		assert.InDeltaSlice(t, h.Counts(), got.Counts(), 1e-9, "c=%v", c)
		assert.Equal(t, ErrorsNone, got.ErrorMode())
	}
}

func TestDivByZero(t *testing.T) {
	h := new2D(t, ErrorsNone)
	h.Fill(0, 0)
	got := h.Div(0)
	assert.True(t, math.IsInf(got.At(0, 1), 1))
	assert.True(t, math.IsNaN(got.At(0, 0)))
}

func TestErrorPropagation(t *testing.T) {
	h1 := filled(t, ErrorsPoisson, 3)
	h2 := filled(t, ErrorsPoisson, 4)
	e1, e2 := h1.Errors(), h2.Errors()

	sum, err := h1.Add(h2)
	require.NoError(t, err)
	assert.Equal(t, ErrorsAdded, sum.ErrorMode())
	diff, err := h1.Sub(h2)
	require.NoError(t, err)
	assert.Equal(t, ErrorsSubtracted, diff.ErrorMode())
	for i := range e1 {
		want := math.Sqrt(e1[i]*e1[i] + e2[i]*e2[i])
		assert.InDelta(t, want, sum.Errors()[i], 1e-12)
		assert.InDelta(t, want, diff.Errors()[i], 1e-12)
	}

	scaled := h1.Mul(2)
	assert.Equal(t, ErrorsScaled, scaled.ErrorMode())
	divided := h1.Div(4)
	assert.Equal(t, ErrorsScaled, divided.ErrorMode())
	for i, e := range e1 {
		assert.Equal(t, 2*e, scaled.Errors()[i])
		assert.Equal(t, e/4, divided.Errors()[i])
	}

	// Derived modes still propagate.
	again, err := sum.Add(scaled)
	require.NoError(t, err)
	assert.Equal(t, ErrorsAdded, again.ErrorMode())
}

func TestErrorModeNoneWins(t *testing.T) {
	hp := filled(t, ErrorsPoisson, 5)
	hn := filled(t, ErrorsNone, 6)
	for _, f := range []func() (*Histogram, error){
		func() (*Histogram, error) { return hp.Add(hn) },
		func() (*Histogram, error) { return hn.Add(hp) },
		func() (*Histogram, error) { return hp.Sub(hn) },
	} {
		got, err := f()
		require.NoError(t, err)
		assert.Equal(t, ErrorsNone, got.ErrorMode())
		assert.Nil(t, got.Errors())
	}
}

func TestIncompatibleAxes(t *testing.T) {
	h1 := filled(t, ErrorsPoisson, 7)
	c1, e1 := h1.Counts(), h1.Errors()

	a0, _ := RegularBins(0, 4, 4, "")
	a1, _ := RegularBins(-1, 2, 2, "")
	h2, err := New(ErrorsPoisson, a0, a1)
	require.NoError(t, err)
	h2.Fill(1, 1)
	c2 := h2.Counts()

	_, err = h1.Add(h2)
	assert.True(t, errors.Is(err, ErrIncompatibleAxes))
	_, err = h2.Sub(h1)
	assert.True(t, errors.Is(err, ErrIncompatibleAxes))

	h3, err := New(ErrorsNone, a0)
	require.NoError(t, err)
	_, err = h1.Add(h3)
	assert.True(t, errors.Is(err, ErrIncompatibleAxes))

	assert.Equal(t, c1, h1.Counts())
	assert.Equal(t, e1, h1.Errors())
	assert.Equal(t, c2, h2.Counts())
}

func TestCompatibleIgnoresLabels(t *testing.T) {
	a, _ := RegularBins(0, 1, 2, "a")
	b, _ := RegularBins(0, 1, 2, "b")
	ha, _ := New(ErrorsNone, a)
	hb, _ := New(ErrorsNone, b)
	ha.Fill(0.25)
	hb.Fill(0.75)
	sum, err := ha.Add(hb)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, sum.Counts())
	assert.Equal(t, "a", sum.Axis(0).Label())
}
