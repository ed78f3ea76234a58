// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"go.uber.org/multierr"
)

// Bin is the half-open interval [Lo, Hi).
type Bin struct {
	Lo, Hi float64
}

// Contains reports whether Lo <= v < Hi.
func (b Bin) Contains(v float64) bool {
	return b.Lo <= v && v < b.Hi
}

// Equal reports whether b and o have identical edges.
func (b Bin) Equal(o Bin) bool {
	return b.Lo == o.Lo && b.Hi == o.Hi
}

func (b Bin) Width() float64 {
	return b.Hi - b.Lo
}

func (b Bin) Center() float64 {
	return 0.5 * (b.Lo + b.Hi)
}

func (b Bin) String() string {
	return fmt.Sprintf("[%g, %g)", b.Lo, b.Hi)
}

// Axis is an ordered sequence of non-overlapping bins with an
// optional label. An Axis is never modified after construction, so
// it may be shared freely between histograms.
type Axis struct {
	bins  []Bin
	label string
}

// NewAxis returns an axis with the given bins. The bins must be
// non-empty, in increasing order, and must not overlap, although
// there may be gaps between them. Otherwise NewAxis returns an error
// wrapping ErrValidation that describes every offending bin.
func NewAxis(bins []Bin, label string) (*Axis, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w: axis %q has no bins", ErrValidation, label)
	}
	var err error
	for i, b := range bins {
		// Written to also reject NaN edges.
		if !(b.Lo < b.Hi) {
			err = multierr.Append(err, fmt.Errorf("%w: bin %d %v is empty", ErrValidation, i, b))
		}
		if i > 0 && !(bins[i-1].Hi <= b.Lo) {
			err = multierr.Append(err, fmt.Errorf("%w: bin %d %v overlaps or precedes bin %d %v", ErrValidation, i, b, i-1, bins[i-1]))
		}
	}
	if err != nil {
		return nil, err
	}
	return &Axis{append([]Bin(nil), bins...), label}, nil
}

// EdgeBins returns an axis of contiguous bins with the given edges.
// There is one fewer bin than there are edges.
func EdgeBins(edges []float64, label string) (*Axis, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: axis %q needs at least 2 edges, got %d", ErrValidation, label, len(edges))
	}
	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{edges[i], edges[i+1]}
	}
	return NewAxis(bins, label)
}

// RegularBins returns an axis with n equal-width bins spanning
// [lo, hi). The upper edge of the last bin is exactly hi.
func RegularBins(lo, hi float64, n int, label string) (*Axis, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: axis %q needs a positive number of bins, got %d", ErrValidation, label, n)
	}
	edges := vec.Linspace(lo, hi, n+1)
	edges[n] = hi
	return EdgeBins(edges, label)
}

// Regrouped returns a copy of a in which each run of grouping
// consecutive bins is merged into a single bin from the first bin's
// lower edge to the last bin's upper edge. The number of bins in a
// must be a multiple of grouping.
func Regrouped(a *Axis, grouping int) (*Axis, error) {
	if grouping <= 0 {
		return nil, fmt.Errorf("%w: grouping must be positive, got %d", ErrValidation, grouping)
	}
	if len(a.bins)%grouping != 0 {
		return nil, fmt.Errorf("%w: %d bins of axis %q are not divisible by grouping %d", ErrValidation, len(a.bins), a.label, grouping)
	}
	bins := make([]Bin, len(a.bins)/grouping)
	for k := range bins {
		bins[k] = Bin{a.bins[k*grouping].Lo, a.bins[(k+1)*grouping-1].Hi}
	}
	return &Axis{bins, a.label}, nil
}

func (a *Axis) Label() string {
	return a.label
}

// Len returns the number of bins in a.
func (a *Axis) Len() int {
	return len(a.bins)
}

// Bin returns the i'th bin of a.
func (a *Axis) Bin(i int) Bin {
	return a.bins[i]
}

// Bins returns a copy of the bins of a.
func (a *Axis) Bins() []Bin {
	return append([]Bin(nil), a.bins...)
}

// Lo returns the lower edge of the first bin.
func (a *Axis) Lo() float64 {
	return a.bins[0].Lo
}

// Hi returns the upper edge of the last bin.
func (a *Axis) Hi() float64 {
	return a.bins[len(a.bins)-1].Hi
}

// Edges returns the lower edge of every bin followed by the upper
// edge of the last bin. For an axis without gaps these describe the
// bins exactly.
func (a *Axis) Edges() []float64 {
	edges := make([]float64, len(a.bins)+1)
	for i, b := range a.bins {
		edges[i] = b.Lo
	}
	edges[len(a.bins)] = a.Hi()
	return edges
}

// Centers returns the midpoint of every bin.
func (a *Axis) Centers() []float64 {
	cs := make([]float64, len(a.bins))
	for i, b := range a.bins {
		cs[i] = b.Center()
	}
	return cs
}

// Contains reports whether v lies between the lower edge of the
// first bin and the upper edge of the last bin. v may still fall in
// a gap between bins; use Index to find the bin itself.
func (a *Axis) Contains(v float64) bool {
	return a.Lo() <= v && v < a.Hi()
}

// Equal reports whether a and o have the same bins. Labels are not
// compared.
func (a *Axis) Equal(o *Axis) bool {
	if len(a.bins) != len(o.bins) {
		return false
	}
	for i, b := range a.bins {
		if !b.Equal(o.bins[i]) {
			return false
		}
	}
	return true
}

// Index returns the index of the bin containing v. If no bin
// contains v, it returns -1, false.
func (a *Axis) Index(v float64) (int, bool) {
	// Find the last bin whose lower edge is <= v.
	i := sort.Search(len(a.bins), func(i int) bool {
		return a.bins[i].Lo > v
	}) - 1
	if i < 0 || !a.bins[i].Contains(v) {
		return -1, false
	}
	return i, true
}
