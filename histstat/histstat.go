// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histstat computes summary statistics of histograms.
//
// Statistics describe the projection of a histogram onto its first
// axis. Each bin contributes its count as the weight of its center
// (for moments) or as mass spread uniformly over the bin (for
// quantiles). Negative counts are treated as zero.
package histstat

import (
	"math"

	"github.com/aclements/go-binhist/hist"
	"github.com/aclements/go-moremath/stats"
)

// Summary is a summary of the first axis of a histogram.
type Summary struct {
	Total  float64
	Mean   float64
	StdDev float64
	Median float64
	IQR    float64
}

// Summarize returns the summary statistics of h. Statistics of a
// histogram with no positive counts are NaN.
func Summarize(h *hist.Histogram) Summary {
	s := sampleOf(h)
	return Summary{
		Total:  h.Total(),
		Mean:   mean(s),
		StdDev: stdDev(s),
		Median: Quantile(h, 0.5),
		IQR:    IQR(h),
	}
}

// Mean returns the count-weighted mean of the bin centers of h.
func Mean(h *hist.Histogram) float64 {
	return mean(sampleOf(h))
}

// StdDev returns the count-weighted population standard deviation of
// the bin centers of h.
func StdDev(h *hist.Histogram) float64 {
	return stdDev(sampleOf(h))
}

// Quantile returns the value below which a fraction q of the counts of
// h fall, interpolating linearly within a bin. Quantiles are resolved
// to one part in 2^20 of the total count. Quantile(h, 1) is the upper edge of the last
// non-empty bin. Quantile returns NaN if h has no counts or q is
// outside (0, 1].
func Quantile(h *hist.Histogram, q float64) float64 {
	qh := quantileHistOf(h)
	if q == 1 {
		for i := len(qh.counts) - 1; i >= 0; i-- {
			if qh.counts[i] > 0 {
				return qh.axis.Bin(i).Hi
			}
		}
		return math.NaN()
	}
	if !(q > 0 && q < 1) {
		return math.NaN()
	}
	return stats.HistogramQuantile(qh, q)
}

// IQR returns the interquartile range of h.
func IQR(h *hist.Histogram) float64 {
	return stats.HistogramIQR(quantileHistOf(h))
}

func project1(h *hist.Histogram) *hist.Histogram {
	if h.Dim() == 1 {
		return h
	}
	p, err := hist.Projected(h, 0)
	if err != nil {
		panic(err)
	}
	return p
}

// sampleOf returns the centers of the bins of the first axis of h
// with a positive count, weighted by their counts.
func sampleOf(h *hist.Histogram) stats.Sample {
	p := project1(h)
	centers := p.Axis(0).Centers()
	var s stats.Sample
	for i, w := range p.Counts() {
		if w > 0 {
			s.Xs = append(s.Xs, centers[i])
			s.Weights = append(s.Weights, w)
		}
	}
	return s
}

func mean(s stats.Sample) float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	return s.Mean()
}

// stdDev computes the weighted population standard deviation of s.
func stdDev(s stats.Sample) float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	m := s.Mean()
	var ss, wsum float64
	for i, x := range s.Xs {
		d := x - m
		ss += s.Weights[i] * d * d
		wsum += s.Weights[i]
	}
	return math.Sqrt(ss / wsum)
}

// quantileHist presents one axis of a histogram as a stats.Histogram.
type quantileHist struct {
	axis   *hist.Axis
	counts []uint
}

// quantileResolution is the total count a histogram is rescaled to
// before computing quantiles.
const quantileResolution = 1 << 20

// quantileHistOf returns the first axis of h with its positive counts
// rescaled to integers summing to about quantileResolution.
func quantileHistOf(h *hist.Histogram) *quantileHist {
	p := project1(h)
	cs := p.Counts()
	total := 0.0
	for _, c := range cs {
		if c > 0 {
			total += c
		}
	}
	counts := make([]uint, len(cs))
	if total > 0 && !math.IsInf(total, 0) {
		for i, c := range cs {
			if c > 0 {
				counts[i] = uint(math.Round(c / total * quantileResolution))
			}
		}
	}
	return &quantileHist{p.Axis(0), counts}
}

func (q *quantileHist) Add(x float64) {
	panic("histstat: quantileHist is read-only")
}

func (q *quantileHist) Counts() (uint, []uint, uint) {
	return 0, q.counts, 0
}

func (q *quantileHist) BinToValue(bin float64) float64 {
	if bin >= float64(q.axis.Len()) {
		return q.axis.Hi()
	}
	i := int(math.Floor(bin))
	if i < 0 {
		return q.axis.Lo()
	}
	b := q.axis.Bin(i)
	return b.Lo + (bin-float64(i))*b.Width()
}
