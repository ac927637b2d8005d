// Package stat computes five-number summaries and outlier sets for plot
// series.
//
// The quartile convention is fixed: the median is the middle value (odd
// count) or the mean of the two middle values (even count); Q1 and Q3 are
// the medians of the lower and upper halves, where an even-count sequence
// splits into its first and last n/2 values and an odd-count sequence
// excludes the median element from both halves. Outliers are classified
// against Tukey fences at Q1-k*IQR and Q3+k*IQR with an inclusive
// boundary: values exactly on a fence are not outliers.
package stat

import (
	"slices"

	"github.com/boxkit/boxkit/pkg/errors"
)

// DefaultWhiskerK is the standard Tukey fence multiplier.
const DefaultWhiskerK = 1.5

// Series is a named, ordered sequence of numeric values. Duplicates are
// allowed. A Series is treated as immutable once loaded.
type Series struct {
	Name   string
	Values []float64
}

// Summary is the five-number summary of a single series plus its outliers.
//
// Min and Max span the full data including outliers. Low and High are the
// whisker bounds: the most extreme values still inside the fences. The
// invariant Min <= Low <= Q1 <= Median <= Q3 <= High <= Max always holds.
type Summary struct {
	Name     string    `json:"name"`
	Min      float64   `json:"min"`
	Low      float64   `json:"low"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	High     float64   `json:"high"`
	Max      float64   `json:"max"`
	IQR      float64   `json:"iqr"`
	Outliers []float64 `json:"outliers"` // ascending; empty slice when none
}

// Summarize computes the Summary of s using fence multiplier k.
// It fails with an INVALID_SERIES error when the series has no values.
// The input slice is not modified.
func Summarize(s Series, k float64) (Summary, error) {
	if len(s.Values) == 0 {
		return Summary{}, errors.New(errors.ErrCodeInvalidSeries, "series %q has no values", s.Name)
	}

	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)
	n := len(sorted)

	sum := Summary{
		Name:   s.Name,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median(sorted),
	}

	lower, upper := halves(sorted)
	sum.Q1 = median(lower)
	sum.Q3 = median(upper)
	sum.IQR = sum.Q3 - sum.Q1

	loFence := sum.Q1 - k*sum.IQR
	hiFence := sum.Q3 + k*sum.IQR

	// Whiskers reach the most extreme values inside the fences, not the
	// fences themselves. If every value is outside, they collapse to the
	// quartiles.
	sum.Low, sum.High = sum.Q1, sum.Q3
	foundInside := false
	sum.Outliers = []float64{}
	for _, v := range sorted {
		if v < loFence || v > hiFence {
			sum.Outliers = append(sum.Outliers, v)
			continue
		}
		if !foundInside || v < sum.Low {
			sum.Low = v
		}
		if !foundInside || v > sum.High {
			sum.High = v
		}
		foundInside = true
	}

	return sum, nil
}

// median returns the middle value of an ascending slice, or the mean of
// the two middle values for even lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// halves splits an ascending slice for quartile computation. Even lengths
// split into the first and last n/2 values; odd lengths exclude the median
// element from both halves. A single-element slice is its own half on both
// sides so that Q1 and Q3 degenerate to the value itself.
func halves(sorted []float64) (lower, upper []float64) {
	n := len(sorted)
	if n == 1 {
		return sorted, sorted
	}
	mid := n / 2
	if n%2 == 0 {
		return sorted[:mid], sorted[mid:]
	}
	return sorted[:mid], sorted[mid+1:]
}
