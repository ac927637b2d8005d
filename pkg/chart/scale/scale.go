// Package scale derives the shared Y axis for a chart from a set of series
// summaries.
//
// The axis always covers the union of every series' full data range,
// outliers included, and its bounds are rounded outward to "nice" numbers:
// multiples of 1, 2 or 5 scaled by a power of ten, chosen so the tick count
// lands inside a configurable target band.
package scale

import (
	"math"

	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/stat"
)

// Default tick count band.
const (
	DefaultMinTicks = 4
	DefaultMaxTicks = 10
)

// TickBand is the inclusive target range for the number of axis ticks.
type TickBand struct {
	Min int
	Max int
}

// Default returns the standard 4-10 tick band.
func Default() TickBand {
	return TickBand{Min: DefaultMinTicks, Max: DefaultMaxTicks}
}

// Axis is a derived numeric axis: a range [Lo, Hi] and the ordered tick
// values covering it. Step is the distance between adjacent ticks.
type Axis struct {
	Lo    float64
	Hi    float64
	Step  float64
	Ticks []float64
}

// Contains reports whether v lies inside the axis range.
func (a Axis) Contains(v float64) bool {
	return v >= a.Lo && v <= a.Hi
}

// Build derives one Axis shared by every series. The axis covers the global
// [min, max] over all summaries (outliers included in Min/Max) rounded
// outward to nice boundaries. It fails with a NO_DATA error when summaries
// is empty.
func Build(summaries []stat.Summary, band TickBand) (Axis, error) {
	if len(summaries) == 0 {
		return Axis{}, errors.New(errors.ErrCodeNoData, "no series supplied")
	}
	if band.Min <= 0 || band.Max < band.Min {
		band = Default()
	}

	gmin, gmax := summaries[0].Min, summaries[0].Max
	for _, s := range summaries[1:] {
		gmin = math.Min(gmin, s.Min)
		gmax = math.Max(gmax, s.Max)
	}

	// All-equal data across every series produces a zero-height range;
	// expand symmetrically so the axis keeps a usable extent.
	if gmin == gmax {
		pad := math.Max(1, 0.05*math.Abs(gmin))
		gmin -= pad
		gmax += pad
	}

	lo, hi, step := Nice(gmin, gmax, band)
	return Axis{Lo: lo, Hi: hi, Step: step, Ticks: ticks(lo, hi, step)}, nil
}

// Nice rounds the range [lo, hi] outward to nice boundaries. The step is
// the smallest value of the form {1,2,5}*10^n for which the outward-rounded
// range needs no more than band.Max ticks; for non-degenerate ranges the
// resulting count also stays at or above band.Min. Nice is a pure function
// with no drawing context, usable on its own.
func Nice(lo, hi float64, band TickBand) (nlo, nhi, step float64) {
	span := hi - lo
	// Start below the finest step that could possibly satisfy the band and
	// grow through the 1-2-5 sequence until the tick count fits.
	exp := math.Floor(math.Log10(span / float64(band.Max)))
	mantissas := []float64{1, 2, 5}
	for i := 0; ; i++ {
		step = mantissas[i%3] * math.Pow(10, exp+float64(i/3))
		nlo = math.Floor(lo/step) * step
		nhi = math.Ceil(hi/step) * step
		if count(nlo, nhi, step) <= band.Max {
			return nlo, nhi, step
		}
	}
}

// count is the number of ticks from lo to hi inclusive at the given step.
func count(lo, hi, step float64) int {
	return int(math.Round((hi-lo)/step)) + 1
}

// ticks produces the ordered tick sequence from lo to hi inclusive.
// Values are computed by multiplication rather than repeated addition so
// that the final tick lands exactly on hi.
func ticks(lo, hi, step float64) []float64 {
	n := count(lo, hi, step)
	out := make([]float64, n)
	for i := 0; i < n-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
