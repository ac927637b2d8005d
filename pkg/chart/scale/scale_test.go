package scale

import (
	"math"
	"testing"

	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/stat"
)

func TestBuildSharedAxis(t *testing.T) {
	// Two series far apart: A=[1..5], B=[100..104]. The axis must cover
	// [1,104] and round outward with a nice step.
	summaries := []stat.Summary{
		{Name: "A", Min: 1, Max: 5},
		{Name: "B", Min: 100, Max: 104},
	}

	axis, err := Build(summaries, Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if axis.Lo != 0 || axis.Hi != 120 || axis.Step != 20 {
		t.Fatalf("axis = [%v,%v] step %v, want [0,120] step 20", axis.Lo, axis.Hi, axis.Step)
	}
	want := []float64{0, 20, 40, 60, 80, 100, 120}
	if len(axis.Ticks) != len(want) {
		t.Fatalf("Ticks = %v, want %v", axis.Ticks, want)
	}
	for i, tick := range axis.Ticks {
		if tick != want[i] {
			t.Errorf("Ticks[%d] = %v, want %v", i, tick, want[i])
		}
	}
}

func TestBuildNoData(t *testing.T) {
	_, err := Build(nil, Default())
	if err == nil {
		t.Fatal("Build() error = nil, want NO_DATA")
	}
	if !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeNoData)
	}
}

func TestBuildDegenerateRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "small value", value: 10},
		{name: "zero", value: 0},
		{name: "large value", value: 5000},
		{name: "negative", value: -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := Build([]stat.Summary{{Min: tt.value, Max: tt.value}}, Default())
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if axis.Hi <= axis.Lo {
				t.Errorf("axis = [%v,%v], want non-zero extent", axis.Lo, axis.Hi)
			}
			if !axis.Contains(tt.value) {
				t.Errorf("axis [%v,%v] does not contain %v", axis.Lo, axis.Hi, tt.value)
			}
		})
	}
}

func TestBuildCoversOutliers(t *testing.T) {
	// Min/Max include outliers, so the axis has to cover them too.
	summaries := []stat.Summary{
		{Min: -30, Low: 2, Q1: 4, Median: 5, Q3: 6, High: 9, Max: 250},
	}
	axis, err := Build(summaries, Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !axis.Contains(-30) || !axis.Contains(250) {
		t.Errorf("axis [%v,%v] must contain -30 and 250", axis.Lo, axis.Hi)
	}
}

func TestNiceTickBand(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{name: "unit range", lo: 0, hi: 1},
		{name: "small fraction", lo: 0.03, hi: 0.07},
		{name: "wide range", lo: -1234, hi: 98765},
		{name: "offset range", lo: 17, hi: 23},
		{name: "negative range", lo: -96, hi: -3},
		{name: "crossing zero", lo: -0.5, hi: 11},
	}

	band := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nlo, nhi, step := Nice(tt.lo, tt.hi, band)
			if nlo > tt.lo || nhi < tt.hi {
				t.Errorf("Nice(%v,%v) = [%v,%v], does not cover input", tt.lo, tt.hi, nlo, nhi)
			}
			n := int(math.Round((nhi-nlo)/step)) + 1
			if n < band.Min || n > band.Max {
				t.Errorf("Nice(%v,%v) step %v gives %d ticks, want %d-%d",
					tt.lo, tt.hi, step, n, band.Min, band.Max)
			}
			if !niceStep(step) {
				t.Errorf("step %v is not a 1/2/5 multiple of a power of ten", step)
			}
		})
	}
}

// niceStep reports whether step is of the form {1,2,5} * 10^n.
func niceStep(step float64) bool {
	exp := math.Floor(math.Log10(step))
	m := step / math.Pow(10, exp)
	for _, want := range []float64{1, 2, 5, 10} {
		if math.Abs(m-want) < 1e-9 {
			return true
		}
	}
	return false
}

func TestNiceCustomBand(t *testing.T) {
	// A tighter band forces a coarser step for the same range.
	nlo, nhi, step := Nice(1, 104, TickBand{Min: 2, Max: 5})
	if step != 50 {
		t.Errorf("step = %v, want 50", step)
	}
	if nlo != 0 || nhi != 150 {
		t.Errorf("range = [%v,%v], want [0,150]", nlo, nhi)
	}
}

func TestTicksEndExactlyOnBounds(t *testing.T) {
	axis, err := Build([]stat.Summary{{Min: 0.03, Max: 0.07}}, Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if axis.Ticks[0] != axis.Lo {
		t.Errorf("first tick = %v, want %v", axis.Ticks[0], axis.Lo)
	}
	if axis.Ticks[len(axis.Ticks)-1] != axis.Hi {
		t.Errorf("last tick = %v, want %v", axis.Ticks[len(axis.Ticks)-1], axis.Hi)
	}
}
