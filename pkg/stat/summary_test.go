package stat

import (
	"testing"

	"github.com/boxkit/boxkit/pkg/errors"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "even count no outliers",
			values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			want: Summary{
				Min: 2, Low: 2, Q1: 4, Median: 4.5, Q3: 6, High: 9, Max: 9,
				IQR: 2, Outliers: []float64{},
			},
		},
		{
			name:   "even count textbook",
			values: []float64{48, 52, 57, 64, 72, 76, 77, 81, 85, 88},
			want: Summary{
				Min: 48, Low: 48, Q1: 57, Median: 74, Q3: 81, High: 88, Max: 88,
				IQR: 24, Outliers: []float64{},
			},
		},
		{
			name:   "odd count with low outliers",
			values: []float64{5, 6, 48, 52, 57, 61, 64, 72, 76, 77, 81, 85, 88},
			want: Summary{
				Min: 5, Low: 48, Q1: 50, Median: 64, Q3: 79, High: 88, Max: 88,
				IQR: 29, Outliers: []float64{5, 6},
			},
		},
		{
			name:   "unsorted input",
			values: []float64{9, 2, 5, 4, 7, 4, 5, 4},
			want: Summary{
				Min: 2, Low: 2, Q1: 4, Median: 4.5, Q3: 6, High: 9, Max: 9,
				IQR: 2, Outliers: []float64{},
			},
		},
		{
			name:   "single value",
			values: []float64{10},
			want: Summary{
				Min: 10, Low: 10, Q1: 10, Median: 10, Q3: 10, High: 10, Max: 10,
				IQR: 0, Outliers: []float64{},
			},
		},
		{
			name:   "all equal",
			values: []float64{3, 3, 3, 3, 3},
			want: Summary{
				Min: 3, Low: 3, Q1: 3, Median: 3, Q3: 3, High: 3, Max: 3,
				IQR: 0, Outliers: []float64{},
			},
		},
		{
			name:   "two values",
			values: []float64{1, 5},
			want: Summary{
				Min: 1, Low: 1, Q1: 1, Median: 3, Q3: 5, High: 5, Max: 5,
				IQR: 4, Outliers: []float64{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(Series{Name: "s", Values: tt.values}, DefaultWhiskerK)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			assertSummary(t, got, tt.want)
		})
	}
}

func assertSummary(t *testing.T, got, want Summary) {
	t.Helper()
	if got.Min != want.Min || got.Max != want.Max {
		t.Errorf("Min/Max = %v/%v, want %v/%v", got.Min, got.Max, want.Min, want.Max)
	}
	if got.Q1 != want.Q1 || got.Median != want.Median || got.Q3 != want.Q3 {
		t.Errorf("Q1/Median/Q3 = %v/%v/%v, want %v/%v/%v",
			got.Q1, got.Median, got.Q3, want.Q1, want.Median, want.Q3)
	}
	if got.Low != want.Low || got.High != want.High {
		t.Errorf("Low/High = %v/%v, want %v/%v", got.Low, got.High, want.Low, want.High)
	}
	if got.IQR != want.IQR {
		t.Errorf("IQR = %v, want %v", got.IQR, want.IQR)
	}
	if len(got.Outliers) != len(want.Outliers) {
		t.Fatalf("Outliers = %v, want %v", got.Outliers, want.Outliers)
	}
	for i := range got.Outliers {
		if got.Outliers[i] != want.Outliers[i] {
			t.Errorf("Outliers = %v, want %v", got.Outliers, want.Outliers)
			break
		}
	}
}

func TestSummarizeEmptySeries(t *testing.T) {
	_, err := Summarize(Series{Name: "empty"}, DefaultWhiskerK)
	if err == nil {
		t.Fatal("Summarize() error = nil, want INVALID_SERIES")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSeries) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSeries)
	}
}

func TestSummarizeFenceBoundaryInclusive(t *testing.T) {
	// Q1=4, Q3=6, IQR=2: fences at 1 and 9. Values exactly on a fence must
	// not be classified as outliers.
	got, err := Summarize(Series{Name: "s", Values: []float64{1, 4, 4, 4, 5, 5, 7, 9}}, DefaultWhiskerK)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got.Outliers) != 0 {
		t.Errorf("Outliers = %v, want none (boundary is inclusive)", got.Outliers)
	}
	if got.Low != 1 || got.High != 9 {
		t.Errorf("Low/High = %v/%v, want 1/9", got.Low, got.High)
	}
}

func TestSummarizeOrderingInvariant(t *testing.T) {
	seqs := [][]float64{
		{2, 4, 4, 4, 5, 5, 7, 9},
		{1, 1, 1, 1, 100},
		{-5, -2, 0, 3, 8, 13, 21},
		{0.5},
		{3, 3, 3},
		{-1000, 0, 1000},
	}
	for _, values := range seqs {
		got, err := Summarize(Series{Name: "s", Values: values}, DefaultWhiskerK)
		if err != nil {
			t.Fatalf("Summarize(%v) error = %v", values, err)
		}
		if !(got.Min <= got.Q1 && got.Q1 <= got.Median && got.Median <= got.Q3 && got.Q3 <= got.Max) {
			t.Errorf("ordering violated for %v: %+v", values, got)
		}
		if !(got.Min <= got.Low && got.Low <= got.Q1 && got.Q3 <= got.High && got.High <= got.Max) {
			t.Errorf("whisker bounds violated for %v: %+v", values, got)
		}
	}
}

func TestSummarizeAllOutliers(t *testing.T) {
	// A tight quartile cluster with extreme tails: whiskers must not reach
	// past the fences.
	got, err := Summarize(Series{Name: "s", Values: []float64{-1000, 5, 5, 5, 5, 5, 5, 1000}}, DefaultWhiskerK)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got.Outliers) != 2 {
		t.Fatalf("Outliers = %v, want [-1000 1000]", got.Outliers)
	}
	if got.Low != 5 || got.High != 5 {
		t.Errorf("Low/High = %v/%v, want 5/5", got.Low, got.High)
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 2, 5}
	if _, err := Summarize(Series{Name: "s", Values: values}, DefaultWhiskerK); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if values[0] != 9 || values[1] != 2 || values[2] != 5 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestSummarizeCustomMultiplier(t *testing.T) {
	// With k=0 the fences collapse to the quartiles themselves; values at
	// the quartiles stay inside (inclusive boundary).
	got, err := Summarize(Series{Name: "s", Values: []float64{1, 4, 4, 4, 5, 5, 7, 9}}, 0)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got.Outliers) != 3 {
		t.Errorf("Outliers = %v, want [1 7 9]", got.Outliers)
	}
	if got.Low != 4 || got.High != 5 {
		t.Errorf("Low/High = %v/%v, want 4/5", got.Low, got.High)
	}
}
