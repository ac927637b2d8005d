package cli

import (
	"strings"
	"testing"

	"github.com/boxkit/boxkit/pkg/stat"
)

func TestSummaryTable(t *testing.T) {
	summaries := []stat.Summary{
		{Name: "api-a", Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5, IQR: 2, Outliers: []float64{}},
		{Name: "api-b", Min: 0.5, Q1: 1.5, Median: 2.5, Q3: 3.5, Max: 9, IQR: 2, Outliers: []float64{9}},
	}

	out := summaryTable(summaries)

	for _, want := range []string{"Series", "Median", "Outliers", "api-a", "api-b", "2.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// One header row plus one row per series, plus borders.
	if lines := strings.Count(out, "\n"); lines < 4 {
		t.Errorf("table has %d lines, want at least 4", lines)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 20, want: "20"},
		{in: 0.5, want: "0.5"},
		{in: -3.25, want: "-3.25"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
