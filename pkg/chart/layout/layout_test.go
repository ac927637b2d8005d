package layout

import (
	"testing"

	"github.com/boxkit/boxkit/pkg/chart/scale"
	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/stat"
)

// testConfig returns a config with round numbers that make mapped
// coordinates easy to verify by hand: a 100x100 plot area at offset
// (10,10).
func testConfig() Config {
	return Config{
		Width:      120,
		Height:     120,
		Margins:    Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
		SlotGap:    0,
		BoxPadding: 5,
	}
}

func testAxis() scale.Axis {
	return scale.Axis{Lo: 0, Hi: 100, Step: 20, Ticks: []float64{0, 20, 40, 60, 80, 100}}
}

func TestMapperY(t *testing.T) {
	m, err := NewMapper(testConfig(), testAxis(), 1)
	if err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "axis high maps to plot top", value: 100, want: 10},
		{name: "axis low maps to plot bottom", value: 0, want: 110},
		{name: "midpoint", value: 50, want: 60},
		{name: "quarter", value: 75, want: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Y(tt.value); got != tt.want {
				t.Errorf("Y(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMapperYInversion(t *testing.T) {
	m, err := NewMapper(testConfig(), testAxis(), 1)
	if err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}
	// Larger data values must map to smaller drawing coordinates.
	if m.Y(80) >= m.Y(20) {
		t.Errorf("Y(80) = %v, Y(20) = %v: inversion lost", m.Y(80), m.Y(20))
	}
}

func TestMapperSlots(t *testing.T) {
	cfg := testConfig()
	cfg.SlotGap = 10 // 4 slots + 3 gaps: slotW = (100-30)/4 = 17.5

	m, err := NewMapper(cfg, testAxis(), 4)
	if err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}
	if m.SlotWidth() != 17.5 {
		t.Fatalf("SlotWidth() = %v, want 17.5", m.SlotWidth())
	}
	if got := m.SlotLeft(0); got != 10 {
		t.Errorf("SlotLeft(0) = %v, want 10", got)
	}
	if got := m.SlotLeft(2); got != 65 {
		t.Errorf("SlotLeft(2) = %v, want 65", got)
	}
	// Last slot must end exactly at the plot's right edge.
	if got := m.SlotLeft(3) + m.SlotWidth(); got != 110 {
		t.Errorf("right edge of last slot = %v, want 110", got)
	}
	// Centers are evenly spaced by slot width plus gap.
	if d := m.SlotCenter(1) - m.SlotCenter(0); d != 27.5 {
		t.Errorf("center spacing = %v, want 27.5", d)
	}
}

func TestGeometry(t *testing.T) {
	sum := stat.Summary{
		Name: "alpha",
		Min:  0, Low: 10, Q1: 30, Median: 50, Q3: 70, High: 90, Max: 100,
		IQR: 40, Outliers: []float64{0, 100},
	}

	geoms, err := Build([]stat.Summary{sum}, testAxis(), testConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g := geoms[0]

	// Slot spans [10,110]; box inset by padding 5 on each side.
	if g.Box.X != 15 || g.Box.W != 90 {
		t.Errorf("box x/w = %v/%v, want 15/90", g.Box.X, g.Box.W)
	}
	// Q3=70 maps to y=40 and forms the box top; Q1=30 maps to y=80.
	if g.Box.Y != 40 || g.Box.H != 40 {
		t.Errorf("box y/h = %v/%v, want 40/40", g.Box.Y, g.Box.H)
	}
	if g.MedianLine.Y1 != 60 || g.MedianLine.Y2 != 60 {
		t.Errorf("median line y = %v, want 60", g.MedianLine.Y1)
	}

	// Whiskers run from the whisker bounds to the box edges, centered in
	// the slot.
	if g.UpperWhisk.X1 != 60 || g.UpperWhisk.Y1 != 20 || g.UpperWhisk.Y2 != 40 {
		t.Errorf("upper whisker = %+v, want x=60 from y=20 to y=40", g.UpperWhisk)
	}
	if g.LowerWhisk.Y1 != 80 || g.LowerWhisk.Y2 != 100 {
		t.Errorf("lower whisker = %+v, want from y=80 to y=100", g.LowerWhisk)
	}
	if g.UpperCap.Y1 != 20 || g.LowerCap.Y1 != 100 {
		t.Errorf("caps at y=%v/%v, want 20/100", g.UpperCap.Y1, g.LowerCap.Y1)
	}

	// Outliers sit at the slot center at their mapped heights.
	if len(g.Outliers) != 2 {
		t.Fatalf("outliers = %v, want 2 points", g.Outliers)
	}
	if g.Outliers[0].X != 60 || g.Outliers[0].Y != 110 {
		t.Errorf("outlier[0] = %+v, want (60,110)", g.Outliers[0])
	}
	if g.Outliers[1].Y != 10 {
		t.Errorf("outlier[1].Y = %v, want 10", g.Outliers[1].Y)
	}

	if g.LabelAnchor.X != 60 {
		t.Errorf("label anchor x = %v, want 60", g.LabelAnchor.X)
	}
}

func TestBuildDeterministic(t *testing.T) {
	summaries := []stat.Summary{
		{Name: "a", Min: 1, Low: 1, Q1: 2, Median: 3, Q3: 4, High: 5, Max: 5, Outliers: []float64{}},
		{Name: "b", Min: 10, Low: 10, Q1: 20, Median: 30, Q3: 40, High: 50, Max: 50, Outliers: []float64{60}},
	}
	axis := scale.Axis{Lo: 0, Hi: 60, Step: 10}

	first, err := Build(summaries, axis, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := Build(summaries, axis, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i := range first {
		if first[i].Box != second[i].Box || first[i].MedianLine != second[i].MedianLine {
			t.Errorf("geometry for %s differs between identical runs", first[i].Name)
		}
		for j := range first[i].Outliers {
			if first[i].Outliers[j] != second[i].Outliers[j] {
				t.Errorf("outlier geometry for %s differs between identical runs", first[i].Name)
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }},
		{name: "negative height", mutate: func(c *Config) { c.Height = -10 }},
		{name: "margins swallow plot", mutate: func(c *Config) { c.Margins.Left = 200 }},
		{name: "negative gap", mutate: func(c *Config) { c.SlotGap = -1 }},
		{name: "negative padding", mutate: func(c *Config) { c.BoxPadding = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want INVALID_LAYOUT")
			}
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config Validate() error = %v, want nil", err)
	}
}

func TestNewMapperTooManySeries(t *testing.T) {
	cfg := testConfig()
	cfg.BoxPadding = 10
	// 10 series in a 100 unit plot leave 10 unit slots, fully swallowed by
	// the 2x10 padding.
	_, err := NewMapper(cfg, testAxis(), 10)
	if err == nil {
		t.Fatal("NewMapper() error = nil, want INVALID_LAYOUT")
	}
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
	}
}
