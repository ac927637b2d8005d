package layout

import (
	"github.com/boxkit/boxkit/pkg/chart/scale"
	"github.com/boxkit/boxkit/pkg/stat"
)

// Fraction of the box width used for the whisker end caps.
const capWidthRatio = 0.5

// Rect is an axis-aligned rectangle in drawing coordinates.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Segment is a line segment in drawing coordinates.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Point is a single position in drawing coordinates.
type Point struct {
	X, Y float64
}

// SeriesGeometry is the drawable geometry of one series: the box, the
// median line, the whiskers with their end caps, the outlier marker
// positions, and the label anchor below the slot. It is derived, read-only
// output that does not outlive one render pass.
type SeriesGeometry struct {
	Name        string
	Box         Rect
	MedianLine  Segment
	UpperWhisk  Segment
	LowerWhisk  Segment
	UpperCap    Segment
	LowerCap    Segment
	Outliers    []Point
	LabelAnchor Point
}

// Geometry computes the SeriesGeometry for the series in slot i.
func (m *Mapper) Geometry(i int, s stat.Summary) SeriesGeometry {
	center := m.SlotCenter(i)
	boxLeft := m.SlotLeft(i) + m.cfg.BoxPadding
	boxRight := m.SlotLeft(i) + m.slotW - m.cfg.BoxPadding
	capHalf := (boxRight - boxLeft) * capWidthRatio / 2

	// The vertical inversion flips which quartile forms the box top.
	yQ1, yQ3 := m.Y(s.Q1), m.Y(s.Q3)
	yLow, yHigh := m.Y(s.Low), m.Y(s.High)
	yMed := m.Y(s.Median)

	g := SeriesGeometry{
		Name: s.Name,
		Box: Rect{
			X: boxLeft, Y: yQ3,
			W: boxRight - boxLeft, H: yQ1 - yQ3,
		},
		MedianLine: Segment{X1: boxLeft, Y1: yMed, X2: boxRight, Y2: yMed},
		UpperWhisk: Segment{X1: center, Y1: yHigh, X2: center, Y2: yQ3},
		LowerWhisk: Segment{X1: center, Y1: yQ1, X2: center, Y2: yLow},
		UpperCap:   Segment{X1: center - capHalf, Y1: yHigh, X2: center + capHalf, Y2: yHigh},
		LowerCap:   Segment{X1: center - capHalf, Y1: yLow, X2: center + capHalf, Y2: yLow},
		LabelAnchor: Point{
			X: center,
			Y: m.cfg.Margins.Top + m.cfg.PlotHeight() + m.cfg.Margins.Bottom/2,
		},
	}

	g.Outliers = make([]Point, len(s.Outliers))
	for j, v := range s.Outliers {
		g.Outliers[j] = Point{X: center, Y: m.Y(v)}
	}
	return g
}

// Build maps every summary through the shared axis into per-series
// geometry, in input order. It validates the configuration and fails with
// INVALID_LAYOUT or NO_DATA accordingly.
func Build(summaries []stat.Summary, axis scale.Axis, cfg Config) ([]SeriesGeometry, error) {
	m, err := NewMapper(cfg, axis, len(summaries))
	if err != nil {
		return nil, err
	}
	geoms := make([]SeriesGeometry, len(summaries))
	for i, s := range summaries {
		geoms[i] = m.Geometry(i, s)
	}
	return geoms, nil
}
