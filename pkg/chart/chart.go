// Package chart assembles per-series geometry and axis ticks into an
// ordered document of drawable primitives.
//
// The document is the hand-off point to the output sinks: it contains
// positioned rectangles, line segments, points and text labels, but no
// format-specific markup. Primitive order is deterministic so that
// identical input always produces an identical document: axis primitives
// come first as the background layer, followed by the series primitives in
// input order.
package chart

import (
	"strconv"

	"github.com/boxkit/boxkit/pkg/chart/layout"
	"github.com/boxkit/boxkit/pkg/chart/scale"
)

// Class tags a primitive with its role in the chart. Styling is resolved
// from the class at render time; the set is closed.
type Class string

const (
	ClassGrid      Class = "grid"       // horizontal grid line per tick
	ClassTickLabel Class = "tick-label" // numeric tick label
	ClassBox       Class = "box"        // interquartile box
	ClassMedian    Class = "median"     // median line
	ClassWhisker   Class = "whisker"    // whisker vertical
	ClassCap       Class = "cap"        // whisker end cap
	ClassOutlier   Class = "outlier"    // outlier marker
	ClassLabel     Class = "label"      // series name under the slot
	ClassTitle     Class = "title"      // optional chart title
)

// Primitive is one drawable element. The set of implementations is closed:
// Rect, Line, Point and Text.
type Primitive interface {
	primitive()
}

// Rect is a filled, stroked rectangle.
type Rect struct {
	Class      Class
	Series     string // owning series name, empty for axis primitives
	X, Y, W, H float64
}

// Line is a straight stroked segment.
type Line struct {
	Class          Class
	Series         string
	X1, Y1, X2, Y2 float64
}

// Point is a circular marker.
type Point struct {
	Class  Class
	Series string
	X, Y   float64
	R      float64
}

// Text is a positioned label. Anchor follows the SVG text-anchor values
// "start", "middle" and "end".
type Text struct {
	Class   Class
	Series  string
	X, Y    float64
	Content string
	Anchor  string
}

func (Rect) primitive()  {}
func (Line) primitive()  {}
func (Point) primitive() {}
func (Text) primitive()  {}

// Default marker radius for outlier points.
const outlierRadius = 3.0

// Document is the ordered drawable output of one render pass. It is
// derived, read-only data and does not outlive the pass.
type Document struct {
	Width      float64
	Height     float64
	Primitives []Primitive
}

// Assemble composes the axis and every series' geometry into a Document.
// It is pure composition over already-validated geometry and has no error
// conditions of its own.
func Assemble(geoms []layout.SeriesGeometry, axis scale.Axis, cfg layout.Config) Document {
	doc := Document{Width: cfg.Width, Height: cfg.Height}

	// Background layer: one grid line and label per tick.
	for _, tick := range axis.Ticks {
		y := cfg.MapY(axis, tick)
		doc.Primitives = append(doc.Primitives,
			Line{
				Class: ClassGrid,
				X1:    cfg.Margins.Left, Y1: y,
				X2: cfg.Width - cfg.Margins.Right, Y2: y,
			},
			Text{
				Class:   ClassTickLabel,
				X:       cfg.Margins.Left - tickLabelGap,
				Y:       y,
				Content: FormatTick(tick),
				Anchor:  "end",
			},
		)
	}

	// Series layer, in input order. Within a series the order is fixed:
	// box, median, whiskers, caps, outliers, label.
	for _, g := range geoms {
		doc.Primitives = append(doc.Primitives,
			Rect{Class: ClassBox, Series: g.Name, X: g.Box.X, Y: g.Box.Y, W: g.Box.W, H: g.Box.H},
			line(ClassMedian, g.Name, g.MedianLine),
			line(ClassWhisker, g.Name, g.UpperWhisk),
			line(ClassWhisker, g.Name, g.LowerWhisk),
			line(ClassCap, g.Name, g.UpperCap),
			line(ClassCap, g.Name, g.LowerCap),
		)
		for _, p := range g.Outliers {
			doc.Primitives = append(doc.Primitives,
				Point{Class: ClassOutlier, Series: g.Name, X: p.X, Y: p.Y, R: outlierRadius})
		}
		doc.Primitives = append(doc.Primitives,
			Text{
				Class: ClassLabel, Series: g.Name,
				X: g.LabelAnchor.X, Y: g.LabelAnchor.Y,
				Content: g.Name, Anchor: "middle",
			})
	}

	return doc
}

// Horizontal distance between tick labels and the plot edge.
const tickLabelGap = 6.0

// FormatTick renders a tick value the shortest way that round-trips,
// so 20 prints as "20" and 0.5 as "0.5".
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// line adapts a layout segment into a Line primitive.
func line(class Class, series string, s layout.Segment) Line {
	return Line{Class: class, Series: series, X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2}
}
