// Package styles defines the closed set of visual styles for chart
// rendering.
//
// A Style turns positioned primitives into SVG fragments. Styling is
// resolved from each primitive's class at render time; there are exactly
// two implementations, [Classic] and [Mono], selected by name through
// [ForName].
package styles

import (
	"bytes"

	"github.com/boxkit/boxkit/pkg/chart"
	"github.com/boxkit/boxkit/pkg/errors"
)

// Style names accepted on the command line and in config files.
const (
	NameClassic = "classic" // filled boxes with a muted palette
	NameMono    = "mono"    // black strokes on white, print-friendly
)

// Style defines the visual appearance of a rendered chart.
// Implementations control how each primitive class is drawn.
type Style interface {
	// Name returns the style's registered name.
	Name() string
	// RenderDefs writes SVG <defs> content (shared attributes, CSS).
	RenderDefs(buf *bytes.Buffer)
	// RenderRect writes the SVG for a rectangle primitive.
	RenderRect(buf *bytes.Buffer, r chart.Rect)
	// RenderLine writes the SVG for a line primitive.
	RenderLine(buf *bytes.Buffer, l chart.Line)
	// RenderPoint writes the SVG for a point primitive.
	RenderPoint(buf *bytes.Buffer, p chart.Point)
	// RenderText writes the SVG for a text primitive.
	RenderText(buf *bytes.Buffer, t chart.Text)
}

// ForName returns the style registered under name. It fails with an
// INVALID_STYLE error for unknown names.
func ForName(name string) (Style, error) {
	switch name {
	case NameClassic, "":
		return Classic{}, nil
	case NameMono:
		return Mono{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be %q or %q)", name, NameClassic, NameMono)
	}
}
