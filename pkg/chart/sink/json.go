package sink

import (
	"encoding/json"
	"fmt"

	"github.com/boxkit/boxkit/pkg/chart"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
	units string
	style string
}

// WithJSONTitle records the chart title in the JSON output.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

// WithJSONUnits records the value units in the JSON output.
func WithJSONUnits(u string) JSONOption { return func(r *jsonRenderer) { r.units = u } }

// WithJSONStyle records the style name used for companion image formats,
// enabling round-trip rendering from the exported document.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Title      string          `json:"title,omitempty"`
	Units      string          `json:"units,omitempty"`
	Style      string          `json:"style,omitempty"`
	Primitives []jsonPrimitive `json:"primitives"`
}

// jsonPrimitive flattens the four primitive kinds into one tagged record.
// Only the fields of the tagged kind are populated.
type jsonPrimitive struct {
	Kind   string  `json:"kind"`
	Class  string  `json:"class"`
	Series string  `json:"series,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	R      float64 `json:"r,omitempty"`
	Text   string  `json:"text,omitempty"`
	Anchor string  `json:"anchor,omitempty"`
}

// RenderJSON exports the document as a pretty-printed JSON record. The
// primitive array preserves document order, so a consumer can redraw the
// chart by painting the records front to back.
func RenderJSON(doc chart.Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      doc.Width,
		Height:     doc.Height,
		Title:      r.title,
		Units:      r.units,
		Style:      r.style,
		Primitives: make([]jsonPrimitive, 0, len(doc.Primitives)),
	}

	for _, p := range doc.Primitives {
		jp, err := buildJSONPrimitive(p)
		if err != nil {
			return nil, err
		}
		out.Primitives = append(out.Primitives, jp)
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONPrimitive(p chart.Primitive) (jsonPrimitive, error) {
	switch v := p.(type) {
	case chart.Rect:
		return jsonPrimitive{
			Kind: "rect", Class: string(v.Class), Series: v.Series,
			X: v.X, Y: v.Y, W: v.W, H: v.H,
		}, nil
	case chart.Line:
		return jsonPrimitive{
			Kind: "line", Class: string(v.Class), Series: v.Series,
			X1: v.X1, Y1: v.Y1, X2: v.X2, Y2: v.Y2,
		}, nil
	case chart.Point:
		return jsonPrimitive{
			Kind: "point", Class: string(v.Class), Series: v.Series,
			X: v.X, Y: v.Y, R: v.R,
		}, nil
	case chart.Text:
		return jsonPrimitive{
			Kind: "text", Class: string(v.Class), Series: v.Series,
			X: v.X, Y: v.Y, Text: v.Content, Anchor: v.Anchor,
		}, nil
	default:
		return jsonPrimitive{}, fmt.Errorf("unknown primitive type %T", p)
	}
}
