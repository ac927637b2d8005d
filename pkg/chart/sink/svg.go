package sink

import (
	"bytes"
	"fmt"

	"github.com/boxkit/boxkit/pkg/chart"
	"github.com/boxkit/boxkit/pkg/chart/styles"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	title string
	units string
}

// WithStyle selects the visual style. Defaults to [styles.Classic].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle renders a centered title above the plot area.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithUnits appends a unit suffix to the title, e.g. "Latency (ms)".
func WithUnits(u string) SVGOption { return func(r *svgRenderer) { r.units = u } }

// RenderSVG serializes the document as a standalone SVG image. Primitives
// are emitted in document order, so the axis background stays behind the
// series marks without z-index tricks.
func RenderSVG(doc chart.Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	r.style.RenderDefs(&buf)

	if t := r.titleText(doc); t != nil {
		r.style.RenderText(&buf, *t)
	}

	for _, p := range doc.Primitives {
		switch v := p.(type) {
		case chart.Rect:
			r.style.RenderRect(&buf, v)
		case chart.Line:
			r.style.RenderLine(&buf, v)
		case chart.Point:
			r.style.RenderPoint(&buf, v)
		case chart.Text:
			r.style.RenderText(&buf, v)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// titleText builds the title primitive, or nil when no title was requested.
// Units without a title still produce a bare unit caption.
func (r svgRenderer) titleText(doc chart.Document) *chart.Text {
	content := r.title
	if r.units != "" {
		if content == "" {
			content = r.units
		} else {
			content = fmt.Sprintf("%s (%s)", content, r.units)
		}
	}
	if content == "" {
		return nil
	}
	return &chart.Text{
		Class:   chart.ClassTitle,
		X:       doc.Width / 2,
		Y:       titleBaseline,
		Content: content,
		Anchor:  "middle",
	}
}

// Title baseline sits inside the top margin.
const titleBaseline = 24.0
