package styles

import (
	"bytes"
	"fmt"

	"github.com/boxkit/boxkit/pkg/chart"
)

const monoCSS = `
    .grid { stroke: #cccccc; stroke-width: 1; stroke-dasharray: 2 3; }
    .tick-label { font: 11px monospace; fill: #000000; dominant-baseline: middle; }
    .box { fill: #ffffff; stroke: #000000; stroke-width: 1; }
    .median { stroke: #000000; stroke-width: 2; }
    .whisker { stroke: #000000; stroke-width: 1; }
    .cap { stroke: #000000; stroke-width: 1; }
    .outlier { fill: none; stroke: #000000; stroke-width: 1; }
    .label { font: 12px monospace; fill: #000000; }
    .title { font: bold 14px monospace; fill: #000000; }`

// Mono is a black-and-white style suitable for print.
type Mono struct{}

var _ Style = Mono{}

func (Mono) Name() string { return NameMono }

func (Mono) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", monoCSS)
}

func (Mono) RenderRect(buf *bytes.Buffer, r chart.Rect) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
		r.Class, r.X, r.Y, r.W, r.H)
}

func (Mono) RenderLine(buf *bytes.Buffer, l chart.Line) {
	fmt.Fprintf(buf, `  <line class="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
		l.Class, l.X1, l.Y1, l.X2, l.Y2)
}

// Mono draws outliers as small crosses instead of circles so they survive
// low-quality printing.
func (Mono) RenderPoint(buf *bytes.Buffer, p chart.Point) {
	fmt.Fprintf(buf, `  <path class="%s" d="M %.2f %.2f L %.2f %.2f M %.2f %.2f L %.2f %.2f"/>`+"\n",
		p.Class,
		p.X-p.R, p.Y-p.R, p.X+p.R, p.Y+p.R,
		p.X-p.R, p.Y+p.R, p.X+p.R, p.Y-p.R)
}

func (Mono) RenderText(buf *bytes.Buffer, t chart.Text) {
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" text-anchor="%s">%s</text>`+"\n",
		t.Class, t.X, t.Y, t.Anchor, EscapeXML(t.Content))
}
