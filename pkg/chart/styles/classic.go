package styles

import (
	"bytes"
	"fmt"

	"github.com/boxkit/boxkit/pkg/chart"
)

// classicCSS styles every primitive class once so individual elements stay
// small. The palette deliberately keeps the grid faint and the data marks
// strong.
const classicCSS = `
    .grid { stroke: #d8dce0; stroke-width: 1; }
    .tick-label { font: 11px sans-serif; fill: #5c6670; dominant-baseline: middle; }
    .box { fill: #9ecae1; stroke: #3182bd; stroke-width: 1.5; }
    .median { stroke: #08519c; stroke-width: 2; }
    .whisker { stroke: #3182bd; stroke-width: 1.5; }
    .cap { stroke: #3182bd; stroke-width: 1.5; }
    .outlier { fill: none; stroke: #de2d26; stroke-width: 1.5; }
    .label { font: 12px sans-serif; fill: #30363c; }
    .title { font: bold 14px sans-serif; fill: #30363c; }`

// Classic is the default colored style.
type Classic struct{}

var _ Style = Classic{}

func (Classic) Name() string { return NameClassic }

func (Classic) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", classicCSS)
}

func (Classic) RenderRect(buf *bytes.Buffer, r chart.Rect) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
		r.Class, r.X, r.Y, r.W, r.H)
}

func (Classic) RenderLine(buf *bytes.Buffer, l chart.Line) {
	fmt.Fprintf(buf, `  <line class="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
		l.Class, l.X1, l.Y1, l.X2, l.Y2)
}

func (Classic) RenderPoint(buf *bytes.Buffer, p chart.Point) {
	fmt.Fprintf(buf, `  <circle class="%s" cx="%.2f" cy="%.2f" r="%.2f"/>`+"\n",
		p.Class, p.X, p.Y, p.R)
}

func (Classic) RenderText(buf *bytes.Buffer, t chart.Text) {
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" text-anchor="%s">%s</text>`+"\n",
		t.Class, t.X, t.Y, t.Anchor, EscapeXML(t.Content))
}
