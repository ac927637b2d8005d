package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boxkit/boxkit/pkg/chart"
	"github.com/boxkit/boxkit/pkg/errors"
)

func TestForName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "classic", want: NameClassic},
		{name: "mono", want: NameMono},
		{name: "", want: NameClassic},
		{name: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			s, err := ForName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ForName() error = nil, want INVALID_STYLE")
				}
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyle)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForName() error = %v", err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}

func TestClassicRendersPrimitives(t *testing.T) {
	var buf bytes.Buffer
	s := Classic{}

	s.RenderRect(&buf, chart.Rect{Class: chart.ClassBox, X: 10, Y: 20, W: 30, H: 40})
	s.RenderLine(&buf, chart.Line{Class: chart.ClassMedian, X1: 1, Y1: 2, X2: 3, Y2: 4})
	s.RenderPoint(&buf, chart.Point{Class: chart.ClassOutlier, X: 5, Y: 6, R: 3})
	s.RenderText(&buf, chart.Text{Class: chart.ClassLabel, X: 7, Y: 8, Content: "alpha", Anchor: "middle"})

	out := buf.String()
	for _, want := range []string{
		`<rect class="box" x="10.00" y="20.00" width="30.00" height="40.00"/>`,
		`<line class="median"`,
		`<circle class="outlier" cx="5.00" cy="6.00" r="3.00"/>`,
		`<text class="label" x="7.00" y="8.00" text-anchor="middle">alpha</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMonoOutlierIsCross(t *testing.T) {
	var buf bytes.Buffer
	Mono{}.RenderPoint(&buf, chart.Point{Class: chart.ClassOutlier, X: 10, Y: 10, R: 3})
	if !strings.Contains(buf.String(), "<path") {
		t.Errorf("mono outlier = %q, want a <path> cross", buf.String())
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a<b", want: "a&lt;b"},
		{in: `q&a`, want: "q&amp;a"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
