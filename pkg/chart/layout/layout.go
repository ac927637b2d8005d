// Package layout maps summarized series through a shared axis into drawing
// coordinates.
//
// Drawing coordinates follow the SVG convention: the origin is the top-left
// corner and y grows downward, so larger data values map to smaller y. Each
// series occupies a fixed-width slot, assigned left to right in input
// order.
package layout

import (
	"github.com/boxkit/boxkit/pkg/chart/scale"
	"github.com/boxkit/boxkit/pkg/errors"
)

// Default chart dimensions and spacing, in user units (SVG pixels).
const (
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0
	DefaultMargin     = 40.0
	DefaultSlotGap    = 20.0
	DefaultBoxPadding = 10.0
)

// Margins are the distances between the chart frame and the plot area.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Config holds the chart dimensions consumed by the mapper. It is passed
// explicitly into every computation; there is no process-wide default
// state.
type Config struct {
	Width      float64 // total frame width
	Height     float64 // total frame height
	Margins    Margins
	SlotGap    float64 // horizontal gap between series slots
	BoxPadding float64 // horizontal inset of the box inside its slot
}

// DefaultConfig returns a Config with the standard dimensions.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margins: Margins{
			Top: DefaultMargin, Right: DefaultMargin,
			Bottom: DefaultMargin, Left: DefaultMargin,
		},
		SlotGap:    DefaultSlotGap,
		BoxPadding: DefaultBoxPadding,
	}
}

// PlotWidth returns the horizontal extent of the plot area.
func (c Config) PlotWidth() float64 {
	return c.Width - c.Margins.Left - c.Margins.Right
}

// PlotHeight returns the vertical extent of the plot area.
func (c Config) PlotHeight() float64 {
	return c.Height - c.Margins.Top - c.Margins.Bottom
}

// MapY maps a data value through axis into a vertical drawing coordinate.
// Data values grow upward while drawing coordinates grow downward, so the
// axis high end maps to the plot top.
func (c Config) MapY(axis scale.Axis, v float64) float64 {
	return c.Margins.Top + c.PlotHeight()*(axis.Hi-v)/(axis.Hi-axis.Lo)
}

// Validate checks the configured dimensions. Non-positive frame or plot
// extents and a negative gap or padding fail with an INVALID_LAYOUT error
// naming the offending value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "frame dimensions must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.PlotWidth() <= 0 || c.PlotHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "margins %+v leave no plot area in %gx%g frame", c.Margins, c.Width, c.Height)
	}
	if c.SlotGap < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "slot gap must not be negative, got %g", c.SlotGap)
	}
	if c.BoxPadding < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "box padding must not be negative, got %g", c.BoxPadding)
	}
	return nil
}

// Mapper converts data-space values to drawing-space coordinates for a
// fixed axis, configuration and series count.
type Mapper struct {
	cfg   Config
	axis  scale.Axis
	count int
	slotW float64
}

// NewMapper validates cfg and returns a Mapper for n series. The slot
// width is derived from the plot width so that n slots and n-1 gaps fill
// it exactly. It fails with INVALID_LAYOUT when the configuration is
// unusable for n series.
func NewMapper(cfg Config, axis scale.Axis, n int) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeNoData, "no series supplied")
	}
	slotW := (cfg.PlotWidth() - float64(n-1)*cfg.SlotGap) / float64(n)
	if slotW <= 2*cfg.BoxPadding {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"%g unit slots cannot fit %d series with %g padding", slotW, n, cfg.BoxPadding)
	}
	return &Mapper{cfg: cfg, axis: axis, count: n, slotW: slotW}, nil
}

// Y maps a data value to a vertical drawing coordinate via Config.MapY.
func (m *Mapper) Y(v float64) float64 {
	return m.cfg.MapY(m.axis, v)
}

// SlotLeft returns the left edge of slot i.
func (m *Mapper) SlotLeft(i int) float64 {
	return m.cfg.Margins.Left + float64(i)*(m.slotW+m.cfg.SlotGap)
}

// SlotCenter returns the horizontal center of slot i.
func (m *Mapper) SlotCenter(i int) float64 {
	return m.SlotLeft(i) + m.slotW/2
}

// SlotWidth returns the width of every series slot.
func (m *Mapper) SlotWidth() float64 { return m.slotW }
