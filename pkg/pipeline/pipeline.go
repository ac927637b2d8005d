// Package pipeline provides the load → summarize → layout → render pipeline
// for box plot charts.
//
// This package implements the complete chart production flow shared by the
// CLI commands and the HTTP server. Centralizing it keeps option handling
// and defaults consistent across all entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read and validate the observation dataset
//  2. Summarize: compute the five-number summary per series
//  3. Layout: build the shared axis and per-series geometry
//  4. Render: generate output in various formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "data.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/boxkit/boxkit/pkg/chart"
	"github.com/boxkit/boxkit/pkg/chart/layout"
	"github.com/boxkit/boxkit/pkg/chart/scale"
	"github.com/boxkit/boxkit/pkg/chart/styles"
	"github.com/boxkit/boxkit/pkg/dataset"
	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/stat"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultStyle is the default visual style.
const DefaultStyle = styles.NameClassic

// Options contains all configuration for the chart pipeline.
// The struct supports both TOML config files and JSON serialization
// for HTTP requests.
type Options struct {
	// Input options
	Input string `json:"input,omitempty" toml:"input"`
	Title string `json:"title,omitempty" toml:"title"` // overrides the dataset title
	Units string `json:"units,omitempty" toml:"units"` // overrides the dataset units

	// Summary options
	WhiskerK float64 `json:"whisker_k,omitempty" toml:"whisker_k"`

	// Layout options
	Width      float64 `json:"width,omitempty" toml:"width"`
	Height     float64 `json:"height,omitempty" toml:"height"`
	SlotGap    float64 `json:"slot_gap,omitempty" toml:"slot_gap"`
	BoxPadding float64 `json:"box_padding,omitempty" toml:"box_padding"`
	TicksMin   int     `json:"ticks_min,omitempty" toml:"ticks_min"`
	TicksMax   int     `json:"ticks_max,omitempty" toml:"ticks_max"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`
	Style   string   `json:"style,omitempty" toml:"style"`
	Scale   float64  `json:"scale,omitempty" toml:"scale"` // PNG resolution multiplier

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded input, with title and unit overrides applied.
	Dataset dataset.Dataset

	// Summaries holds the five-number summary per series, in input order.
	Summaries []stat.Summary

	// Axis is the shared value axis covering every series.
	Axis scale.Axis

	// Document is the assembled drawable document.
	Document chart.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount   int
	ValueCount    int
	LoadTime      time.Duration
	SummarizeTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input is required")
	}

	o.SetDefaults()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := styles.ForName(o.Style); err != nil {
		return err
	}
	if o.TicksMin >= o.TicksMax {
		return errors.New(errors.ErrCodeInvalidConfig,
			"ticks_min %d must be below ticks_max %d", o.TicksMin, o.TicksMax)
	}
	if o.WhiskerK < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"whisker_k must not be negative, got %g", o.WhiskerK)
	}

	o.validated = true
	return nil
}

// SetDefaults fills unset fields with their default values.
func (o *Options) SetDefaults() {
	if o.WhiskerK == 0 {
		o.WhiskerK = stat.DefaultWhiskerK
	}
	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = layout.DefaultHeight
	}
	if o.SlotGap == 0 {
		o.SlotGap = layout.DefaultSlotGap
	}
	if o.BoxPadding == 0 {
		o.BoxPadding = layout.DefaultBoxPadding
	}
	band := scale.Default()
	if o.TicksMin == 0 {
		o.TicksMin = band.Min
	}
	if o.TicksMax == 0 {
		o.TicksMax = band.Max
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = 2.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutConfig translates the options into a layout configuration.
func (o *Options) LayoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Width = o.Width
	cfg.Height = o.Height
	cfg.SlotGap = o.SlotGap
	cfg.BoxPadding = o.BoxPadding
	return cfg
}

// TickBand translates the options into a tick count band.
func (o *Options) TickBand() scale.TickBand {
	return scale.TickBand{Min: o.TicksMin, Max: o.TicksMax}
}
