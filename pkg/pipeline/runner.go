package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/boxkit/boxkit/pkg/chart"
	"github.com/boxkit/boxkit/pkg/chart/layout"
	"github.com/boxkit/boxkit/pkg/chart/scale"
	"github.com/boxkit/boxkit/pkg/chart/sink"
	"github.com/boxkit/boxkit/pkg/chart/styles"
	"github.com/boxkit/boxkit/pkg/dataset"
	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/observability"
	"github.com/boxkit/boxkit/pkg/stat"
)

// Runner executes the chart pipeline. It is stateless except for the
// logger; multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the package default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → summarize → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, "load")
	ds, err := dataset.Load(opts.Input)
	observability.Pipeline().OnStageComplete(ctx, "load", time.Since(loadStart), err)
	if err != nil {
		return nil, err
	}
	if opts.Title != "" {
		ds.Title = opts.Title
	}
	if opts.Units != "" {
		ds.Units = opts.Units
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SeriesCount = len(ds.Series)
	for _, s := range ds.Series {
		result.Stats.ValueCount += len(s.Values)
	}

	r.Logger.Info("loaded dataset",
		"series", result.Stats.SeriesCount,
		"values", result.Stats.ValueCount,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pipeline cancelled")
	}

	// Stage 2: Summarize
	sumStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, "summarize")
	summaries, err := r.Summarize(ds, opts)
	observability.Pipeline().OnStageComplete(ctx, "summarize", time.Since(sumStart), err)
	if err != nil {
		return nil, err
	}
	result.Summaries = summaries
	result.Stats.SummarizeTime = time.Since(sumStart)

	// Stage 3: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, "layout")
	doc, axis, err := r.Compose(summaries, opts)
	observability.Pipeline().OnStageComplete(ctx, "layout", time.Since(layoutStart), err)
	if err != nil {
		return nil, err
	}
	result.Axis = axis
	result.Document = doc
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("composed chart",
		"axis_lo", axis.Lo, "axis_hi", axis.Hi, "ticks", len(axis.Ticks),
		"primitives", len(doc.Primitives),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pipeline cancelled")
	}

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, "render")
	artifacts, err := r.Render(doc, ds, opts)
	observability.Pipeline().OnStageComplete(ctx, "render", time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Summarize computes the five-number summary for every series in order.
func (r *Runner) Summarize(ds dataset.Dataset, opts Options) ([]stat.Summary, error) {
	opts.SetDefaults()

	summaries := make([]stat.Summary, 0, len(ds.Series))
	for _, s := range ds.Series {
		sum, err := stat.Summarize(s, opts.WhiskerK)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// Compose builds the shared axis and geometry, then assembles the document.
func (r *Runner) Compose(summaries []stat.Summary, opts Options) (chart.Document, scale.Axis, error) {
	opts.SetDefaults()

	axis, err := scale.Build(summaries, opts.TickBand())
	if err != nil {
		return chart.Document{}, scale.Axis{}, err
	}

	cfg := opts.LayoutConfig()
	geoms, err := layout.Build(summaries, axis, cfg)
	if err != nil {
		return chart.Document{}, scale.Axis{}, err
	}

	return chart.Assemble(geoms, axis, cfg), axis, nil
}

// Render serializes the document into every requested format.
func (r *Runner) Render(doc chart.Document, ds dataset.Dataset, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()

	style, err := styles.ForName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithTitle(ds.Title),
		sink.WithUnits(ds.Units),
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(doc, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(doc,
				sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(doc, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(doc,
				sink.WithJSONTitle(ds.Title),
				sink.WithJSONUnits(ds.Units),
				sink.WithJSONStyle(opts.Style))
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
