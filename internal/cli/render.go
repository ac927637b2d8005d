package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path (or base path for multiple formats)
	config   string  // optional TOML config file
	formats  []string
	style    string
	title    string
	units    string
	width    float64
	height   float64
	ticksMin int
	ticksMax int
	whiskerK float64
	scale    float64 // PNG resolution multiplier
}

// newRenderCmd creates the render command for generating charts.
// It supports multiple output formats (SVG, PDF, PNG, JSON) in one run.
//
// Flag values layer on top of the optional --config file; an explicitly set
// flag always wins over the file.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dataset to box plot chart(s)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: classic (default), mono")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title (overrides the dataset title)")
	cmd.Flags().StringVar(&opts.units, "units", "", "value units (overrides the dataset units)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().IntVar(&opts.ticksMin, "ticks-min", 0, "minimum axis tick count")
	cmd.Flags().IntVar(&opts.ticksMax, "ticks-max", 0, "maximum axis tick count")
	cmd.Flags().Float64Var(&opts.whiskerK, "whisker-k", 0, "IQR multiplier for outlier fences")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG resolution multiplier")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// buildOptions merges the config file (if any), the flag values, and the
// positional input into a single pipeline option set.
func buildOptions(input string, opts *renderOpts) (pipeline.Options, error) {
	var po pipeline.Options
	if opts.config != "" {
		loaded, err := pipeline.LoadConfig(opts.config)
		if err != nil {
			return pipeline.Options{}, err
		}
		po = loaded
	}

	if input != "" {
		po.Input = input
	}
	if po.Input == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"no input file: pass one as an argument or set it in the config")
	}

	po.Formats = opts.formats
	if opts.style != "" {
		po.Style = opts.style
	}
	if opts.title != "" {
		po.Title = opts.title
	}
	if opts.units != "" {
		po.Units = opts.units
	}
	if opts.width != 0 {
		po.Width = opts.width
	}
	if opts.height != 0 {
		po.Height = opts.height
	}
	if opts.ticksMin != 0 {
		po.TicksMin = opts.ticksMin
	}
	if opts.ticksMax != 0 {
		po.TicksMax = opts.ticksMax
	}
	if opts.whiskerK != 0 {
		po.WhiskerK = opts.whiskerK
	}
	if opts.scale != 0 {
		po.Scale = opts.scale
	}
	return po, nil
}

// runRender executes the pipeline and writes every artifact to disk.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	po, err := buildOptions(input, opts)
	if err != nil {
		return err
	}
	po.Logger = logger

	p := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, po)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d series", result.Stats.SeriesCount))

	base := basePath(opts.output, po.Input)
	for _, format := range po.Formats {
		path := opts.output
		if path == "" || len(po.Formats) > 1 {
			path = base + "." + format
		}
		data := result.Artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		logger.Infof("Generated %s (%d bytes)", path, len(data))
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .png, ...), it strips that extension. This is used
// when generating multiple files (e.g., chart.svg, chart.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
