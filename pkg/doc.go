// Package pkg provides the core libraries for boxkit chart generation.
//
// # Overview
//
// Boxkit turns grouped numeric observations into box-and-whisker charts.
// The pkg directory is organized around the pipeline stages plus shared
// infrastructure:
//
//  1. [dataset] - Input loading and validation
//  2. [stat] - Five-number summaries and outlier classification
//  3. [chart] - Axis scaling, geometry and document assembly
//  4. [pipeline] - Orchestration (load → summarize → layout → render)
//
// # Architecture
//
// The typical data flow through boxkit:
//
//	JSON dataset
//	     ↓
//	[dataset] package (load + validate series)
//	     ↓
//	[stat] package (five-number summary per series)
//	     ↓
//	[chart/scale] and [chart/layout] packages (axis + geometry)
//	     ↓
//	[chart] package (ordered primitive document)
//	     ↓
//	[chart/sink] package (SVG/PNG/PDF/JSON output)
//
// # Quick Start
//
// Summarize a dataset and render it to SVG:
//
//	import (
//	    "github.com/boxkit/boxkit/pkg/chart"
//	    "github.com/boxkit/boxkit/pkg/chart/layout"
//	    "github.com/boxkit/boxkit/pkg/chart/scale"
//	    "github.com/boxkit/boxkit/pkg/chart/sink"
//	    "github.com/boxkit/boxkit/pkg/dataset"
//	    "github.com/boxkit/boxkit/pkg/stat"
//	)
//
//	// 1. Load observations
//	ds, _ := dataset.Load("data.json")
//
//	// 2. Summarize each series
//	var summaries []stat.Summary
//	for _, s := range ds.Series {
//	    sum, _ := stat.Summarize(s, stat.DefaultWhiskerK)
//	    summaries = append(summaries, sum)
//	}
//
//	// 3. Build the shared axis and geometry
//	axis, _ := scale.Build(summaries, scale.Default())
//	cfg := layout.DefaultConfig()
//	geoms, _ := layout.Build(summaries, axis, cfg)
//
//	// 4. Assemble and render
//	doc := chart.Assemble(geoms, axis, cfg)
//	svg := sink.RenderSVG(doc)
//
// The [pipeline] package wraps these steps with option handling, defaults
// and logging; prefer it unless you need stage-level control.
//
// # Main Packages
//
// [dataset] - JSON input loading with series validation (keys, values,
// duplicates).
//
// [stat] - Five-number summaries with a fixed quartile convention and Tukey
// fence outlier classification.
//
// [chart/scale] - Nice-number axis construction using a 1-2-5 step sequence
// bounded by a tick count band.
//
// [chart/layout] - Slot allocation and value-to-pixel mapping with Y
// inversion, producing per-series geometry.
//
// [chart] - Document assembly: a deterministic, ordered list of drawable
// primitives (rects, lines, points, text).
//
// [chart/styles] - Visual styles resolved by primitive class (classic, mono).
//
// [chart/sink] - Output formats: SVG natively, PNG/PDF via rsvg-convert,
// JSON for external tools.
//
// [render] - SVG-to-raster conversion shared by the sinks.
//
// [pipeline] - Complete chart pipeline used by the CLI and the HTTP server.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional stage and HTTP hooks for instrumentation.
//
// [buildinfo] - Build-time version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/stat/...     # Specific package
//
// [dataset]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/dataset
// [stat]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/stat
// [chart]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/chart
// [chart/scale]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/chart/scale
// [chart/layout]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/chart/layout
// [chart/styles]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/chart/styles
// [chart/sink]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/chart/sink
// [render]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/boxkit/boxkit/pkg/buildinfo
package pkg
