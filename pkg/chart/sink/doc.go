// Package sink provides output format renderers for chart documents.
//
// A "sink" serializes an assembled [chart.Document] into a final output
// format without recomputing any geometry:
//
//   - SVG: scalable vector graphics with selectable visual styles
//   - JSON: primitive data export for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(doc,
//	    sink.WithStyle(styles.Mono{}),
//	    sink.WithTitle("Latency"),
//	    sink.WithUnits("ms"),
//	)
//
// [RenderPDF] and [RenderPNG] render the document by first generating SVG,
// then converting via [render.ToPDF] and [render.ToPNG]. Both require
// librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [chart.Document]: github.com/boxkit/boxkit/pkg/chart.Document
// [render.ToPDF]: github.com/boxkit/boxkit/pkg/render.ToPDF
// [render.ToPNG]: github.com/boxkit/boxkit/pkg/render.ToPNG
package sink
