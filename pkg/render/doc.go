// Package render provides SVG-to-raster format conversion.
//
// The chart sinks produce SVG natively; [ToPNG] and [ToPDF] convert that
// SVG into raster and print formats by shelling out to rsvg-convert.
// librsvg must be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// Conversion is stateless and safe to call concurrently.
package render
