// Package render provides output rendering for sorting visualizations.
//
// # Overview
//
// This package holds generic format conversion shared by the renderers in
// its subpackages:
//
//   - Bar charts of sorting snapshots (in [bars] subpackage)
//   - Recursion call trees of merge and quick sort (in [calltree] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := bars.RenderSVG(cfg, snapshot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [bars]: github.com/matzehuels/sortviz/pkg/render/bars
// [calltree]: github.com/matzehuels/sortviz/pkg/render/calltree
package render
