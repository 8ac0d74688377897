// Package bars renders sorting snapshots as bar charts.
//
// # Overview
//
// [Layout] is the pure geometry step: given a [Config] (canvas size and
// inter-bar gap) and a [sorting.Snapshot], it returns one [Bar] per element
// with its rectangle and [Role]. Every sink in this package is built on it:
//
//   - [RenderSVG]: one frame as an SVG document
//   - [RenderAnimatedSVG]: a whole trace as a self-playing SVG (SMIL)
//   - [RenderJSON]: a trace plus its canvas configuration
//   - [RenderTerminal]: one frame as colored block characters
//
// # Geometry
//
// Each element gets a fixed horizontal slot of
//
//	(Width - (n-1)*Gap) / n
//
// pixels (at least 1), bars start at i*(slot+Gap), and heights are
// proportional to the value relative to max(n, largest value), so the
// classic 1..n inputs fill the canvas exactly.
//
// # Colors
//
// The primary index is drawn in [Palette.Primary], the secondary in
// [Palette.Secondary], everything else in [Palette.Neutral]. When both
// indices point at the same element the primary color wins.
//
// [sorting.Snapshot]: github.com/matzehuels/sortviz/pkg/sorting.Snapshot
package bars
