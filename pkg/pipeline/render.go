package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/observability"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/render/calltree"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// FormatDOT is the Graphviz source format, only valid for call trees.
const FormatDOT = "dot"

// TreeFormats lists the formats accepted by [RenderCallTree].
var TreeFormats = []string{FormatDOT, render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatJSON}

// Render generates output artifacts for a trace in the requested formats.
//
// SVG output is animated when opts.Animate is set; PNG and PDF always show
// the single frame selected by opts.Frame since the converter cannot
// animate.
func Render(ctx context.Context, t *sorting.Trace, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	svgOpts := buildSVGOptions(t, opts)
	frame := selectFrame(t, opts.Frame)

	var static []byte
	staticSVG := func() []byte {
		if static == nil {
			static = bars.RenderSVG(opts.Canvas, frame, svgOpts...)
		}
		return static
	}

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case render.FormatSVG:
			if opts.Animate {
				data = bars.RenderAnimatedSVG(opts.Canvas, t, svgOpts...)
			} else {
				data = staticSVG()
			}
		case render.FormatPNG:
			data, err = render.ToPNG(ctx, staticSVG(), opts.Scale)
		case render.FormatPDF:
			data, err = render.ToPDF(ctx, staticSVG())
		case render.FormatJSON:
			var jsonOpts []bars.JSONOption
			if opts.Bars {
				jsonOpts = append(jsonOpts, bars.WithJSONBars())
			}
			data, err = bars.RenderJSON(opts.Canvas, t, jsonOpts...)
		default:
			return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderCallTree sorts a copy of input with a and renders its recursion.
func RenderCallTree(ctx context.Context, a sorting.Algorithm, input []int, format string, scale float64, withValues bool) ([]byte, error) {
	if err := errs.ValidateFormats([]string{format}, TreeFormats); err != nil {
		return nil, err
	}
	tree, err := sorting.BuildCallTree(a, input)
	if err != nil {
		return nil, err
	}

	if format == render.FormatJSON {
		return json.MarshalIndent(tree, "", "  ")
	}

	dot := calltree.ToDOT(tree, input, calltree.Options{Values: withValues})
	if format == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := calltree.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, scale)
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}

// selectFrame returns frame i of t, or the final frame when i is negative.
func selectFrame(t *sorting.Trace, i int) sorting.Snapshot {
	if i < 0 {
		return t.Final()
	}
	return t.Frame(i)
}

func buildSVGOptions(t *sorting.Trace, opts Options) []bars.SVGOption {
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s (n=%d)", t.Algorithm.Title(), len(t.Input))
	}
	return []bars.SVGOption{
		bars.WithPalette(opts.Palette),
		bars.WithTitle(title),
		bars.WithFrameDuration(opts.FrameDuration.Seconds()),
		bars.WithMaxFrames(opts.MaxFrames),
	}
}
