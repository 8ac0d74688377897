package bars

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

// DefaultMaxFrames caps the frames embedded in an animated SVG.
const DefaultMaxFrames = 600

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	palette   Palette
	title     string
	frameSecs float64
	maxFrames int
}

func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p.withDefaults() } }
func WithTitle(t string) SVGOption    { return func(r *svgRenderer) { r.title = t } }

// WithFrameDuration sets the time each animation frame stays visible.
func WithFrameDuration(seconds float64) SVGOption {
	return func(r *svgRenderer) {
		if seconds > 0 {
			r.frameSecs = seconds
		}
	}
}

// WithMaxFrames limits the animation to n evenly spaced frames. The final
// frame is always kept.
func WithMaxFrames(n int) SVGOption {
	return func(r *svgRenderer) {
		if n > 0 {
			r.maxFrames = n
		}
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		palette:   DefaultPalette(),
		frameSecs: sorting.DefaultDelay.Seconds(),
		maxFrames: DefaultMaxFrames,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders a single snapshot.
func RenderSVG(cfg Config, s sorting.Snapshot, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	r.header(&buf, cfg)
	renderBars(&buf, r.palette, Layout(cfg, s))
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderAnimatedSVG renders a trace as an SVG that plays itself in a browser.
// Each frame is a group that becomes visible for one frame duration; the
// last frame stays visible.
func RenderAnimatedSVG(cfg Config, t *sorting.Trace, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	frames := SampleFrames(t.Frames, r.maxFrames)

	var buf bytes.Buffer
	r.header(&buf, cfg)
	for i, f := range frames {
		begin := float64(i) * r.frameSecs
		buf.WriteString(`  <g visibility="hidden">` + "\n")
		if i == len(frames)-1 {
			fmt.Fprintf(&buf, `    <set attributeName="visibility" to="visible" begin="%.3fs" fill="freeze"/>`+"\n", begin)
		} else {
			fmt.Fprintf(&buf, `    <set attributeName="visibility" to="visible" begin="%.3fs" dur="%.3fs"/>`+"\n", begin, r.frameSecs)
		}
		renderBars(&buf, r.palette, Layout(cfg, f))
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) header(buf *bytes.Buffer, cfg Config) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	if r.title != "" {
		fmt.Fprintf(buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	fmt.Fprintf(buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.palette.Background)
}

// renderBars writes neutral bars first so highlighted bars stay visible
// where bars share a column.
func renderBars(buf *bytes.Buffer, p Palette, bars []Bar) {
	for _, rank := range []int{0, 1, 2} {
		for _, b := range bars {
			if b.Height == 0 || b.Role.rank() != rank {
				continue
			}
			fmt.Fprintf(buf, `  <rect class="bar %s" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				b.Role, b.X, b.Y, b.Width, b.Height, p.Color(b.Role))
		}
	}
}

// SampleFrames picks at most n frames spread evenly over frames, always
// including the first and the last.
func SampleFrames(frames []sorting.Snapshot, n int) []sorting.Snapshot {
	if n <= 0 || len(frames) <= n {
		return frames
	}
	if n == 1 {
		return frames[len(frames)-1:]
	}
	out := make([]sorting.Snapshot, n)
	last := len(frames) - 1
	for i := range out {
		out[i] = frames[i*last/(n-1)]
	}
	return out
}
