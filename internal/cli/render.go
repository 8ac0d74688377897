package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/sortviz/pkg/config"
	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/pipeline"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// traceFlags are the flags shared by every command that records a trace.
type traceFlags struct {
	algorithm string
	size      int
	seed      uint64
	input     string // explicit comma-separated values
}

func (f *traceFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.algorithm, "algorithm", "a", "", "algorithm name or number (default from config, else quick)")
	flags.IntVarP(&f.size, "size", "n", 0, "number of values to sort (default from config)")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed for the input (default from config)")
	flags.StringVar(&f.input, "input", "", "explicit comma-separated values instead of a generated input")
}

// apply fills the trace part of opts from flags, falling back to cfg.
func (f *traceFlags) apply(flags *pflag.FlagSet, cfg config.Config, opts *pipeline.Options) error {
	name := f.algorithm
	if !flags.Changed("algorithm") {
		name = cfg.Algorithm
		if name == "" {
			name = sorting.AlgQuick.String()
		}
	}
	a, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	opts.Algorithm = a

	if f.input != "" {
		in, err := sorting.ParseValues(f.input)
		if err != nil {
			return err
		}
		opts.Input = in
		return nil
	}

	opts.Size = cfg.Size
	if flags.Changed("size") {
		opts.Size = f.size
	}
	opts.Size = clampSize(opts.Size)
	opts.Seed = cfg.Seed
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	return nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	trace         traceFlags
	traceFile     string // previously exported JSON trace to replay
	output        string // output file (single format) or base path (multiple)
	formats       string
	frame         string
	animate       bool
	maxFrames     int
	frameDuration time.Duration
	scale         float64
	withBars      bool
	title         string
	width         int
	height        int
	gap           int
	noCache       bool
	refresh       bool
}

// renderCommand creates the render command for exporting a recorded sort.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export a recorded sort as SVG, PNG, PDF or JSON",
		Long: `Export a recorded sort as SVG, PNG, PDF or JSON.

A static export shows one frame (the sorted result by default). With
--animate the SVG contains every step and plays in any browser. JSON holds
the full trace and can be loaded by other tools, or rendered again with
--trace.

PNG and PDF output requires rsvg-convert (librsvg).`,
		Example: `  sortviz render -a merge -n 40 --animate -o merge.svg
  sortviz render -a quick --input 5,3,8,1 -f svg,json
  sortviz render -a bubble -n 20 --frame 10 -f png
  sortviz render --trace merge-40.json --animate -o merge.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.Flags(), &opts)
		},
	}

	opts.trace.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.traceFile, "trace", "", "render a JSON trace exported earlier instead of recording one")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple), - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.frame, "frame", "last", "frame to draw for static output: index or last")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "animate the SVG over every step")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 0, "cap frames in an animated SVG (default 600)")
	cmd.Flags().DurationVar(&opts.frameDuration, "frame-duration", 0, "time per animation frame (default: config delay)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.withBars, "bars", false, "include bar geometry in JSON output")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG title (default: algorithm and size)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels (default from config)")
	cmd.Flags().IntVar(&opts.gap, "gap", 0, "gap between bars in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable trace caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "record a fresh trace even if one is cached")
	cmd.MarkFlagsMutuallyExclusive("trace", "input")
	cmd.MarkFlagsMutuallyExclusive("trace", "algorithm")

	return cmd
}

// runRender records (or loads) the trace and writes the requested artifacts.
func (c *CLI) runRender(ctx context.Context, flags *pflag.FlagSet, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Formats:       parseFormats(opts.formats),
		Canvas:        cfg.Canvas,
		Palette:       cfg.Palette,
		Animate:       opts.animate,
		MaxFrames:     opts.maxFrames,
		FrameDuration: cfg.Delay.Duration,
		Scale:         opts.scale,
		Bars:          opts.withBars,
		Title:         opts.title,
		Refresh:       opts.refresh,
		Logger:        logger,
	}

	var loaded *sorting.Trace
	if opts.traceFile != "" {
		var canvas bars.Config
		if loaded, canvas, err = loadTrace(opts.traceFile); err != nil {
			return err
		}
		if canvas.Validate() == nil {
			popts.Canvas = canvas
		}
		popts.Algorithm = loaded.Algorithm
		logger.Debug("loaded trace", "path", opts.traceFile, "algorithm", loaded.Algorithm, "steps", loaded.Steps())
	} else if err := opts.trace.apply(flags, cfg, &popts); err != nil {
		return err
	}
	if popts.Frame, err = parseFrame(opts.frame); err != nil {
		return err
	}
	if flags.Changed("frame-duration") {
		popts.FrameDuration = opts.frameDuration
	}
	if flags.Changed("width") {
		popts.Canvas.Width = opts.width
	}
	if flags.Changed("height") {
		popts.Canvas.Height = opts.height
	}
	if flags.Changed("gap") {
		popts.Canvas.Gap = opts.gap
	}
	if err := popts.ValidateForRender(); err != nil {
		return err
	}

	if loaded != nil {
		artifacts, err := pipeline.Render(ctx, loaded, popts)
		if err != nil {
			return err
		}
		return writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   popts.Formats,
			output:    opts.output,
			base:      defaultBase(loaded.Algorithm, len(loaded.Input)),
			size:      len(loaded.Input),
			steps:     loaded.Steps(),
		})
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", popts.Algorithm.Title()))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   popts.Formats,
		output:    opts.output,
		base:      defaultBase(popts.Algorithm, result.Stats.Size),
		size:      result.Stats.Size,
		steps:     result.Stats.Steps,
		cacheHit:  result.TraceHit,
	})
}

// loadTrace reads a trace written by the json format.
func loadTrace(path string) (*sorting.Trace, bars.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, bars.Config{}, errs.Wrap(errs.ErrCodeNotFound, err, "trace file %s", path)
	}
	if err != nil {
		return nil, bars.Config{}, fmt.Errorf("read trace: %w", err)
	}
	return bars.ReadJSON(data)
}

// =============================================================================
// Output
// =============================================================================

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	output    string // explicit path, base path, "-" or empty
	base      string // base name used when output is empty
	size      int
	steps     int
	cacheHit  bool
}

// writeArtifacts writes each artifact to its file and prints a summary.
// A single format with output "-" goes to stdout.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return errs.New(errs.ErrCodeInvalidPath, "stdout output needs exactly one format")
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := outputPath(p.output, p.base, format, len(p.formats) == 1)
		if err := errs.ValidateOutputPath(path); err != nil {
			return err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, p.artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %d file(s)", len(paths))
	printStats(p.size, p.steps, p.cacheHit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// outputPath picks the file name for one format. An explicit output is used
// as-is for a single format; otherwise its known extension is replaced.
func outputPath(output, base, format string, single bool) string {
	if output == "" {
		return base + "." + format
	}
	if single {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from path.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) || ext == "."+pipeline.FormatDOT {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

func defaultBase(a sorting.Algorithm, size int) string {
	return fmt.Sprintf("%s-%d", a, size)
}

// =============================================================================
// Flag Parsing
// =============================================================================

// parseFrame parses --frame: a non-negative index or "last".
func parseFrame(s string) (int, error) {
	if s == "" || s == "last" {
		return pipeline.FrameLast, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid frame %q (want an index or last)", s)
	}
	return n, nil
}
