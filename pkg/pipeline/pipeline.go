// Package pipeline provides the record → render pipeline shared by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Trace: generate (or take) an input and record every step of a sort
//  2. Render: turn the trace into SVG, PNG, PDF or JSON artifacts
//
// Traces are cached by (algorithm, size, seed) or by input hash, so the
// same request always yields the same trace ID.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Algorithm: sorting.AlgQuick,
//	    Size:      40,
//	    Seed:      7,
//	    Formats:   []string{"svg"},
//	    Animate:   true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sortviz/pkg/cache"
	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultFrameDuration is how long each frame of an animated SVG is shown.
	DefaultFrameDuration = sorting.DefaultDelay

	// FrameLast selects the final, sorted frame for static output.
	FrameLast = -1
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Trace options
	Algorithm sorting.Algorithm `json:"algorithm"`
	Size      int               `json:"size"`
	Seed      uint64            `json:"seed"`
	Input     []int             `json:"input,omitempty"` // explicit input; overrides Size and Seed
	Refresh   bool              `json:"refresh,omitempty"`

	// Render options
	Formats       []string      `json:"formats,omitempty"`
	Canvas        bars.Config   `json:"canvas"`
	Palette       bars.Palette  `json:"palette"`
	Frame         int           `json:"frame"`
	Animate       bool          `json:"animate,omitempty"`
	MaxFrames     int           `json:"max_frames,omitempty"`
	FrameDuration time.Duration `json:"frame_duration,omitempty"`
	Scale         float64       `json:"scale,omitempty"`
	Bars          bool          `json:"bars,omitempty"` // include bar geometry in JSON output
	Title         string        `json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Trace is the recorded run.
	Trace *sorting.Trace

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// TraceHit reports whether the trace came from the cache.
	TraceHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Size       int
	Steps      int
	TraceTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero values. Size is clamped to [0, sorting.MaxSize].
func (o *Options) SetDefaults() {
	o.Size, _ = sorting.ClampSize(o.Size)
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Canvas == (bars.Config{}) {
		o.Canvas = bars.DefaultConfig()
	}
	if o.MaxFrames == 0 {
		o.MaxFrames = bars.DefaultMaxFrames
	}
	if o.FrameDuration == 0 {
		o.FrameDuration = DefaultFrameDuration
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForTrace checks the options needed to record a trace.
func (o *Options) ValidateForTrace() error {
	if !o.Algorithm.Valid() {
		return errs.New(errs.ErrCodeInvalidAlgorithm, "invalid choice %d (want 0-%d)", int(o.Algorithm), len(sorting.All)-1)
	}
	if len(o.Input) > sorting.MaxSize {
		return errs.New(errs.ErrCodeInvalidSize, "input has %d values (max %d)", len(o.Input), sorting.MaxSize)
	}
	return nil
}

// ValidateForRender sets defaults and checks the options needed to render.
func (o *Options) ValidateForRender() error {
	o.SetDefaults()
	if err := errs.ValidateFormats(o.Formats, render.Formats); err != nil {
		return err
	}
	if err := o.Canvas.Validate(); err != nil {
		return err
	}
	if o.MaxFrames < 1 {
		return errs.New(errs.ErrCodeInvalidInput, "max frames must be at least 1")
	}
	if o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale cannot be negative")
	}
	return nil
}

// ResolveInput returns the sequence to sort: the explicit input if given,
// otherwise Size values generated from Seed.
func (o *Options) ResolveInput() []int {
	if o.Input != nil {
		return slices.Clone(o.Input)
	}
	return sorting.Generate(o.Size, o.Seed)
}

// TraceKeyOpts returns cache key options for the trace.
func (o *Options) TraceKeyOpts() cache.TraceKeyOpts {
	opts := cache.TraceKeyOpts{Algorithm: o.Algorithm.String()}
	if o.Input != nil {
		opts.Size = len(o.Input)
		data, _ := json.Marshal(o.Input)
		opts.InputHash = cache.Hash(data)
		return opts
	}
	opts.Size = o.Size
	opts.Seed = o.Seed
	return opts
}
