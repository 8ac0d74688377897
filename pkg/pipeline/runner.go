package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sortviz/pkg/cache"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute records a trace and renders it in every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	traceStart := time.Now()
	t, hit, err := r.TraceWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	result.Trace = t
	result.TraceHit = hit
	result.Stats.TraceTime = time.Since(traceStart)
	result.Stats.Size = len(t.Input)
	result.Stats.Steps = t.Steps()

	r.Logger.Info("recorded trace",
		"algorithm", t.Algorithm,
		"size", len(t.Input),
		"steps", t.Steps(),
		"cached", hit,
		"duration", result.Stats.TraceTime)

	renderStart := time.Now()
	artifacts, err := Render(ctx, t, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// TraceWithCacheInfo records a trace with caching and reports whether it
// came from the cache. opts.Refresh skips the lookup but still stores the
// fresh trace.
func (r *Runner) TraceWithCacheInfo(ctx context.Context, opts Options) (*sorting.Trace, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.ValidateForTrace(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.TraceKey(opts.TraceKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var t sorting.Trace
			if err := json.Unmarshal(data, &t); err == nil {
				return &t, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached trace", "key", cacheKey)
		}
	}

	t, err := sorting.Record(ctx, opts.Algorithm, opts.ResolveInput())
	if err != nil {
		return nil, false, err
	}
	if opts.Input == nil {
		t.Seed = opts.Seed
	}

	if data, err := json.Marshal(t); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLTrace); err != nil {
			opts.Logger.Warn("failed to cache trace", "error", err)
		}
	}

	return t, false, nil
}

// Trace is a convenience wrapper that calls TraceWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Trace(ctx context.Context, opts Options) (*sorting.Trace, error) {
	t, _, err := r.TraceWithCacheInfo(ctx, opts)
	return t, err
}

// CallTree builds the recursion tree for opts and renders it in format
// (dot, svg, png, pdf or json).
func (r *Runner) CallTree(ctx context.Context, opts Options, format string, withValues bool) ([]byte, error) {
	opts.SetDefaults()
	if err := opts.ValidateForTrace(); err != nil {
		return nil, err
	}
	return RenderCallTree(ctx, opts.Algorithm, opts.ResolveInput(), format, opts.Scale, withValues)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
