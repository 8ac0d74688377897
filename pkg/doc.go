// Package pkg provides the libraries behind the sortviz sorting visualizer.
//
// # Overview
//
// Sortviz runs classic comparison sorts and shows every step as a bar chart,
// with the one or two elements the step touches highlighted. The pkg
// directory is organized as:
//
//  1. [sorting] - The five instrumented algorithms, traces and call trees
//  2. [render] - Bar charts (SVG, terminal, JSON) and call-tree graphs
//  3. [pipeline] - Orchestration (record → render) with trace caching
//  4. [cache], [config], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	values (generated from a seed or given explicitly)
//	         ↓
//	    [sorting] package (sort, calling render after each step)
//	         ↓
//	    [sorting.Trace] (every step as an immutable snapshot)
//	         ↓
//	    [render/bars] package (one frame or all frames)
//	         ↓
//	    terminal / SVG / PNG / PDF / JSON output
//
// The sorts never know how they are drawn: each takes a render callback and
// invokes it with the sequence and two highlight indices. A [sorting.Player]
// draws live with a delay between steps; a [sorting.Recorder] keeps the
// steps for export.
//
// # Quick Start
//
// Record a sort and write the final frame as SVG:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/sortviz/pkg/render/bars"
//	    "github.com/matzehuels/sortviz/pkg/sorting"
//	)
//
//	values := sorting.Generate(40, 7)
//	trace, _ := sorting.Record(context.Background(), sorting.AlgMerge, values)
//	svg := bars.RenderSVG(bars.DefaultConfig(), trace.Final())
//	os.WriteFile("merge.svg", svg, 0644)
//
// Or let the pipeline do validation, caching and format conversion:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm: sorting.AlgQuick,
//	    Size:      30,
//	    Seed:      1,
//	    Formats:   []string{"svg", "json"},
//	    Animate:   true,
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/sorting/...      # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [sorting]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sorting
// [sorting.Trace]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sorting#Trace
// [sorting.Player]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sorting#Player
// [sorting.Recorder]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sorting#Recorder
// [render]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/render
// [render/bars]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/render/bars
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/observability
package pkg
