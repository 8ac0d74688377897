// Package sorting implements the instrumented sorting algorithms that drive
// sortviz animations.
//
// # Overview
//
// Each algorithm sorts a []int ascending in place and calls a [RenderFunc]
// after every comparison or mutation it wants to make visible. The callback
// receives the live slice plus two highlight indices:
//
//   - primary: the element currently being compared, moved or written
//   - secondary: a reference position (current minimum, pivot boundary,
//     end of the unsorted region)
//
// Either index may be [None]. Indices are otherwise always valid positions in
// the slice.
//
// # Algorithms
//
//   - [Selection]: primary = scan cursor, secondary = current minimum
//   - [Bubble]: primary = compared element, secondary = end of unsorted region
//   - [Insertion]: primary = hole being shifted, secondary = key origin
//   - [Merge]: primary = write cursor, secondary = None
//   - [Quick]: Lomuto partition, primary = scan cursor, secondary = boundary
//
// Use [Sort] to dispatch on an [Algorithm] chosen at runtime:
//
//	err := sorting.Sort(sorting.AlgQuick, values, func(v []int, p, s int) {
//	    draw(v, p, s)
//	})
//
// # Playback
//
// [Player] adds a fixed delay after every step and honors context
// cancellation, so a close request is observed mid-sort. [Record] captures the
// full run as a [Trace] of deep-copied [Snapshot] values for replay by file,
// HTTP and terminal sinks.
//
// # Call Trees
//
// [BuildCallTree] exposes the recursion of merge and quick sort as a tree of
// index ranges, rendered by the calltree package.
package sorting
