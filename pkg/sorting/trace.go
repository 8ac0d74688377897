package sorting

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/observability"
)

// Snapshot is an immutable copy of the sequence at one step, with its
// highlight indices.
type Snapshot struct {
	Values    []int `json:"values"`
	Primary   int   `json:"primary"`
	Secondary int   `json:"secondary"`
}

// NewSnapshot copies values into a new snapshot.
func NewSnapshot(values []int, primary, secondary int) Snapshot {
	return Snapshot{Values: slices.Clone(values), Primary: primary, Secondary: secondary}
}

// Len returns the number of elements in the snapshot.
func (s Snapshot) Len() int { return len(s.Values) }

// Trace is a full recorded run: the input, every step and the final frame.
type Trace struct {
	ID        string     `json:"id"`
	Algorithm Algorithm  `json:"algorithm"`
	Seed      uint64     `json:"seed,omitempty"`
	Input     []int      `json:"input"`
	Frames    []Snapshot `json:"frames"`
}

// Steps returns the number of rendered steps, excluding the final frame.
func (t *Trace) Steps() int {
	if len(t.Frames) == 0 {
		return 0
	}
	return len(t.Frames) - 1
}

// Final returns the last frame (the sorted sequence without highlights).
func (t *Trace) Final() Snapshot {
	if len(t.Frames) == 0 {
		return Snapshot{Primary: None, Secondary: None}
	}
	return t.Frames[len(t.Frames)-1]
}

// Frame returns frame i, clamped to the valid range.
func (t *Trace) Frame(i int) Snapshot {
	if len(t.Frames) == 0 {
		return t.Final()
	}
	return t.Frames[max(0, min(i, len(t.Frames)-1))]
}

// Recorder collects deep-copied snapshots. Its Render method satisfies
// [RenderFunc].
type Recorder struct {
	frames []Snapshot
}

// Render records one step.
func (r *Recorder) Render(values []int, primary, secondary int) {
	r.frames = append(r.frames, NewSnapshot(values, primary, secondary))
}

// Frames returns the recorded snapshots.
func (r *Recorder) Frames() []Snapshot { return r.frames }

// Record sorts a copy of input with a and returns the trace of the run.
// The last frame is always the sorted sequence with no highlights, so even
// an empty input yields exactly one frame.
func Record(ctx context.Context, a Algorithm, input []int) (*Trace, error) {
	start := time.Now()
	observability.Sort().OnSortStart(ctx, a.String(), len(input))

	fn := a.Func()
	if fn == nil {
		err := errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(a))
		observability.Sort().OnSortComplete(ctx, a.String(), len(input), 0, time.Since(start), err)
		return nil, err
	}

	values := slices.Clone(input)
	var rec Recorder
	fn(values, rec.Render)
	rec.Render(values, None, None)

	t := &Trace{
		ID:        uuid.NewString(),
		Algorithm: a,
		Input:     slices.Clone(input),
		Frames:    rec.Frames(),
	}
	observability.Sort().OnSortComplete(ctx, a.String(), len(input), t.Steps(), time.Since(start), nil)
	return t, nil
}
