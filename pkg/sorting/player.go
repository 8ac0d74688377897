package sorting

import (
	"context"
	"time"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/observability"
)

// DefaultDelay is the pause after each rendered step.
const DefaultDelay = 20 * time.Millisecond

// Player runs a sort synchronously, pausing after every step so the
// animation is perceptible.
type Player struct {
	Delay  time.Duration
	Render RenderFunc
}

// Play sorts values in place with a. After the last step the sorted
// sequence is rendered once more without highlights.
//
// If ctx is cancelled mid-sort, rendering and delays stop immediately. The
// sort itself still runs to completion so values remains a permutation of
// the input, and Play returns ctx.Err().
func (p Player) Play(ctx context.Context, a Algorithm, values []int) error {
	fn := a.Func()
	if fn == nil {
		return errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(a))
	}

	start := time.Now()
	observability.Sort().OnSortStart(ctx, a.String(), len(values))

	steps := 0
	cancelled := ctx.Err() != nil
	fn(values, func(v []int, primary, secondary int) {
		if cancelled {
			return
		}
		steps++
		p.Render.emit(v, primary, secondary)
		cancelled = !p.wait(ctx)
	})

	var err error
	if cancelled {
		err = ctx.Err()
	} else {
		p.Render.emit(values, None, None)
	}
	observability.Sort().OnSortComplete(ctx, a.String(), len(values), steps, time.Since(start), err)
	return err
}

// wait blocks for the configured delay and reports false if ctx ended first.
func (p Player) wait(ctx context.Context) bool {
	if p.Delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
