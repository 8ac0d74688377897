package bars

import (
	"encoding/json"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	withBars bool
}

// WithJSONBars includes the computed bar geometry for every frame, for
// consumers that do not want to repeat the layout math.
func WithJSONBars() JSONOption { return func(r *jsonRenderer) { r.withBars = true } }

type jsonOutput struct {
	ID        string            `json:"id"`
	Algorithm sorting.Algorithm `json:"algorithm"`
	Seed      uint64            `json:"seed,omitempty"`
	Size      int               `json:"size"`
	Steps     int               `json:"steps"`
	Canvas    Config            `json:"canvas"`
	Input     []int             `json:"input"`
	Frames    []jsonFrame       `json:"frames"`
}

type jsonFrame struct {
	Values    []int `json:"values"`
	Primary   int   `json:"primary"`
	Secondary int   `json:"secondary"`
	Bars      []Bar `json:"bars,omitempty"`
}

// RenderJSON encodes a trace together with its canvas configuration.
func RenderJSON(cfg Config, t *sorting.Trace, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:        t.ID,
		Algorithm: t.Algorithm,
		Seed:      t.Seed,
		Size:      len(t.Input),
		Steps:     t.Steps(),
		Canvas:    cfg,
		Input:     t.Input,
		Frames:    make([]jsonFrame, len(t.Frames)),
	}
	for i, f := range t.Frames {
		out.Frames[i] = jsonFrame{Values: f.Values, Primary: f.Primary, Secondary: f.Secondary}
		if r.withBars {
			out.Frames[i].Bars = Layout(cfg, f)
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON decodes output of [RenderJSON] back into a trace and its canvas.
// Every frame must have as many values as the input and highlight indices
// that are in range or [sorting.None].
func ReadJSON(data []byte) (*sorting.Trace, Config, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode trace")
	}
	if len(in.Frames) == 0 {
		return nil, Config{}, errs.New(errs.ErrCodeInvalidInput, "trace has no frames")
	}

	t := &sorting.Trace{
		ID:        in.ID,
		Algorithm: in.Algorithm,
		Seed:      in.Seed,
		Input:     in.Input,
		Frames:    make([]sorting.Snapshot, len(in.Frames)),
	}
	n := len(in.Input)
	for i, f := range in.Frames {
		if len(f.Values) != n {
			return nil, Config{}, errs.New(errs.ErrCodeInvalidInput, "frame %d has %d values, want %d", i, len(f.Values), n)
		}
		if !validIndex(f.Primary, n) || !validIndex(f.Secondary, n) {
			return nil, Config{}, errs.New(errs.ErrCodeInvalidInput, "frame %d highlights out of range", i)
		}
		t.Frames[i] = sorting.Snapshot{Values: f.Values, Primary: f.Primary, Secondary: f.Secondary}
	}
	return t, in.Canvas, nil
}

func validIndex(i, n int) bool {
	return i == sorting.None || (i >= 0 && i < n)
}
