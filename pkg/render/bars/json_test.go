package bars

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

func TestRenderJSON(t *testing.T) {
	tr, err := sorting.Record(context.Background(), sorting.AlgMerge, []int{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	tr.Seed = 42

	data, err := RenderJSON(DefaultConfig(), tr)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if raw["algorithm"] != "merge" {
		t.Errorf("algorithm = %v, want merge", raw["algorithm"])
	}
	if raw["size"] != float64(3) {
		t.Errorf("size = %v, want 3", raw["size"])
	}
	if raw["steps"] != float64(tr.Steps()) {
		t.Errorf("steps = %v, want %d", raw["steps"], tr.Steps())
	}
	frames := raw["frames"].([]any)
	if _, ok := frames[0].(map[string]any)["bars"]; ok {
		t.Error("bars should be omitted by default")
	}
}

func TestRenderJSONWithBars(t *testing.T) {
	tr, _ := sorting.Record(context.Background(), sorting.AlgQuick, []int{2, 1})
	data, err := RenderJSON(DefaultConfig(), tr, WithJSONBars())
	if err != nil {
		t.Fatal(err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	for i, f := range out.Frames {
		if len(f.Bars) != 2 {
			t.Errorf("frame %d has %d bars, want 2", i, len(f.Bars))
		}
	}
}

func TestReadJSON(t *testing.T) {
	tr, _ := sorting.Record(context.Background(), sorting.AlgSelection, []int{5, 3, 8, 1})
	cfg := Config{Width: 320, Height: 200, Gap: 1}
	data, err := RenderJSON(cfg, tr)
	if err != nil {
		t.Fatal(err)
	}

	got, gotCfg, err := ReadJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if gotCfg != cfg {
		t.Errorf("canvas = %+v, want %+v", gotCfg, cfg)
	}
	if got.ID != tr.ID || got.Algorithm != tr.Algorithm {
		t.Errorf("trace header mismatch: %s/%v", got.ID, got.Algorithm)
	}
	if len(got.Frames) != len(tr.Frames) {
		t.Fatalf("frames = %d, want %d", len(got.Frames), len(tr.Frames))
	}
	if !slices.Equal(got.Final().Values, []int{1, 3, 5, 8}) {
		t.Errorf("final = %v", got.Final().Values)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown algorithm", `{"algorithm":"bogo"}`},
		{"malformed", `not json`},
		{"no frames", `{"algorithm":"bubble","input":[2,1],"frames":[]}`},
		{"short frame", `{"algorithm":"bubble","input":[2,1],"frames":[{"values":[2],"primary":-1,"secondary":-1}]}`},
		{"highlight out of range", `{"algorithm":"bubble","input":[2,1],"frames":[{"values":[2,1],"primary":5,"secondary":-1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ReadJSON([]byte(tt.data)); !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON() error = %v, want %s", err, errs.ErrCodeInvalidInput)
			}
		})
	}
}
