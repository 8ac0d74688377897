package bars

import (
	"strings"
	"testing"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

func TestRenderTerminal(t *testing.T) {
	cfg := Config{Width: 4, Height: 2, Gap: 0}
	s := sorting.Snapshot{Values: []int{1, 2}, Primary: 0, Secondary: sorting.None}

	out := RenderTerminal(cfg, s, DefaultPalette())

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	// Bar 0 is one row tall, bar 1 fills both rows, each two columns wide.
	if got := strings.Count(out, barGlyph); got != 6 {
		t.Errorf("glyphs = %d, want 6", got)
	}
	if got := strings.Count(lines[0], barGlyph); got != 2 {
		t.Errorf("top row glyphs = %d, want 2", got)
	}
}

func TestRenderTerminalEmpty(t *testing.T) {
	out := RenderTerminal(Config{Width: 3, Height: 2}, sorting.Snapshot{Primary: sorting.None, Secondary: sorting.None}, Palette{})
	if out != "   \n   " {
		t.Errorf("empty frame = %q", out)
	}
}

func TestRenderTerminalMoreValuesThanColumns(t *testing.T) {
	cfg := Config{Width: 80, Height: 2, Gap: 0}
	values := make([]int, 100)
	for i := range values {
		values[i] = 100
	}
	s := sorting.Snapshot{Values: values, Primary: 95, Secondary: 90}

	out := RenderTerminal(cfg, s, DefaultPalette())
	for i, line := range strings.Split(out, "\n") {
		if got := strings.Count(line, barGlyph); got != cfg.Width {
			t.Errorf("row %d glyphs = %d, want %d", i, got, cfg.Width)
		}
	}

	drawn := map[int]bool{}
	for _, c := range columns(cfg.Width, Layout(cfg, s)) {
		drawn[c.Index] = true
		if c.Index == s.Primary && c.Role != RolePrimary {
			t.Errorf("column with bar %d has role %v", c.Index, c.Role)
		}
	}
	if !drawn[s.Primary] {
		t.Error("primary bar not drawn")
	}
	if !drawn[s.Secondary] {
		t.Error("secondary bar not drawn")
	}
}

func TestColumnsPrefersHighlightThenHeight(t *testing.T) {
	bars := []Bar{
		{Index: 0, X: 0, Width: 1, Y: 0, Height: 4, Role: RoleNeutral},
		{Index: 1, X: 0, Width: 1, Y: 3, Height: 1, Role: RoleSecondary},
		{Index: 2, X: 1, Width: 1, Y: 2, Height: 2, Role: RoleNeutral},
		{Index: 3, X: 1, Width: 1, Y: 1, Height: 3, Role: RoleNeutral},
		{Index: 4, X: 2, Width: 1, Y: 3, Height: 1, Role: RoleSecondary},
		{Index: 5, X: 2, Width: 1, Y: 3, Height: 1, Role: RolePrimary},
	}

	cols := columns(3, bars)
	want := []int{1, 3, 5}
	for x, c := range cols {
		if c.Index != want[x] {
			t.Errorf("column %d shows bar %d, want %d", x, c.Index, want[x])
		}
	}
}
