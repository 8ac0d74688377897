package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

func recordTrace(t *testing.T, a sorting.Algorithm, input ...int) *sorting.Trace {
	t.Helper()
	tr, err := sorting.Record(context.Background(), a, input)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	return tr
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(m PlayerModel, msg tea.Msg) (PlayerModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(PlayerModel), cmd
}

func TestPlayerModelPlaysToEnd(t *testing.T) {
	tr := recordTrace(t, sorting.AlgBubble, 3, 1, 2)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)

	if m.Init() == nil {
		t.Fatal("Init() should schedule the first tick")
	}
	for i := 0; i < len(tr.Frames)-1; i++ {
		if m.Done {
			t.Fatalf("done after %d ticks, want %d", i, len(tr.Frames)-1)
		}
		m, _ = update(m, tickMsg{gen: m.gen})
	}
	if !m.Done {
		t.Fatal("player not done after the last frame")
	}
	if m.Frame != len(tr.Frames)-1 {
		t.Errorf("Frame = %d, want %d", m.Frame, len(tr.Frames)-1)
	}

	// A tick after the end does nothing.
	m, cmd := update(m, tickMsg{gen: m.gen})
	if cmd != nil || m.Frame != len(tr.Frames)-1 {
		t.Error("tick after the end should be ignored")
	}
}

func TestPlayerModelPause(t *testing.T) {
	tr := recordTrace(t, sorting.AlgInsertion, 4, 3, 2, 1)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 40, 10)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Paused {
		t.Fatal("space should pause")
	}

	// Ticks scheduled before the pause are stale.
	m, _ = update(m, tickMsg{gen: m.gen - 1})
	m, _ = update(m, tickMsg{gen: m.gen})
	if m.Frame != 0 {
		t.Errorf("Frame = %d while paused, want 0", m.Frame)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Frame != 1 {
		t.Errorf("Frame = %d after step, want 1", m.Frame)
	}

	m, cmd := update(m, runeKey('p'))
	if m.Paused || cmd == nil {
		t.Error("p should resume and schedule a tick")
	}
}

func TestPlayerModelQuit(t *testing.T) {
	tr := recordTrace(t, sorting.AlgSelection, 2, 1)

	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	m, cmd := update(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if !m.Aborted {
		t.Error("quitting mid-sort should mark the run aborted")
	}

	m = NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	for !m.Done {
		m, _ = update(m, tickMsg{gen: m.gen})
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.Aborted {
		t.Error("quitting after the sort finished is not an abort")
	}
}

func TestPlayerModelRestart(t *testing.T) {
	tr := recordTrace(t, sorting.AlgQuick, 5, 1, 4, 2, 3)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	for !m.Done {
		m, _ = update(m, tickMsg{gen: m.gen})
	}

	m, cmd := update(m, runeKey('r'))
	if m.Frame != 0 || m.Done || cmd == nil {
		t.Errorf("restart: Frame=%d Done=%v cmd=%v", m.Frame, m.Done, cmd != nil)
	}
}

func TestPlayerModelEmptyTrace(t *testing.T) {
	tr := recordTrace(t, sorting.AlgMerge)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	if !m.Done {
		t.Error("a single-frame trace starts done")
	}
	if m.Init() != nil {
		t.Error("a done player schedules no tick")
	}
}

func TestPlayerModelResize(t *testing.T) {
	tr := recordTrace(t, sorting.AlgBubble, 2, 1)

	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Width != 120 || m.Height != 40-chromeLines {
		t.Errorf("size = %dx%d, want 120x%d", m.Width, m.Height, 40-chromeLines)
	}

	fixed := NewPlayerModel(tr, bars.DefaultPalette(), 0, 30, 8)
	fixed, _ = update(fixed, tea.WindowSizeMsg{Width: 120, Height: 40})
	if fixed.Width != 30 || fixed.Height != 8 {
		t.Errorf("explicit size changed to %dx%d", fixed.Width, fixed.Height)
	}
}

func TestPlayerModelView(t *testing.T) {
	tr := recordTrace(t, sorting.AlgMerge, 3, 1, 2)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 20, 5)

	view := m.View()
	for _, want := range []string{"Merge Sort", "n=3", "step 0/", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTerminalChart(t *testing.T) {
	tests := []struct {
		n, width int
		wantGap  int
	}{
		{10, 80, 1},
		{40, 79, 1},
		{40, 78, 0},
		{100, 80, 0},
		{0, 80, 0},
	}
	for _, tt := range tests {
		cfg := terminalChart(tt.n, tt.width, 20)
		if cfg.Gap != tt.wantGap {
			t.Errorf("terminalChart(%d, %d).Gap = %d, want %d", tt.n, tt.width, cfg.Gap, tt.wantGap)
		}
	}
}

func TestAlgorithmListModel(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		want   *sorting.Algorithm
		cursor int
	}{
		{
			name:   "enter picks initial",
			keys:   []tea.KeyMsg{{Type: tea.KeyEnter}},
			want:   ptr(sorting.AlgMerge),
			cursor: int(sorting.AlgMerge),
		},
		{
			name:   "navigate then enter",
			keys:   []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want:   ptr(sorting.AlgQuick),
			cursor: int(sorting.AlgQuick),
		},
		{
			name:   "cursor stops at the end",
			keys:   []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}},
			cursor: int(sorting.AlgQuick),
		},
		{
			name:   "digit selects directly",
			keys:   []tea.KeyMsg{runeKey('1')},
			want:   ptr(sorting.AlgBubble),
			cursor: int(sorting.AlgBubble),
		},
		{
			name:   "quit selects nothing",
			keys:   []tea.KeyMsg{{Type: tea.KeyUp}, runeKey('q')},
			cursor: int(sorting.AlgInsertion),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAlgorithmListModel(sorting.AlgMerge)
			for _, k := range tt.keys {
				next, _ := m.Update(k)
				m = next.(AlgorithmListModel)
			}
			if m.Cursor != tt.cursor {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.cursor)
			}
			switch {
			case tt.want == nil && m.Selected != nil:
				t.Errorf("Selected = %v, want none", *m.Selected)
			case tt.want != nil && (m.Selected == nil || *m.Selected != *tt.want):
				t.Errorf("Selected = %v, want %v", m.Selected, *tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestPlayerModelFillsNarrowTerminal(t *testing.T) {
	tr := recordTrace(t, sorting.AlgQuick, sorting.Generate(sorting.MaxSize, 1)...)
	m := NewPlayerModel(tr, bars.DefaultPalette(), 0, 0, 0)
	if len(tr.Input) <= m.Width {
		t.Fatalf("want more values (%d) than columns (%d)", len(tr.Input), m.Width)
	}

	lines := strings.Split(m.View(), "\n")
	bottom := lines[2+m.Height-1]
	if got := strings.Count(bottom, "█"); got != m.Width {
		t.Errorf("bottom chart row has %d bars, want all %d columns", got, m.Width)
	}
}
