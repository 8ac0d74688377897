package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// chromeLines is the number of terminal rows used by the player's header
// and footer.
const chromeLines = 5

// =============================================================================
// PlayerModel - Animated trace playback
// =============================================================================

// tickMsg advances the player. gen ties a tick to the play/pause cycle that
// scheduled it so ticks from before a pause are dropped.
type tickMsg struct{ gen int }

// PlayerModel is the bubbletea model that plays a recorded trace one frame
// per tick. Quitting is possible at any time.
type PlayerModel struct {
	Trace   *sorting.Trace
	Palette bars.Palette
	Delay   time.Duration

	Frame   int
	Paused  bool
	Done    bool
	Aborted bool // quit before the last frame

	Width  int
	Height int
	fixed  bool // size given explicitly; window resizes are ignored
	gen    int
}

// NewPlayerModel creates a player for t. A zero width or height fits the
// chart to the terminal window.
func NewPlayerModel(t *sorting.Trace, p bars.Palette, delay time.Duration, width, height int) PlayerModel {
	m := PlayerModel{
		Trace:   t,
		Palette: p,
		Delay:   delay,
		Width:   80,
		Height:  20,
	}
	if width > 0 && height > 0 {
		m.Width, m.Height, m.fixed = width, height, true
	}
	m.Done = m.last() == 0
	return m
}

func (m PlayerModel) Init() tea.Cmd {
	if m.Done {
		return nil
	}
	return m.tick()
}

func (m PlayerModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Delay, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m PlayerModel) last() int { return max(len(m.Trace.Frames)-1, 0) }

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = !m.Done
			return m, tea.Quit
		case " ", "p":
			if m.Done {
				return m, nil
			}
			m.Paused = !m.Paused
			m.gen++
			if !m.Paused {
				return m, m.tick()
			}
		case "right", "l":
			if m.Paused && !m.Done {
				m.advance()
			}
		case "r":
			m.Frame, m.Done, m.Paused = 0, m.last() == 0, false
			m.gen++
			if !m.Done {
				return m, m.tick()
			}
		}
	case tickMsg:
		if msg.gen != m.gen || m.Paused || m.Done {
			return m, nil
		}
		m.advance()
		if !m.Done {
			return m, m.tick()
		}
	case tea.WindowSizeMsg:
		if !m.fixed {
			m.Width = max(msg.Width, 1)
			m.Height = max(msg.Height-chromeLines, 1)
		}
	}
	return m, nil
}

func (m *PlayerModel) advance() {
	if m.Frame < m.last() {
		m.Frame++
	}
	m.Done = m.Frame >= m.last()
}

func (m PlayerModel) chartConfig() bars.Config {
	return terminalChart(len(m.Trace.Input), m.Width, m.Height)
}

// terminalChart sizes a bar chart of n values in character cells. Bars are
// separated by one blank column when they fit.
func terminalChart(n, width, height int) bars.Config {
	gap := 0
	if n > 0 && 2*n-1 <= width {
		gap = 1
	}
	return bars.Config{Width: width, Height: height, Gap: gap}
}

func (m PlayerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Trace.Algorithm.Title()))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  n=%d  step %d/%d", len(m.Trace.Input), m.Frame, m.last())))
	switch {
	case m.Done:
		b.WriteString("  " + StyleSuccess.Render("sorted"))
	case m.Paused:
		b.WriteString("  " + StyleWarning.Render("paused"))
	}
	b.WriteString("\n\n")

	b.WriteString(bars.RenderTerminal(m.chartConfig(), m.Trace.Frame(m.Frame), m.Palette))
	b.WriteString("\n")
	b.WriteString(legend(m.Palette))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("space pause  → step  r restart  q quit"))

	return b.String()
}

// =============================================================================
// AlgorithmListModel - Interactive algorithm selection
// =============================================================================

// AlgorithmListModel is the bubbletea model for interactive algorithm selection.
type AlgorithmListModel struct {
	Cursor   int
	Selected *sorting.Algorithm
}

// NewAlgorithmListModel creates a picker with the cursor on initial.
func NewAlgorithmListModel(initial sorting.Algorithm) AlgorithmListModel {
	m := AlgorithmListModel{}
	if initial.Valid() {
		m.Cursor = int(initial)
	}
	return m
}

func (m AlgorithmListModel) Init() tea.Cmd {
	return nil
}

func (m AlgorithmListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(sorting.All)-1 {
				m.Cursor++
			}
		case "enter":
			a := sorting.All[m.Cursor]
			m.Selected = &a
			return m, tea.Quit
		default:
			if a, err := sorting.ParseAlgorithm(key); err == nil && len(key) == 1 {
				m.Cursor = int(a)
				m.Selected = &a
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m AlgorithmListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Algorithm"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  0-4 pick  q quit"))
	b.WriteString("\n\n")

	for i, a := range sorting.All {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%d  %-16s", cursor, int(a), a.Title())
		if a.Recursive() {
			line += listDimStyle.Render("recursive")
		}
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
