package bars

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

const barGlyph = "█"

// RenderTerminal draws s as a grid of cfg.Width columns by cfg.Height rows
// of block characters. Every cell keeps a fixed width so frames of the same
// size line up when redrawn in place.
func RenderTerminal(cfg Config, s sorting.Snapshot, p Palette) string {
	bars := Layout(cfg, s)
	if len(bars) == 0 {
		blank := strings.Repeat(" ", max(cfg.Width, 0))
		return strings.TrimSuffix(strings.Repeat(blank+"\n", max(cfg.Height, 0)), "\n")
	}

	p = p.withDefaults()
	styles := map[Role]lipgloss.Style{
		RoleNeutral:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Neutral)),
		RolePrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Primary)),
		RoleSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Secondary)),
	}

	cols := columns(cfg.Width, bars)

	var b strings.Builder
	for row := 0; row < cfg.Height; row++ {
		for x := 0; x < len(cols); {
			filled, role := cols[x].filled(row), cols[x].Role
			end := x + 1
			for end < len(cols) && cols[end].filled(row) == filled && (!filled || cols[end].Role == role) {
				end++
			}
			if filled {
				b.WriteString(styles[role].Render(strings.Repeat(barGlyph, end-x)))
			} else {
				b.WriteString(strings.Repeat(" ", end-x))
			}
			x = end
		}
		if row < cfg.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// cell is the bar drawn in one terminal column.
type cell struct {
	Bar
	set bool
}

func (c cell) filled(row int) bool {
	return c.set && c.Height > 0 && row >= c.Y
}

// columns assigns a bar to each of width columns. Where bars share a column
// the higher-ranked role wins, then the taller bar.
func columns(width int, bars []Bar) []cell {
	cols := make([]cell, max(width, 0))
	for _, bar := range bars {
		for x := bar.X; x < bar.X+bar.Width && x < len(cols); x++ {
			c := cols[x]
			if !c.set || bar.Role.rank() > c.Role.rank() ||
				(bar.Role == c.Role && bar.Height > c.Height) {
				cols[x] = cell{Bar: bar, set: true}
			}
		}
	}
	return cols
}
