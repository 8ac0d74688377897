package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/sorting"
)

// algorithmsCommand lists the selectable algorithms.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos", "ls"},
		Short:   "List the available sorting algorithms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, algorithmTable())
			return nil
		},
	}
}

// algorithmTable renders every algorithm with its menu number. Recursive
// algorithms also support the tree command.
func algorithmTable() string {
	rows := make([][]string, len(sorting.All))
	for i, a := range sorting.All {
		tree := ""
		if a.Recursive() {
			tree = "yes"
		}
		rows[i] = []string{strconv.Itoa(int(a)), a.String(), a.Title(), tree}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Name", "Algorithm", "Call tree").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorCyan)
			case col == 3:
				return cellStyle.Foreground(colorGreen)
			}
			return cellStyle
		}).
		String()
}
