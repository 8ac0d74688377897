package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// promptSize asks for the number of values to sort. r should be shared
// between prompts (for example a *bufio.Reader) so no input is lost.
func promptSize(r io.Reader, w io.Writer) (int, error) {
	fmt.Fprintf(w, "Enter the size of the array(Max %d): ", sorting.MaxSize)
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidSize, err, "read array size")
	}
	return n, nil
}

// promptAlgorithm prints the numbered menu and reads a selector.
func promptAlgorithm(r io.Reader, w io.Writer) (sorting.Algorithm, error) {
	fmt.Fprintln(w)
	for _, a := range sorting.All {
		fmt.Fprintf(w, "Press %d for %s\n", int(a), a.Title())
	}
	fmt.Fprint(w, "Enter your choice: ")

	var choice string
	if _, err := fmt.Fscan(r, &choice); err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidAlgorithm, err, "read choice")
	}
	return sorting.ParseAlgorithm(choice)
}

// pickAlgorithm shows the interactive algorithm list. Quitting without a
// choice is an error.
func pickAlgorithm(initial sorting.Algorithm, opts ...tea.ProgramOption) (sorting.Algorithm, error) {
	final, err := tea.NewProgram(NewAlgorithmListModel(initial), opts...).Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(AlgorithmListModel)
	if !ok || m.Selected == nil {
		return 0, errs.New(errs.ErrCodeInvalidAlgorithm, "no algorithm selected")
	}
	return *m.Selected, nil
}

// clampSize bounds n and reports the adjustment the way the prompt promises.
func clampSize(n int) int {
	size, clamped := sorting.ClampSize(n)
	if clamped {
		if n > sorting.MaxSize {
			printWarning("Array size exceeds the maximum limit of %d. Setting size to %d.", sorting.MaxSize, size)
		} else {
			printWarning("Array size cannot be negative. Setting size to %d.", size)
		}
	}
	return size
}
