package cli

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/pipeline"
	"github.com/matzehuels/sortviz/pkg/render/bars"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	size      int
	algorithm string
	seed      uint64
	delay     time.Duration
	width     int  // chart width in cells (0 = fit terminal)
	height    int  // chart height in cells (0 = fit terminal)
	plain     bool // redraw frames on stdout instead of the TUI
	pick      bool // choose the algorithm from an interactive list
	noCache   bool
}

// runSettings are the resolved inputs of one run.
type runSettings struct {
	algorithm sorting.Algorithm
	size      int
	seed      uint64
	delay     time.Duration
	width     int
	height    int
	palette   bars.Palette
}

// runCommand creates the run command, which is also the root's default action.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{delay: sorting.DefaultDelay}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate a sort in the terminal",
		Long: `Animate a sort in the terminal.

Without --size and --algorithm the values are asked for on stdin:

  Enter the size of the array(Max 100): 40
  Press 0 for Selection Sort
  ...
  Enter your choice: 3

Sizes above 100 are clamped with a warning. An invalid choice exits with
status 1 before anything is drawn. During playback press space to pause,
→ to step, r to restart and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), cmd.Flags(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "number of values to sort (max 100)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "algorithm name or number: selection (0), bubble (1), insertion (2), merge (3), quick (4)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for the input (default: random)")
	cmd.Flags().DurationVarP(&opts.delay, "delay", "d", opts.delay, "pause after each step")
	cmd.Flags().IntVar(&opts.width, "cols", 0, "chart width in terminal columns (default: fit)")
	cmd.Flags().IntVar(&opts.height, "rows", 0, "chart height in terminal rows (default: fit)")
	cmd.Flags().BoolVar(&opts.plain, "no-tui", false, "print frames to stdout instead of the interactive player")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the algorithm from an interactive list")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable trace caching")

	return cmd
}

// runRun resolves the settings, then plays the sort.
func (c *CLI) runRun(ctx context.Context, flags *pflag.FlagSet, opts runOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	s, err := c.resolveRun(flags, opts, cfg)
	if err != nil {
		return err
	}

	input := sorting.Generate(s.size, s.seed)
	loggerFromContext(ctx).Debug("generated input", "size", s.size, "seed", s.seed)

	if opts.plain || !term.IsTerminal(os.Stdout.Fd()) {
		return c.playPlain(ctx, s, input)
	}
	return c.playTUI(ctx, s, opts.noCache)
}

// resolveRun merges flags, config and prompts. Flags win over the config
// file; anything still missing is asked for on c.In.
func (c *CLI) resolveRun(flags *pflag.FlagSet, opts runOpts, cfg config.Config) (runSettings, error) {
	s := runSettings{
		delay:   cfg.Delay.Duration,
		width:   cfg.Terminal.Width,
		height:  cfg.Terminal.Height,
		palette: cfg.Palette,
	}
	in := bufio.NewReader(c.In)

	size := opts.size
	if !flags.Changed("size") {
		fmt.Fprintln(c.Out, StyleTitle.Render("Sorting Algorithm Visualizer"))
		n, err := promptSize(in, c.Out)
		if err != nil {
			return s, err
		}
		size = n
	}
	s.size = clampSize(size)

	var err error
	switch {
	case flags.Changed("algorithm"):
		s.algorithm, err = sorting.ParseAlgorithm(opts.algorithm)
	case opts.pick:
		initial, _ := sorting.ParseAlgorithm(cfg.Algorithm)
		s.algorithm, err = pickAlgorithm(initial)
	case cfg.Algorithm != "":
		s.algorithm, err = sorting.ParseAlgorithm(cfg.Algorithm)
	default:
		s.algorithm, err = promptAlgorithm(in, c.Out)
	}
	if err != nil {
		return s, err
	}

	switch {
	case flags.Changed("seed"):
		s.seed = opts.seed
	case cfg.Seed != 0:
		s.seed = cfg.Seed
	default:
		s.seed = rand.Uint64()
	}

	if flags.Changed("delay") {
		s.delay = opts.delay
	}
	if flags.Changed("cols") {
		s.width = opts.width
	}
	if flags.Changed("rows") {
		s.height = opts.height
	}
	return s, nil
}

// playTUI records the trace up front and plays it in the bubbletea player.
func (c *CLI) playTUI(ctx context.Context, s runSettings, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	trace, cached, err := runner.TraceWithCacheInfo(ctx, pipeline.Options{
		Algorithm: s.algorithm,
		Size:      s.size,
		Seed:      s.seed,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Recorded %d steps", trace.Steps()))

	model := NewPlayerModel(trace, s.palette, s.delay, s.width, s.height)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	m, _ := final.(PlayerModel)
	if m.Aborted {
		printInfo("Stopped %s at step %d of %d", trace.Algorithm.Title(), m.Frame, trace.Steps())
		return nil
	}
	printSuccess("%s finished", trace.Algorithm.Title())
	printStats(len(trace.Input), trace.Steps(), cached)
	printDetail("seed %d", s.seed)
	printNextStep("Export it", fmt.Sprintf("sortviz render -a %s -n %d --seed %d --animate", trace.Algorithm, s.size, s.seed))
	return nil
}

// playPlain runs the sort live, redrawing each frame in place on c.Out.
func (c *CLI) playPlain(ctx context.Context, s runSettings, input []int) error {
	width, height := s.width, s.height
	if width <= 0 || height <= 0 {
		width, height = terminalSize(os.Stdout)
	}
	cfg := terminalChart(len(input), width, height)

	steps := 0
	player := sorting.Player{
		Delay: s.delay,
		Render: func(values []int, primary, secondary int) {
			steps++
			frame := bars.RenderTerminal(cfg, sorting.Snapshot{Values: values, Primary: primary, Secondary: secondary}, s.palette)
			fmt.Fprint(c.Out, "\x1b[H\x1b[2J"+frame+"\n")
		},
	}
	if err := player.Play(ctx, s.algorithm, input); err != nil {
		return err
	}
	printSuccess("%s finished", s.algorithm.Title())
	printStats(len(input), steps-1, false)
	return nil
}

// terminalSize returns the chart size for f, falling back to 80x20 when f
// is not a terminal.
func terminalSize(f *os.File) (int, int) {
	w, h, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 || h <= chromeLines {
		return 80, 20
	}
	return w, h - chromeLines
}
