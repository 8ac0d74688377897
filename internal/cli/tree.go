package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/pipeline"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// treeCommand creates the tree command that draws the recursion of merge
// and quick sort.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		trace      traceFlags
		output     string
		format     string
		withValues bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw the call tree of merge or quick sort",
		Long: `Draw the call tree of merge or quick sort.

Every node is one recursive call labelled with the index range it sorts;
quick sort nodes also show where the pivot ended up. Output is Graphviz DOT,
SVG (rendered in-process), PNG, PDF or JSON.`,
		Example: `  sortviz tree -a quick -n 12 -f svg -o quick.svg
  sortviz tree -a merge --input 4,3,2,1 --values`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), cmd.Flags(), &trace, format, output, withValues, scale)
		},
	}

	trace.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot, svg, png, pdf, json")
	cmd.Flags().BoolVar(&withValues, "values", false, "show each call's values in its label")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, flags *pflag.FlagSet, trace *traceFlags, format, output string, withValues bool, scale float64) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	opts := pipeline.Options{Scale: scale, Logger: loggerFromContext(ctx)}
	if err := trace.apply(flags, cfg, &opts); err != nil {
		return err
	}
	if !opts.Algorithm.Recursive() {
		return errs.New(errs.ErrCodeUnsupported, "%s has no call tree (use merge or quick)", opts.Algorithm.Title())
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spinner *Spinner
	if format != pipeline.FormatDOT && format != render.FormatJSON {
		spinner = newSpinnerWithContext(ctx, "Running Graphviz...")
		spinner.Start()
	}
	data, err := runner.CallTree(ctx, opts, format, withValues)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errs.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	size := len(opts.Input)
	if opts.Input == nil {
		size = opts.Size
	}
	tree, _ := sorting.BuildCallTree(opts.Algorithm, opts.ResolveInput())
	printSuccess("%s call tree", opts.Algorithm.Title())
	printDetail("%d values · %d calls · depth %d", size, tree.Count(), tree.Depth())
	printFile(output)
	return nil
}
