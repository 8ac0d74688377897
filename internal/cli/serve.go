package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/sortviz/internal/server"
)

// serveCommand creates the serve command that exposes traces over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve traces and charts over HTTP",
		Long: `Serve traces and charts over HTTP.

Every route takes algorithm, size, seed and input query parameters:

  GET /api/algorithms
  GET /api/traces?algorithm=merge&size=30&seed=7
  GET /api/calltree?algorithm=quick&input=5,3,8,1
  GET /frames.svg?algorithm=bubble&size=20&frame=10
  GET /animation.svg?algorithm=insertion&size=25&frame_ms=40
  GET /calltree.svg?algorithm=merge&size=16

Stop the server with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cmd.Flags(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable trace caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags *pflag.FlagSet, addr string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if !flags.Changed("addr") {
		addr = cfg.Server.Addr
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(runner, cfg, loggerFromContext(ctx))
	printSuccess("Serving on http://%s", addr)
	printNextStep("Try", fmt.Sprintf("curl 'http://%s/frames.svg?algorithm=quick&size=30'", addr))

	err = srv.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		printInfo("Server stopped")
		return nil
	}
	return err
}
