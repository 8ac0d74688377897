package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/config"
	errs "github.com/matzehuels/sortviz/pkg/errors"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand writes the built-in defaults to the config path.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errs.New(errs.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			printSuccess("Created config")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configPathCommand prints where the config file is read from.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, path)
			return nil
		},
	}
}

// configShowCommand prints the effective settings after loading the file.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			showConfig(cfg)
			return nil
		},
	}
}

func showConfig(cfg config.Config) {
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = "(ask)"
	}
	seed := "(random)"
	if cfg.Seed != 0 {
		seed = strconv.FormatUint(cfg.Seed, 10)
	}
	terminal := "(fit window)"
	if cfg.Terminal.Width > 0 || cfg.Terminal.Height > 0 {
		terminal = fmt.Sprintf("%dx%d", cfg.Terminal.Width, cfg.Terminal.Height)
	}

	printKeyValue("size", strconv.Itoa(cfg.Size))
	printKeyValue("algorithm", algorithm)
	printKeyValue("seed", seed)
	printKeyValue("delay", cfg.Delay.String())
	printKeyValue("canvas", fmt.Sprintf("%dx%d gap %d", cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Gap))
	printKeyValue("palette", fmt.Sprintf("%s %s %s", cfg.Palette.Primary, cfg.Palette.Secondary, cfg.Palette.Neutral))
	printKeyValue("terminal", terminal)
	printKeyValue("server", cfg.Server.Addr)
}

// configFile returns the --config path or the default location.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("get config path: %w", err)
	}
	return path, nil
}
