package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fbkclanna/pageroots/internal/config"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a pageroots configuration interactively or from an existing file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().String("from", "", "Import configuration from a local file")
	cmd.Flags().Bool("force", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("root")
	from, _ := cmd.Flags().GetString("from")
	force, _ := cmd.Flags().GetBool("force")

	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
	}

	var cfg *config.Config
	switch {
	case from != "":
		data, err := os.ReadFile(from) //nolint:gosec // user-provided --from path
		if err != nil {
			return fmt.Errorf("reading --from source: %w", err)
		}
		cfg, err = config.Parse(data)
		if err != nil {
			return fmt.Errorf("invalid configuration from %s: %w", from, err)
		}
		cfg.Name = name
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --from to specify a configuration file")
		}
		includes, err := interactiveAddIncludes(nil)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		cfg = &config.Config{
			Version: 1,
			Name:    name,
			Include: includes,
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration %q created at %s\n", name, cfgPath)
	return nil
}
