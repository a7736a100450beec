package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/pageroots/internal/config"
	"github.com/fbkclanna/pageroots/internal/links"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the forwarding symlink directory (requires --force)",
		RunE:  runClean,
	}
	cmd.Flags().Bool("force", false, "Required to confirm removal")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		return fmt.Errorf("clean removes node_modules/%s; pass --force to confirm", links.Dir)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(filepath.Join(abs, config.FileName)); err != nil {
		return fmt.Errorf("refusing to clean %s: no %s found (not a pageroots project)", abs, config.FileName)
	}

	if err := links.Clean(abs); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Forwarding links removed: %s\n", links.DirPath(abs))
	return nil
}
