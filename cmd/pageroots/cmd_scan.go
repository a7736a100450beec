package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/pageroots/internal/globroots"
	"github.com/fbkclanna/pageroots/internal/project"
	"github.com/fbkclanna/pageroots/internal/scan"
)

// defaultPatterns match the framework's page-file naming convention.
var defaultPatterns = []string{"**/*.page.*"}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [pattern ...]",
		Short: "Scan for page files under the resolved glob roots",
		RunE:  runScan,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	patterns := args
	if len(patterns) == 0 {
		patterns = defaultPatterns
	}

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	resolver := &globroots.Resolver{Root: ctx.Root}
	roots, err := resolver.Resolve(ctx.Config)
	if err != nil {
		return err
	}

	files, err := scan.Run(ctx.Root, roots, patterns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}

	for _, f := range files {
		_, _ = fmt.Fprintln(out, f)
	}
	return nil
}
