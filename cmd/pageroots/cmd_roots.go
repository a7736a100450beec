package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/pageroots/internal/globroots"
	"github.com/fbkclanna/pageroots/internal/links"
	"github.com/fbkclanna/pageroots/internal/project"
	"github.com/fbkclanna/pageroots/internal/ui"
)

func newRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Resolve and print the project's glob roots",
		RunE:  runRoots,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("progress", false, "Print per-package resolution progress")
	return cmd
}

func runRoots(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")
	showProgress, _ := cmd.Flags().GetBool("progress")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(ctx.Config.Include))

	resolver := &globroots.Resolver{Root: ctx.Root}
	if showProgress && len(ctx.Config.Include) > 0 {
		resolver.OnResolved = func(pkg string) { progress.Done(pkg + " resolved") }
	}

	roots, err := resolver.Resolve(ctx.Config)
	if err != nil {
		return err
	}

	warnStaleLinks(progress, ctx.Root, roots)

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(roots)
	}

	tbl := ui.NewTable(out, "kind", "fs allow root", "include path", "page file")
	for _, gr := range roots {
		tbl.Row(rootKind(gr), orDash(gr.FSAllowRoot), orDash(gr.IncludePath), orDash(gr.IncludePageFile))
	}
	return tbl.Flush()
}

// warnStaleLinks reports forwarding symlinks that no current include path
// uses, typically left behind after an include entry was removed.
func warnStaleLinks(progress *ui.Progress, root string, roots []globroots.GlobRoot) {
	ls, err := links.List(root)
	if err != nil || len(ls) == 0 {
		return
	}

	prefix := "node_modules/" + links.Dir + "/"
	wanted := make(map[string]bool, len(roots))
	for _, gr := range roots {
		if rest, ok := strings.CutPrefix(gr.IncludePath, prefix); ok {
			wanted[rest] = true
		}
	}

	for _, l := range ls {
		if !wanted[l.Name] {
			progress.Warnf("stale forwarding link %s (no configured package uses it; run 'pageroots clean --force' to remove)", l.Name)
		}
	}
}

func rootKind(gr globroots.GlobRoot) string {
	switch {
	case gr.IncludePageFile != "":
		return "dist"
	case gr.IncludePath == "/":
		return "project"
	default:
		return "package"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
