package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/pageroots/internal/links"
	"github.com/fbkclanna/pageroots/internal/ui"
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "List the forwarding symlinks under node_modules/.pageroots",
		RunE:  runLinks,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type linkInfo struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Broken bool   `json:"broken"`
}

func runLinks(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	ls, err := links.List(abs)
	if err != nil {
		return err
	}

	infos := make([]linkInfo, 0, len(ls))
	for _, l := range ls {
		infos = append(infos, linkInfo{Name: l.Name, Target: l.Target, Broken: l.Broken})
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintln(out, "No forwarding links.")
		return nil
	}

	tbl := ui.NewTable(out, "link", "target", "state")
	for _, l := range infos {
		state := "ok"
		if l.Broken {
			state = "broken"
		}
		tbl.Row(l.Name, l.Target, state)
	}
	return tbl.Flush()
}
