package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fbkclanna/pageroots/internal/config"
	"github.com/fbkclanna/pageroots/internal/npm"
	"github.com/fbkclanna/pageroots/internal/project"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [package ...]",
		Short: "Add include packages to the configuration",
		RunE:  runAdd,
	}
	cmd.Flags().String("pages-dir", "", "Pages subdirectory within the packages (single package only)")
	cmd.Flags().Bool("verify", false, "Check that packages resolve from the project root after adding")
	cmd.Flags().Bool("json", false, "Output added includes as JSON")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	pagesDir, _ := cmd.Flags().GetString("pages-dir")
	verify, _ := cmd.Flags().GetBool("verify")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	newIncludes, err := collectNewIncludes(ctx, args, pagesDir)
	if err != nil {
		return err
	}

	if len(newIncludes) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No packages added.")
		return nil
	}

	if err := saveWithNewIncludes(ctx, newIncludes); err != nil {
		return err
	}

	if err := outputResults(cmd, newIncludes, asJSON); err != nil {
		return err
	}

	if verify {
		verifyNewIncludes(cmd, ctx, newIncludes)
	}

	return nil
}

// collectNewIncludes gathers includes to add via interactive or CLI mode.
func collectNewIncludes(ctx *project.Context, args []string, pagesDir string) ([]config.Include, error) {
	existing := make(map[string]bool, len(ctx.Config.Include))
	for _, inc := range ctx.Config.Include {
		existing[inc.Package] = true
	}

	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("no packages provided and stdin is not a TTY; provide package names as arguments")
		}
		includes, err := interactiveAddIncludes(existing)
		if err != nil {
			return nil, fmt.Errorf("interactive add: %w", err)
		}
		return includes, nil
	}

	if len(args) > 1 && pagesDir != "" {
		return nil, fmt.Errorf("--pages-dir can only be used with a single package")
	}
	return buildNewIncludes(args, pagesDir)
}

// buildNewIncludes constructs Include entries from CLI arguments.
func buildNewIncludes(names []string, pagesDir string) ([]config.Include, error) {
	includes := make([]config.Include, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if !npm.ValidName(name) {
			return nil, fmt.Errorf("invalid npm package name %q", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate package %q in arguments", name)
		}
		seen[name] = true

		inc := config.Include{Package: name}
		if pagesDir != "" {
			d := pagesDir
			inc.PagesDir = &d
		}
		includes = append(includes, inc)
	}

	return includes, nil
}

// saveWithNewIncludes validates and writes the configuration with new includes appended.
func saveWithNewIncludes(ctx *project.Context, newIncludes []config.Include) error {
	for _, inc := range newIncludes {
		for _, have := range ctx.Config.Include {
			if have.Package == inc.Package {
				return fmt.Errorf("package %q is already configured", inc.Package)
			}
		}
	}

	ctx.Config.Include = append(ctx.Config.Include, newIncludes...)
	if err := config.Validate(ctx.Config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return config.Save(ctx.ConfigPath, ctx.Config)
}

// outputResults prints added includes in text or JSON format.
func outputResults(cmd *cobra.Command, newIncludes []config.Include, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newIncludes)
	}
	for _, inc := range newIncludes {
		if inc.PagesDir != nil && *inc.PagesDir != "" {
			_, _ = fmt.Fprintf(out, "Added %s (pages in %s)\n", inc.Package, *inc.PagesDir)
		} else {
			_, _ = fmt.Fprintf(out, "Added %s\n", inc.Package)
		}
	}
	return nil
}

// verifyNewIncludes checks that newly added packages resolve from the project
// root. Failures are warnings so a package can be configured before install.
func verifyNewIncludes(cmd *cobra.Command, ctx *project.Context, newIncludes []config.Include) {
	for _, inc := range newIncludes {
		_, _, err := npm.Load(inc.Package, npm.ResolveOpts{Root: ctx.Root})
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not resolve yet: %v (run your package manager install)\n", inc.Package, err)
		}
	}
}
