package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/pageroots/internal/links"
	"github.com/fbkclanna/pageroots/internal/npm"
	"github.com/fbkclanna/pageroots/internal/project"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the project for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true
	root, _ := cmd.Flags().GetString("root")

	fmt.Print("Checking project config... ")
	ctx, err := project.Load(root)
	if err != nil {
		fmt.Println("FAILED")
		fmt.Printf("  %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}
	fmt.Printf("%s (%d include packages, %d dist includes)\n",
		ctx.Config.Name, len(ctx.Config.Include), len(ctx.Config.IncludeDist))

	fmt.Print("Checking node_modules... ")
	if _, err := os.Stat(filepath.Join(ctx.Root, "node_modules")); err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  Run your package manager's install (e.g. npm install) first.")
		ok = false
	} else {
		fmt.Println("found")
	}

	// Check that every include package resolves, both logically and
	// physically.
	for _, inc := range ctx.Config.Include {
		fmt.Printf("  Checking %s... ", inc.Package)
		dir, m, err := npm.Load(inc.Package, npm.ResolveOpts{Root: ctx.Root})
		switch {
		case err != nil:
			fmt.Println("FAILED")
			fmt.Printf("    %v\n", err)
			ok = false
		case m.PageFilesDir != "":
			fmt.Println("FAILED (deprecated pageFilesDir in package.json)")
			ok = false
		default:
			fmt.Printf("%s @ %s\n", m.Version, dir)
		}
	}

	// Check that existing forwarding links still resolve.
	ls, err := links.List(ctx.Root)
	if err != nil {
		fmt.Printf("Checking forwarding links... FAILED: %v\n", err)
		ok = false
	} else {
		for _, l := range ls {
			fmt.Printf("  Checking link %s... ", l.Name)
			if l.Broken {
				fmt.Printf("BROKEN (target %s is gone; run 'pageroots clean --force' and resolve again)\n", l.Target)
				ok = false
			} else {
				fmt.Println("ok")
			}
		}
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
