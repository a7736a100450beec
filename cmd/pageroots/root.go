package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pageroots",
		Short:   "Compute the glob roots a page-file scanner may search",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().String("root", ".", "Project root directory")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newRootsCmd(),
		newScanCmd(),
		newLinksCmd(),
		newCleanCmd(),
		newDoctorCmd(),
	)

	return cmd
}
