// Package cli implements the falsify command line tool: a demo runner for
// the engine and maintenance commands for the regression corpus.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	// DBPath locates the regression corpus database. Empty disables
	// corpus access.
	DBPath string
}

// NewRootCommand creates the root command for the falsify CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "falsify",
		Short:        "falsify - property-based testing engine",
		Long:         "Run randomized property trials, shrink counterexamples and inspect the regression corpus.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the regression corpus database")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewFailuresCommand(opts))

	return cmd
}
