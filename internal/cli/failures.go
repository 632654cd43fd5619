package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/falsify/internal/corpus"
)

// FailuresOptions holds flags for the failures command and its subcommands.
type FailuresOptions struct {
	*RootOptions
	Property string
}

// NewFailuresCommand creates the failures command group.
func NewFailuresCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FailuresOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "failures",
		Short: "Inspect the regression corpus",
		Long: `Inspect and maintain the regression corpus of recorded falsifications.

Every counterexample found by a run with a corpus attached is stored with
its seed and shrink path, so the exact failing value can be replayed later.

Examples:
  falsify failures list --db ./falsify.db
  falsify failures show --db ./falsify.db <id>
  falsify failures prune --db ./falsify.db --property below-hundred`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newFailuresListCommand(opts))
	cmd.AddCommand(newFailuresShowCommand(opts))
	cmd.AddCommand(newFailuresPruneCommand(opts))

	return cmd
}

func newFailuresListCommand(opts *FailuresOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List recorded falsifications",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCorpus(opts.RootOptions)
			if err != nil {
				return err
			}
			defer store.Close()

			var entries []corpus.Entry
			if opts.Property != "" {
				entries, err = store.ByProperty(cmd.Context(), opts.Property)
			} else {
				entries, err = store.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list failures: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded failures.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPROPERTY\tSEED\tPATH\tCOUNTEREXAMPLE\tRECORDED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
					e.ID, e.Property, e.Seed, e.Path, e.Counterexample,
					e.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Property, "property", "", "only list failures for this property")

	return cmd
}

func newFailuresShowCommand(opts *FailuresOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one recorded falsification",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCorpus(opts.RootOptions)
			if err != nil {
				return err
			}
			defer store.Close()

			e, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("show failure: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:             %s\n", e.ID)
			fmt.Fprintf(out, "Property:       %s\n", e.Property)
			fmt.Fprintf(out, "Seed:           %d\n", e.Seed)
			fmt.Fprintf(out, "Path:           %s\n", e.Path)
			fmt.Fprintf(out, "Counterexample: %s\n", e.Counterexample)
			fmt.Fprintf(out, "Error:          %s\n", e.Error)
			fmt.Fprintf(out, "Recorded:       %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newFailuresPruneCommand(opts *FailuresOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "prune",
		Short:         "Delete recorded falsifications",
		Long:          "Delete recorded falsifications. With --property only that property's entries go; without it the whole corpus is cleared.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCorpus(opts.RootOptions)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Prune(cmd.Context(), opts.Property)
			if err != nil {
				return fmt.Errorf("prune failures: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d failure(s).\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Property, "property", "", "only prune failures for this property")

	return cmd
}

func openCorpus(opts *RootOptions) (*corpus.Store, error) {
	if opts.DBPath == "" {
		return nil, fmt.Errorf("--db is required")
	}
	store, err := corpus.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	return store, nil
}
