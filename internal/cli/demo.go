package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/falsify/gen"
	"github.com/roach88/falsify/internal/corpus"
	"github.com/roach88/falsify/property"
	"github.com/roach88/falsify/report"
	"github.com/roach88/falsify/runner"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Seed      int64
	Runs      int
	Verbosity string
	Config    string
}

// demoProps are the built-in sample properties the demo command can run.
// The broken ones exist to show shrinking and reporting in action.
var demoProps = map[string]func() property.Property{
	"addition-commutes": func() property.Property {
		return property.ForAll2(gen.Int64(), gen.Int64(), func(a, b int64) bool {
			return a+b == b+a
		})
	},
	"below-hundred": func() property.Property {
		return property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool {
			return x < 100
		})
	},
	"odd-sum-even": func() property.Property {
		return property.ForAll2(gen.Int64Range(0, 500), gen.Int64Range(0, 500), func(a, b int64) bool {
			property.Pre(a%2 == 1 && b%2 == 1)
			return (a+b)%2 == 0
		})
	},
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo [property]",
		Short: "Run a built-in sample property",
		Long: `Run one of the built-in sample properties and print its report.

With no argument every sample property runs. Properties that fail are shrunk
to a minimal counterexample; when --db is set, falsifications are recorded in
the regression corpus and rechecked on later runs.

Example:
  falsify demo
  falsify demo below-hundred --seed 42 --verbosity verbose
  falsify demo --db ./falsify.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runDemo(opts, name, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for the random sequence (0 derives one from the clock)")
	cmd.Flags().IntVar(&opts.Runs, "runs", 0, "number of passing trials required")
	cmd.Flags().StringVar(&opts.Verbosity, "verbosity", "", "report detail: none, verbose or very-verbose")
	cmd.Flags().StringVar(&opts.Config, "config", "", "path to a YAML parameters file")

	return cmd
}

func runDemo(opts *DemoOptions, name string, cmd *cobra.Command) error {
	params, err := demoParameters(opts)
	if err != nil {
		return err
	}

	if opts.DBPath != "" {
		store, err := corpus.Open(opts.DBPath)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer store.Close()
		params.Corpus = store
	}

	names := make([]string, 0, len(demoProps))
	if name != "" {
		if _, ok := demoProps[name]; !ok {
			return fmt.Errorf("unknown demo property %q (have: %s)", name, demoNames())
		}
		names = append(names, name)
	} else {
		for n := range demoProps {
			names = append(names, n)
		}
		sort.Strings(names)
	}

	reporter := report.NewConsoleReporter(cmd.OutOrStdout())
	failed := 0
	for _, n := range names {
		p := params
		p.Name = n
		stats := runner.Check(cmd.Context(), demoProps[n](), p)
		reporter.Report(n, stats)
		if stats.Failed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d properties failed", failed, len(names))
	}
	return nil
}

// demoParameters builds run parameters from the config file and flags, with
// flags taking precedence over the file.
func demoParameters(opts *DemoOptions) (runner.Parameters, error) {
	params := runner.DefaultParameters()
	if opts.Config != "" {
		loaded, err := runner.LoadParameters(opts.Config)
		if err != nil {
			return runner.Parameters{}, err
		}
		params = loaded
	}
	if opts.Seed != 0 {
		params.Seed = opts.Seed
	}
	if opts.Runs > 0 {
		params.NumRuns = opts.Runs
	}
	if opts.Verbosity != "" {
		level, err := runner.ParseVerbosity(opts.Verbosity)
		if err != nil {
			return runner.Parameters{}, err
		}
		params.Verbosity = level
	}
	return params, nil
}

func demoNames() string {
	names := make([]string, 0, len(demoProps))
	for n := range demoProps {
		names = append(names, n)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
