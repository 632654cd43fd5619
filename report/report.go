// Package report turns a finished run's Statistics into human-readable
// diagnostics and is the engine's only failure-raising boundary.
//
// Classification dispatches on the failing run's shape: a counterexample
// was found, the run was interrupted, or the skip budget was exceeded.
// The three cases are mutually exclusive by construction of the runner;
// the classifier does not re-check that invariant.
package report

import (
	"fmt"
	"strings"

	"github.com/roach88/falsify/runner"
	"github.com/roach88/falsify/stringify"
)

// Report is a structured diagnostic for one run: a summary message, an
// optional multi-line detail block and zero or more actionable hints.
// Built fresh per classification; never mutated afterwards.
type Report struct {
	Message string
	Details string
	Hints   []string
}

// String assembles the full report text: message, then details after a
// blank line, then hints. A single hint gets the "Hint: " prefix; several
// hints are numbered.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(r.Message)
	if r.Details != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Details)
	}
	switch len(r.Hints) {
	case 0:
	case 1:
		b.WriteString("\n\nHint: ")
		b.WriteString(r.Hints[0])
	default:
		b.WriteString("\n")
		for i, h := range r.Hints {
			fmt.Fprintf(&b, "\nHint (%d): %s", i+1, h)
		}
	}
	return b.String()
}

const (
	hintVerbose     = "Enable verbose mode in order to have the list of all failing values encountered during the run"
	hintVeryVerbose = "Enable very-verbose mode in order to check the status of all generated values and their shrink history"
	hintFewerPre    = "Try to reduce the rejection rate by generating satisfying values directly instead of filtering them out with Pre"
	hintMoreSkips   = "Raise the skip tolerance by increasing MaxSkipsPerRun"
)

// FromStatistics classifies a completed run and builds its Report.
//
// For a passing run the report is a one-line summary with no details or
// hints. For a failing run exactly one of the three builders fires,
// selected by counterexample presence, then interruption.
func FromStatistics(stats *runner.Statistics) Report {
	if !stats.Failed {
		return Report{
			Message: fmt.Sprintf("OK, passed %d test(s) (seed: %d)", stats.NumRuns, stats.Seed),
		}
	}
	switch {
	case stats.HasCounterexample():
		return counterexampleReport(stats)
	case stats.Interrupted:
		return interruptedReport(stats)
	default:
		return tooManySkipsReport(stats)
	}
}

func counterexampleReport(stats *runner.Statistics) Report {
	r := Report{
		Message: fmt.Sprintf(
			"Property failed after %d test(s)\n{ seed: %d, path: %q }\nCounterexample: %s\nShrunk %d time(s)\nGot error: %s",
			stats.NumRuns,
			stats.Seed,
			stats.CounterexamplePath,
			stringify.Tuple(stats.Counterexample),
			stats.NumShrinks,
			stats.Error,
		),
	}
	// VeryVerbose takes precedence: it is strictly more detailed than the
	// flattened list Verbose unlocks.
	switch {
	case stats.Verbosity >= runner.VeryVerbose:
		r.Details = RenderSummary(stats.ExecutionSummary)
	case stats.Verbosity >= runner.Verbose:
		r.Details = failuresList(stats.Failures)
	default:
		r.Hints = []string{hintVerbose}
	}
	return r
}

func tooManySkipsReport(stats *runner.Statistics) Report {
	r := Report{
		Message: fmt.Sprintf(
			"Failed to run property, too many pre-condition failures encountered\n{ seed: %d }\nRan %d time(s)\nSkipped %d time(s)",
			stats.Seed,
			stats.NumRuns,
			stats.NumSkips,
		),
		Hints: []string{hintFewerPre, hintMoreSkips},
	}
	if stats.Verbosity >= runner.VeryVerbose {
		r.Details = RenderSummary(stats.ExecutionSummary)
	} else {
		r.Hints = append(r.Hints, hintVeryVerbose)
	}
	return r
}

func interruptedReport(stats *runner.Statistics) Report {
	r := Report{
		Message: fmt.Sprintf(
			"Property interrupted after %d test(s)\n{ seed: %d }",
			stats.NumRuns,
			stats.Seed,
		),
	}
	if stats.Verbosity >= runner.VeryVerbose {
		r.Details = RenderSummary(stats.ExecutionSummary)
	} else {
		r.Hints = []string{hintVeryVerbose}
	}
	return r
}

// failuresList flattens the failing values seen during a verbose run into
// a bullet list, keeping first-seen order and dropping duplicates.
func failuresList(failures [][]any) string {
	var b strings.Builder
	b.WriteString("Encountered failures were:")
	seen := make(map[string]struct{}, len(failures))
	for _, f := range failures {
		text := stringify.Tuple(f)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		b.WriteString("\n- ")
		b.WriteString(text)
	}
	return b.String()
}
