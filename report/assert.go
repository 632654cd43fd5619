package report

import (
	"context"
	"errors"

	"github.com/roach88/falsify/runner"
)

// FailureError is the single error the engine raises for a failing run.
// Its text is the fully assembled report: message, details, hints.
type FailureError struct {
	Stats  *runner.Statistics
	Report Report
}

func (e *FailureError) Error() string {
	return e.Report.String()
}

// IsFailure reports whether err is (or wraps) a property failure.
func IsFailure(err error) bool {
	var fe *FailureError
	return errors.As(err, &fe)
}

// Assert returns nil for a passing run and a *FailureError carrying the
// assembled report for a failing one. No other component of the engine
// raises run failures to the caller.
func Assert(stats *runner.Statistics) error {
	if !stats.Failed {
		return nil
	}
	return &FailureError{Stats: stats, Report: FromStatistics(stats)}
}

// Explainer produces extra explanatory text for a counterexample. It
// receives the positionally-unpacked argument tuple and may block (query
// a system under test, re-run a scenario) before answering.
type Explainer func(ctx context.Context, counterexample []any) (string, error)

// AssertExplained behaves like Assert but, when a counterexample exists
// and explain is non-nil, appends the explainer's text after the generic
// message. An explainer error or empty answer falls back to the generic
// report alone.
func AssertExplained(ctx context.Context, stats *runner.Statistics, explain Explainer) error {
	if !stats.Failed {
		return nil
	}
	rep := FromStatistics(stats)
	if explain != nil && stats.HasCounterexample() {
		if extra, err := explain(ctx, stats.Counterexample); err == nil && extra != "" {
			rep.Message += "\n\n" + extra
		}
	}
	return &FailureError{Stats: stats, Report: rep}
}

// AwaitAssert waits for a still-running check to complete, then applies
// AssertExplained to its result. A cancelled ctx aborts the wait and
// returns its error; the underlying run keeps its own context.
func AwaitAssert(ctx context.Context, pending *runner.PendingRun, explain Explainer) error {
	stats, err := pending.Wait(ctx)
	if err != nil {
		return err
	}
	return AssertExplained(ctx, stats, explain)
}
