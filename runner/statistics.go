package runner

// ExecStatus is the recorded outcome of one executed value in the
// execution forest.
type ExecStatus int

const (
	// ExecSuccess marks a value the predicate accepted.
	ExecSuccess ExecStatus = iota
	// ExecFailure marks a value the predicate rejected or panicked on.
	ExecFailure
	// ExecSkipped marks a value discarded by a precondition.
	ExecSkipped
)

// ExecutionNode records one tried value and the shrink candidates explored
// from it, in the order they were tried. A node's children exist only when
// this value failed and the shrink search ran from it.
//
// Nodes are built incrementally during a run and immutable afterwards.
type ExecutionNode struct {
	Value    any
	Status   ExecStatus
	Children []*ExecutionNode
}

// Statistics is the complete record of one finished run.
//
// Exactly one of three conditions characterizes a failing run: the skip
// budget was exceeded (no counterexample, not interrupted), a
// counterexample was found, or the run was interrupted before completing.
// The classifier in package report dispatches on that partition; the
// runner guarantees it is exhaustive and mutually exclusive.
type Statistics struct {
	// Name echoes Parameters.Name.
	Name string
	// Failed is true unless the required number of trials passed.
	Failed bool
	// Interrupted is true when the run ended early on context
	// cancellation or timeout without finding a counterexample.
	Interrupted bool
	// NumRuns is the number of trials attempted, including skipped ones.
	NumRuns int
	// NumSkips is the number of trials rejected by preconditions.
	NumSkips int
	// NumShrinks is the number of accepted shrink steps after the first
	// failure.
	NumShrinks int
	// Seed reproduces the run.
	Seed int64
	// Counterexample is the minimized failing tuple; nil when no failure
	// was found.
	Counterexample []any
	// CounterexamplePath encodes the trial index and shrink choices that
	// regenerate the counterexample (see Replay). Empty without one.
	CounterexamplePath string
	// Error is the captured failure description of the minimized
	// counterexample.
	Error string
	// Verbosity echoes Parameters.Verbosity for the classifier.
	Verbosity Verbosity
	// ExecutionSummary is the forest of all tried values. Recorded only
	// at VeryVerbose.
	ExecutionSummary []*ExecutionNode
	// Failures lists every failing tuple encountered, in discovery
	// order. Recorded only at Verbose and above.
	Failures [][]any
}

// HasCounterexample reports whether a minimized failing tuple was found.
func (s *Statistics) HasCounterexample() bool {
	return s.Counterexample != nil
}
