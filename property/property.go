// Package property wraps generators and predicates into runnable
// properties.
//
// A Property couples one composite generator with one predicate over the
// generated argument tuple. Predicate outcomes never escape Run as panics:
// a false return, a panic and a precondition rejection are all folded into
// a Verdict, which is the engine's only judgment currency.
package property

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/source"
)

// MaxArity is the highest number of generators a property composes.
// Callers with wider inputs pre-tuple them into a single generator.
const MaxArity = 9

// FalseDescription is the fixed failure description used when a predicate
// returns false rather than panicking.
const FalseDescription = "Property failed by returning false"

// Status classifies a single predicate invocation.
type Status int

const (
	// Passed means the predicate accepted the generated tuple.
	Passed Status = iota
	// Failed means the predicate returned false or panicked.
	Failed
	// Skipped means a precondition rejected the tuple before judgment.
	Skipped
)

// Verdict is the outcome of running a property against one tuple.
// Description is empty unless Status is Failed.
type Verdict struct {
	Status      Status
	Description string
}

// Predicate judges one generated argument tuple. It observes ctx only if
// it chooses to; synchronous predicates ignore it.
type Predicate func(ctx context.Context, args []any) bool

// Property is the runnable pairing of a composite generator and a
// predicate. Implementations are immutable and reusable across runs.
type Property interface {
	// Generate draws one argument tuple from the random source. It never
	// blocks and never consults the predicate.
	Generate(src *source.Source) arbitrary.Value[[]any]
	// Run judges one tuple. It never panics; every predicate outcome is
	// folded into the Verdict.
	Run(ctx context.Context, args []any) Verdict
}

type property struct {
	gens []arbitrary.Untyped
	pred Predicate
}

// New builds a property from an ordered list of generators and one
// predicate. This is the single canonical constructor; the fixed-arity
// ForAll helpers all delegate here. Panics if no generators are given,
// more than MaxArity are given, or the predicate is nil.
func New(gens []arbitrary.Untyped, pred Predicate) Property {
	if len(gens) == 0 {
		panic("property: at least one generator is required")
	}
	if len(gens) > MaxArity {
		panic(fmt.Sprintf("property: at most %d generators are supported; tuple your inputs", MaxArity))
	}
	if pred == nil {
		panic("property: predicate must not be nil")
	}
	return &property{gens: append([]arbitrary.Untyped(nil), gens...), pred: pred}
}

func (p *property) Generate(src *source.Source) arbitrary.Value[[]any] {
	parts := make([]arbitrary.Value[any], len(p.gens))
	for i, g := range p.gens {
		parts[i] = g.Generate(src)
	}
	return tupleValue(parts)
}

func (p *property) Run(ctx context.Context, args []any) (verdict Verdict) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(preconditionFailure); ok {
			verdict = Verdict{Status: Skipped}
			return
		}
		verdict = Verdict{
			Status:      Failed,
			Description: fmt.Sprintf("%v\n\nStack trace: %s", r, debug.Stack()),
		}
	}()
	if p.pred(ctx, args) {
		return Verdict{Status: Passed}
	}
	return Verdict{Status: Failed, Description: FalseDescription}
}

// preconditionFailure is the sentinel carried when Pre rejects a tuple.
type preconditionFailure struct{}

// Pre rejects the current tuple when cond is false. The trial is counted
// as skipped, not failed. Must only be called from inside a predicate.
func Pre(cond bool) {
	if !cond {
		panic(preconditionFailure{})
	}
}
