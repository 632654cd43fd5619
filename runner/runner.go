// Package runner drives property trials: it owns the random source, the
// skip and shrink budgets, the execution-forest recording and the final
// Statistics record that package report classifies.
//
// Trials run strictly sequentially. Each trial's generation and verdict
// complete before the next begins, because generation advances the shared
// random source and a given seed must observe one reproducible sequence of
// draws. There is no parallel trial execution.
package runner

import (
	"context"
	"time"

	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/internal/corpus"
	"github.com/roach88/falsify/property"
	"github.com/roach88/falsify/source"
)

// Check runs prop until params.NumRuns trials pass, the attempt budget is
// exhausted, a counterexample is found, or ctx/params.Timeout interrupts
// the run. It always returns a complete Statistics record and never
// returns an error itself; surfacing failures is package report's job.
func Check(ctx context.Context, prop property.Property, params Parameters) *Statistics {
	params = params.normalized()
	stats := &Statistics{
		Name:      params.Name,
		Seed:      params.Seed,
		Verbosity: params.Verbosity,
	}

	if known := recheckCorpus(ctx, prop, params); known != nil {
		known.Name = params.Name
		known.Verbosity = params.Verbosity
		return known
	}

	src := source.New(params.Seed)
	var deadline time.Time
	if params.Timeout > 0 {
		deadline = time.Now().Add(params.Timeout)
	}

	record := params.Verbosity >= VeryVerbose

	// Skipped trials consume attempts but not successes; the budget caps
	// how many replacement trials precondition churn may burn.
	maxAttempts := params.NumRuns * (1 + params.MaxSkipsPerRun)
	successes := 0

	for successes < params.NumRuns && stats.NumRuns < maxAttempts {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			stats.Interrupted = true
			break
		}

		val := prop.Generate(src)
		trialIndex := stats.NumRuns
		stats.NumRuns++

		var node *ExecutionNode
		if record {
			node = &ExecutionNode{Value: val.V}
			stats.ExecutionSummary = append(stats.ExecutionSummary, node)
		}

		verdict := prop.Run(ctx, val.V)
		switch verdict.Status {
		case property.Passed:
			successes++
			if record {
				node.Status = ExecSuccess
			}
		case property.Skipped:
			stats.NumSkips++
			if record {
				node.Status = ExecSkipped
			}
		case property.Failed:
			if record {
				node.Status = ExecFailure
			}
			stats.Failed = true
			shrinkSearch(ctx, prop, stats, params, val, node, trialIndex, verdict.Description)
			saveToCorpus(ctx, params, stats)
			return stats
		}
	}

	if successes < params.NumRuns {
		stats.Failed = true
	}
	return stats
}

// shrinkSearch minimizes a failing tuple: walk the value's shrink
// sequence, descend into the first candidate that still fails, and repeat
// until no candidate fails or the shrink budget runs out. Every candidate
// evaluation costs one unit of params.MaxShrinks, so infinite shrink
// sequences terminate.
func shrinkSearch(
	ctx context.Context,
	prop property.Property,
	stats *Statistics,
	params Parameters,
	failing arbitrary.Value[[]any],
	node *ExecutionNode,
	trialIndex int,
	description string,
) {
	record := node != nil
	collect := params.Verbosity >= Verbose

	path := []int{trialIndex}
	cur := failing
	curNode := node
	budget := params.MaxShrinks

	if collect {
		stats.Failures = append(stats.Failures, cur.V)
	}

	for cur.Shrinks != nil && budget > 0 {
		it := cur.Shrinks()
		idx := -1
		descended := false

		for budget > 0 {
			cand, ok := it()
			if !ok {
				break
			}
			idx++
			budget--

			verdict := prop.Run(ctx, cand.V)
			var child *ExecutionNode
			if record {
				child = &ExecutionNode{Value: cand.V}
				curNode.Children = append(curNode.Children, child)
			}

			switch verdict.Status {
			case property.Passed:
				if record {
					child.Status = ExecSuccess
				}
			case property.Skipped:
				if record {
					child.Status = ExecSkipped
				}
			case property.Failed:
				if record {
					child.Status = ExecFailure
				}
				if collect {
					stats.Failures = append(stats.Failures, cand.V)
				}
				stats.NumShrinks++
				path = append(path, idx)
				description = verdict.Description
				cur = cand
				curNode = child
				descended = true
			}
			if descended {
				break
			}
		}
		if !descended {
			break
		}
	}

	stats.Counterexample = cur.V
	stats.CounterexamplePath = FormatPath(path)
	stats.Error = description
}

// recheckCorpus replays stored counterexamples for the property and, when
// one still falsifies, returns a failing Statistics for it without running
// any fresh trials. Returns nil when the corpus is absent, has no entry
// for the property, or every stored counterexample now passes.
func recheckCorpus(ctx context.Context, prop property.Property, params Parameters) *Statistics {
	if params.Corpus == nil || params.Name == "" {
		return nil
	}
	entries, err := params.Corpus.ByProperty(ctx, params.Name)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		val, err := Replay(prop, e.Seed, e.Path)
		if err != nil {
			// The property's generators changed shape since the entry
			// was recorded; the entry is stale, not a failure.
			continue
		}
		verdict := prop.Run(ctx, val.V)
		if verdict.Status != property.Failed {
			continue
		}
		return &Statistics{
			Failed:             true,
			NumRuns:            1,
			Seed:               e.Seed,
			Counterexample:     val.V,
			CounterexamplePath: e.Path,
			Error:              verdict.Description,
		}
	}
	return nil
}

// saveToCorpus records a fresh falsification. Best effort: a corpus write
// failure must not mask the property failure being reported.
func saveToCorpus(ctx context.Context, params Parameters, stats *Statistics) {
	if params.Corpus == nil || params.Name == "" || !stats.HasCounterexample() {
		return
	}
	_, _ = params.Corpus.Save(ctx, corpus.Entry{
		Property:       params.Name,
		Seed:           stats.Seed,
		Path:           stats.CounterexamplePath,
		Counterexample: renderTuple(stats.Counterexample),
		Error:          stats.Error,
	})
}
