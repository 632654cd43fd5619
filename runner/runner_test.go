package runner_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/falsify/arbitrary"
	"github.com/roach88/falsify/gen"
	"github.com/roach88/falsify/internal/corpus"
	"github.com/roach88/falsify/internal/testutil"
	"github.com/roach88/falsify/property"
	"github.com/roach88/falsify/runner"
)

func ctxBg() context.Context { return context.Background() }

// scriptedProperty builds an arity-1 property over pre-built values, so
// shrink behavior is fully deterministic. pred judges the single argument.
func scriptedProperty(script *testutil.Script, pred func(v any) bool) property.Property {
	return property.New(
		[]arbitrary.Untyped{script},
		func(_ context.Context, args []any) bool { return pred(args[0]) },
	)
}

func TestCheck_AllPassing(t *testing.T) {
	prop := property.ForAll1(gen.Int64Range(0, 50), func(v int64) bool { return v <= 50 })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 25, Seed: 42})

	assert.False(t, stats.Failed)
	assert.False(t, stats.Interrupted)
	assert.False(t, stats.HasCounterexample())
	assert.Equal(t, 25, stats.NumRuns)
	assert.Equal(t, 0, stats.NumSkips)
	assert.Equal(t, int64(42), stats.Seed)
}

func TestCheck_ZeroSeedGetsDerivedSeed(t *testing.T) {
	prop := property.ForAll1(gen.Bool(), func(bool) bool { return true })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 3})
	assert.NotZero(t, stats.Seed, "derived seed must be recorded for reproducibility")
}

func TestCheck_CounterexampleFoundAndMinimized(t *testing.T) {
	// The classic: x < 100 over [0,1000]. The minimal failing value under
	// bisection shrinking is exactly 100.
	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 100, Seed: 1234})

	require.True(t, stats.Failed)
	require.True(t, stats.HasCounterexample())
	assert.False(t, stats.Interrupted)
	require.Len(t, stats.Counterexample, 1)
	assert.Equal(t, int64(100), stats.Counterexample[0])
	assert.NotEmpty(t, stats.CounterexamplePath)
	assert.Equal(t, property.FalseDescription, stats.Error)
}

func TestCheck_PathReplayRegeneratesCounterexample(t *testing.T) {
	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 100, Seed: 99})
	require.True(t, stats.HasCounterexample())

	val, err := runner.Replay(prop, stats.Seed, stats.CounterexamplePath)
	require.NoError(t, err)
	assert.Equal(t, stats.Counterexample, val.V)
}

func TestCheck_SameSeedSameOutcome(t *testing.T) {
	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	params := runner.Parameters{NumRuns: 100, Seed: 7}

	a := runner.Check(ctxBg(), prop, params)
	b := runner.Check(ctxBg(), prop, params)

	assert.Equal(t, a.Counterexample, b.Counterexample)
	assert.Equal(t, a.CounterexamplePath, b.CounterexamplePath)
	assert.Equal(t, a.NumRuns, b.NumRuns)
	assert.Equal(t, a.NumShrinks, b.NumShrinks)
}

func TestCheck_TooManySkips_ZeroTolerance(t *testing.T) {
	prop := property.ForAll1(gen.Bool(), func(bool) bool {
		property.Pre(false)
		return true
	})
	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:        20,
		Seed:           5,
		MaxSkipsPerRun: 0,
	})

	assert.True(t, stats.Failed)
	assert.False(t, stats.Interrupted)
	assert.False(t, stats.HasCounterexample())
	assert.Equal(t, 20, stats.NumRuns, "every required trial slot is attempted")
	assert.Equal(t, stats.NumRuns, stats.NumSkips, "all attempts were skipped")
}

func TestCheck_SkipToleranceAllowsReplacementTrials(t *testing.T) {
	// Every odd draw is rejected; the tolerance leaves ample budget for
	// replacement trials, so the run still reaches 10 passing draws.
	prop := property.ForAll1(gen.Int64Range(0, 1000), func(v int64) bool {
		property.Pre(v%2 == 0)
		return true
	})
	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:        10,
		Seed:           3,
		MaxSkipsPerRun: 10,
	})

	assert.False(t, stats.Failed)
	assert.GreaterOrEqual(t, stats.NumRuns, 10)
	assert.Equal(t, stats.NumRuns-10, stats.NumSkips)
}

func TestCheck_CancelledContextInterrupts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prop := property.ForAll1(gen.Bool(), func(bool) bool { return true })
	stats := runner.Check(ctx, prop, runner.Parameters{NumRuns: 100, Seed: 1})

	assert.True(t, stats.Failed)
	assert.True(t, stats.Interrupted)
	assert.False(t, stats.HasCounterexample())
	assert.Equal(t, 0, stats.NumRuns)
}

func TestCheck_TimeoutInterrupts(t *testing.T) {
	prop := property.ForAll1(gen.Bool(), func(bool) bool {
		time.Sleep(5 * time.Millisecond)
		return true
	})
	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns: 1000,
		Seed:    1,
		Timeout: time.Millisecond,
	})

	assert.True(t, stats.Interrupted)
	assert.True(t, stats.Failed)
	assert.Less(t, stats.NumRuns, 1000)
}

func TestCheck_ScriptedShrinkSearch(t *testing.T) {
	// 10 fails; its alternatives are 3 (passes), 6 (fails, shrinks to 2
	// which fails terminally), 9 (never tried: the search descends at 6).
	script := testutil.NewScript(
		testutil.Node(10,
			testutil.Leaf(3),
			testutil.Node(6, testutil.Leaf(2), testutil.Leaf(5)),
			testutil.Leaf(9),
		),
	)
	prop := scriptedProperty(script, func(v any) bool { return v.(int)%2 != 0 })

	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:   1,
		Seed:      1,
		Verbosity: runner.VeryVerbose,
	})

	require.True(t, stats.Failed)
	assert.Equal(t, []any{2}, stats.Counterexample)
	assert.Equal(t, "0:1:0", stats.CounterexamplePath)
	assert.Equal(t, 2, stats.NumShrinks)
	assert.Equal(t, property.FalseDescription, stats.Error)
}

func TestCheck_VeryVerboseRecordsExecutionForest(t *testing.T) {
	script := testutil.NewScript(
		testutil.Node(10,
			testutil.Leaf(3),
			testutil.Node(6, testutil.Leaf(2), testutil.Leaf(5)),
			testutil.Leaf(9),
		),
	)
	prop := scriptedProperty(script, func(v any) bool { return v.(int)%2 != 0 })

	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:   1,
		Seed:      1,
		Verbosity: runner.VeryVerbose,
	})

	require.Len(t, stats.ExecutionSummary, 1)
	root := stats.ExecutionSummary[0]
	assert.Equal(t, []any{10}, root.Value)
	assert.Equal(t, runner.ExecFailure, root.Status)

	// Children in tried order: 3 passed, 6 failed (search descended, so 9
	// was never tried).
	require.Len(t, root.Children, 2)
	assert.Equal(t, []any{3}, root.Children[0].Value)
	assert.Equal(t, runner.ExecSuccess, root.Children[0].Status)
	assert.Equal(t, []any{6}, root.Children[1].Value)
	assert.Equal(t, runner.ExecFailure, root.Children[1].Status)

	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, []any{2}, root.Children[1].Children[0].Value)
	assert.Equal(t, runner.ExecFailure, root.Children[1].Children[0].Status)
}

func TestCheck_VerboseCollectsFailuresInDiscoveryOrder(t *testing.T) {
	script := testutil.NewScript(
		testutil.Node(10,
			testutil.Leaf(3),
			testutil.Node(6, testutil.Leaf(2), testutil.Leaf(5)),
		),
	)
	prop := scriptedProperty(script, func(v any) bool { return v.(int)%2 != 0 })

	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:   1,
		Seed:      1,
		Verbosity: runner.Verbose,
	})

	require.True(t, stats.Failed)
	assert.Equal(t, [][]any{{10}, {6}, {2}}, stats.Failures)
	assert.Empty(t, stats.ExecutionSummary, "the forest is a very-verbose feature")
}

func TestCheck_NoneVerbosityRecordsNeither(t *testing.T) {
	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 100, Seed: 1234})

	assert.Empty(t, stats.Failures)
	assert.Empty(t, stats.ExecutionSummary)
}

func TestCheck_MaxShrinksBoundsTheSearch(t *testing.T) {
	prop := property.ForAll1(gen.Int64Range(0, 1_000_000), func(x int64) bool { return x < 100 })
	stats := runner.Check(ctxBg(), prop, runner.Parameters{
		NumRuns:    100,
		Seed:       7,
		MaxShrinks: 3,
	})

	require.True(t, stats.HasCounterexample())
	assert.LessOrEqual(t, stats.NumShrinks, 3)
}

func TestCheck_FailureIsSavedToCorpus(t *testing.T) {
	store, err := corpus.Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer store.Close()

	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	params := runner.Parameters{
		Name:    "x stays below 100",
		NumRuns: 100,
		Seed:    1234,
		Corpus:  store,
	}
	first := runner.Check(ctxBg(), prop, params)
	require.True(t, first.Failed)

	entries, err := store.ByProperty(ctxBg(), "x stays below 100")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first.Seed, entries[0].Seed)
	assert.Equal(t, first.CounterexamplePath, entries[0].Path)
	assert.Equal(t, "100", entries[0].Counterexample)
}

func TestCheck_CorpusRecheckFailsFast(t *testing.T) {
	store, err := corpus.Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer store.Close()

	prop := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	params := runner.Parameters{
		Name:    "x stays below 100",
		NumRuns: 100,
		Seed:    1234,
		Corpus:  store,
	}
	first := runner.Check(ctxBg(), prop, params)
	require.True(t, first.HasCounterexample())

	// A later run with a different seed still reproduces the stored
	// counterexample before any fresh trial.
	params.Seed = 777
	second := runner.Check(ctxBg(), prop, params)
	require.True(t, second.Failed)
	assert.Equal(t, 1, second.NumRuns, "known counterexample short-circuits the run")
	assert.Equal(t, first.Counterexample, second.Counterexample)
	assert.Equal(t, first.Seed, second.Seed, "the reproducing seed is the stored one")
}

func TestCheck_CorpusEntryThatNowPassesIsIgnored(t *testing.T) {
	store, err := corpus.Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer store.Close()

	failing := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x < 100 })
	params := runner.Parameters{Name: "p", NumRuns: 50, Seed: 1234, Corpus: store}
	require.True(t, runner.Check(ctxBg(), failing, params).Failed)

	// Same generators, fixed predicate: the stored entry replays but no
	// longer falsifies, so the run proceeds and passes.
	fixed := property.ForAll1(gen.Int64Range(0, 1000), func(x int64) bool { return x <= 1000 })
	stats := runner.Check(ctxBg(), fixed, params)
	assert.False(t, stats.Failed)
	assert.Equal(t, 50, stats.NumRuns)
}

func TestCheck_FailedMatchesCounterexamplePresence(t *testing.T) {
	// The classifier's partition invariant, checked over a few seeds.
	prop := property.ForAll1(gen.Int64Range(0, 200), func(x int64) bool { return x < 150 })
	for seed := int64(1); seed <= 10; seed++ {
		stats := runner.Check(ctxBg(), prop, runner.Parameters{NumRuns: 30, Seed: seed})
		if !stats.Interrupted && stats.NumSkips == 0 {
			assert.Equal(t, stats.Failed, stats.HasCounterexample(), "seed %d", seed)
		}
	}
}
