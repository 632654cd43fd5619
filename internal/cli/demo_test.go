package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/falsify/internal/corpus"
)

func TestDemoPassingProperty(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDemoCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"addition-commutes", "--seed", "1", "--runs", "50"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "OK, passed 50 test(s)")
	assert.Contains(t, buf.String(), "addition-commutes")
}

func TestDemoFailingProperty(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDemoCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"below-hundred", "--seed", "7"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 properties failed")
	assert.Contains(t, buf.String(), "Property failed after")
	// Shrinking lands on the boundary value.
	assert.Contains(t, buf.String(), "Counterexample: 100")
}

func TestDemoUnknownProperty(t *testing.T) {
	cmd := NewDemoCommand(&RootOptions{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"no-such-demo"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown demo property")
}

func TestDemoConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "params.yaml")
	cfg := "num_runs: 25\nseed: 99\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	buf := &bytes.Buffer{}
	cmd := NewDemoCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"addition-commutes", "--config", cfgPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "OK, passed 25 test(s)")
	assert.Contains(t, buf.String(), "seed: 99")
}

func TestDemoRecordsFailureInCorpus(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "falsify.db")

	buf := &bytes.Buffer{}
	cmd := NewDemoCommand(&RootOptions{DBPath: dbPath})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"below-hundred", "--seed", "7"})

	err := cmd.Execute()
	require.Error(t, err)

	store, err := corpus.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.ByProperty(context.Background(), "below-hundred")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "100", entries[0].Counterexample)
	assert.Equal(t, int64(7), entries[0].Seed)
}
