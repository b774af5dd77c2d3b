package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.inp", "a.INP", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.inp"), 0755))

	single := filepath.Join(t.TempDir(), "single.inp")
	require.NoError(t, os.WriteFile(single, nil, 0644))

	got, err := expandInputs([]string{dir, single, filepath.Join(dir, "b.inp")})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.INP"),
		filepath.Join(dir, "b.inp"),
		single,
	}
	assert.ElementsMatch(t, want, got)
	assert.Len(t, got, 3)
	assert.IsIncreasing(t, got)
}

func TestExpandInputsMissing(t *testing.T) {
	_, err := expandInputs([]string{filepath.Join(t.TempDir(), "missing.inp")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func batchTestConfig(t *testing.T) ProjectConfig {
	config := DefaultConfig()
	config.Run.ReportDir = t.TempDir()
	config.Run.SaveOutput = false
	return config
}

func missingInputs(t *testing.T, n int) []string {
	dir := t.TempDir()
	inputs := make([]string, n)
	for i := range inputs {
		inputs[i] = filepath.Join(dir, string(rune('a'+i))+".inp")
	}
	return inputs
}

// Missing input files fail whether or not the toolkit is installed.
func TestRunBatchRecordsFailures(t *testing.T) {
	inputs := missingInputs(t, 3)

	results, err := runBatch(context.Background(), inputs, batchTestConfig(t), 2, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)
		assert.Error(t, r.Err)
	}
	assert.Equal(t, 3, printSummary(results))
}

func TestRunBatchFailFast(t *testing.T) {
	config := batchTestConfig(t)
	config.Batch.FailFast = true

	results, err := runBatch(context.Background(), missingInputs(t, 4), config, 1, zap.NewNop())
	require.Error(t, err)
	assert.Len(t, results, 1)
}
