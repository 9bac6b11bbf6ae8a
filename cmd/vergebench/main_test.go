package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vergesort/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "shuffled_int")
	assert.Contains(t, out, "vergesort")
	assert.Contains(t, out, "pebble")
}

func TestRunAndShow(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.json")
	store := filepath.Join(dir, "results.db")

	_, err := execute(t, "run",
		"--sizes", "100,500",
		"--dist", "ascending_int,pipe_organ_int",
		"--sort", "vergesort,quicksort",
		"--budget", "1ms",
		"--samples", "2",
		"--verify",
		"--format", "json",
		"--out", report,
		"--store", "bolt",
		"--store-path", store,
		"--min-size", "32",
		"--merge-buffer", "0",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var results []bench.Result
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 8)

	out, err := execute(t, "show", "--store", "bolt", "--store-path", store, "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "100 ascending_int vergesort")
	assert.Contains(t, out, "500 pipe_organ_int quicksort")
}

func TestRunConfigFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "bench.yaml")
	report := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(config, []byte("sizes: [50]\nsorts: [heapsort]\ndistributions: [descending_int]\nsamples: 1\nbudget: 1ms\n"), 0644))

	_, err := execute(t, "run", "--config", config, "--sort", "mergesort", "--out", report)
	require.NoError(t, err)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Regexp(t, `^50 descending_int mergesort \d+\n$`, string(data))
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "--dist", "nope", "--budget", "1ms")
	assert.Error(t, err)

	_, err = execute(t, "run", "--sizes", "10", "--budget", "1ms", "--samples", "1", "--store", "bolt")
	assert.Error(t, err)

	_, err = execute(t, "show", "--store", "leveldb", "--store-path", t.TempDir())
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "--sizes", "0,100,1000", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "180 combinations ok\n", out)
}
