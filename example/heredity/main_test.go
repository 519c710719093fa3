package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	for name, args := range map[string][]string{
		"no pedigree":    {"heredity"},
		"two pedigrees":  {"heredity", "a.csv", "b.csv"},
		"unknown flag":   {"heredity", "-nope", "a.csv"},
		"flag, no input": {"heredity", "-workers", "2"},
	} {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 2, run(args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "Usage: heredity [flags] data.csv")
		})
	}
}

func TestRunReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solo.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,mother,father,trait\nSolo,,,\n"), 0644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"heredity", path}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "Solo:\n")
	assert.Contains(t, stdout.String(), "    True: 0.0329\n")
}

func TestRunRejectedPedigree(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"heredity", filepath.Join(t.TempDir(), "missing.db")}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
