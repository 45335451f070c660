package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textdiff/textdiff/internal/report"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func defaultCompareOptions() compareOptions {
	return compareOptions{context: -1, width: 80, maxLines: 9999}
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.txt", "alpha\nbeta\ngamma")
	same := writeFile(t, dir, "same.txt", "alpha\nbeta\ngamma")
	changed := writeFile(t, dir, "changed.txt", "alpha\nBETA\ngamma\ndelta")

	tests := []struct {
		name        string
		left, right string
		opts        func(*compareOptions)
		wantDiffer  bool
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "identical",
			left:        base,
			right:       same,
			wantContain: []string{report.IdenticalMessage},
		},
		{
			name:       "different",
			left:       base,
			right:      changed,
			wantDiffer: true,
			wantContain: []string{
				report.DifferentMessage,
				"1. Modify 1 line (2, left text) to 1 line (2, right text)",
				"2. Add 1 line (4, right text) after line 3 (left text)",
			},
			wantMissing: []string{"│"},
		},
		{
			name:        "with context",
			left:        base,
			right:       changed,
			opts:        func(o *compareOptions) { o.context = 1 },
			wantDiffer:  true,
			wantContain: []string{"│", "2 - beta", "2 + BETA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultCompareOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			var stdout, stderr bytes.Buffer
			err := runCompare(&stdout, &stderr, tt.left, tt.right, opts)
			if tt.wantDiffer {
				assert.ErrorIs(t, err, errTextsDiffer)
			} else {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantContain {
				assert.Contains(t, stdout.String(), want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, stdout.String(), missing)
			}
			assert.Empty(t, stderr.String())
		})
	}
}

func TestCompareJSON(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "l.txt", "a\nb\nc")
	right := writeFile(t, dir, "r.txt", "a\nc")

	opts := defaultCompareOptions()
	opts.json = true
	var stdout, stderr bytes.Buffer
	err := runCompare(&stdout, &stderr, left, right, opts)
	assert.ErrorIs(t, err, errTextsDiffer)

	var decoded struct {
		Identical bool             `json:"identical"`
		Records   []map[string]any `json:"records"`
		Stats     map[string]int   `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.False(t, decoded.Identical)
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, "delete", decoded.Records[0]["kind"])
	assert.Equal(t, 1, decoded.Stats["removed"])
}

func TestCompareLineLimit(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "l.txt", "a\nb\nc")
	right := writeFile(t, dir, "r.txt", "a\nb")

	opts := defaultCompareOptions()
	opts.maxLines = 2
	var stdout, stderr bytes.Buffer
	require.NoError(t, runCompare(&stdout, &stderr, left, right, opts))
	assert.Equal(t, left+": Maximum line limit (2) exceeded. Extra 1 lines have been removed.\n", stderr.String())
	assert.Contains(t, stdout.String(), report.IdenticalMessage)
}

func TestCompareStripCR(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "l.txt", "a\r\nb")
	right := writeFile(t, dir, "r.txt", "a\nb")

	opts := defaultCompareOptions()
	var stdout, stderr bytes.Buffer
	assert.ErrorIs(t, runCompare(&stdout, &stderr, left, right, opts), errTextsDiffer)

	opts.stripCR = true
	stdout.Reset()
	assert.NoError(t, runCompare(&stdout, &stderr, left, right, opts))
}

func TestCompareErrors(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "l.txt", "a")
	var stdout, stderr bytes.Buffer

	err := runCompare(&stdout, &stderr, "-", "-", defaultCompareOptions())
	assert.Error(t, err)

	err = runCompare(&stdout, &stderr, left, filepath.Join(dir, "missing.txt"), defaultCompareOptions())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errTextsDiffer)
}

func TestCompareContextSize(t *testing.T) {
	assert.Equal(t, 3, contextSize(false, -1, 3))
	assert.Equal(t, 0, contextSize(true, 0, 3))
	assert.Equal(t, -1, contextSize(true, -1, 5))
}
