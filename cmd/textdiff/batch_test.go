package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const casesDir = "../../internal/casefile/testdata/cases"

func TestBatchCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, casesDir, "", false, 9999))

	assert.Contains(t, out.String(), "PASS  modify-middle (1 changes)")
	assert.Contains(t, out.String(), "PASS  empty-texts (0 changes)")
	assert.Contains(t, out.String(), "6 passed, 0 failed")
}

func TestBatchCommandTag(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, casesDir, "delete", false, 9999))
	assert.Contains(t, out.String(), "PASS  delete-middle (1 changes)")
	assert.Contains(t, out.String(), "1 passed, 0 failed")

	err := runBatch(&out, casesDir, "no-such-tag", false, 9999)
	assert.Error(t, err)
}

func TestBatchCommandFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wrong.yaml", `- name: wrong-count
  left: "a"
  right: "b"
  changes: 2
- name: wrong-verdict
  left: "a"
  right: "a"
  identical: false
`)

	var out bytes.Buffer
	err := runBatch(&out, path, "", false, 9999)
	assert.ErrorIs(t, err, errBatchFailed)
	assert.Contains(t, out.String(), "FAIL  wrong-count: expected 2 changes, got 1")
	assert.Contains(t, out.String(), "FAIL  wrong-verdict: expected identical=false, got true")
	assert.Contains(t, out.String(), "0 passed, 2 failed")
}

func TestBatchCommandJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, casesDir, "modify", true, 9999))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	for _, r := range decoded {
		assert.Equal(t, true, r["passed"])
		assert.NotContains(t, r, "problems")
	}
}
