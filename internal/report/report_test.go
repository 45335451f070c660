package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textdiff/textdiff/internal/diff"
)

func plainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

func TestPrinterIdentical(t *testing.T) {
	var buf bytes.Buffer
	a := []string{"a"}
	NewPrinter(&buf, false, 80).Result(diff.Compare(a, a), a, a, 3)
	assert.Equal(t, IdenticalMessage+"\n", buf.String())
}

func TestPrinterDifferent(t *testing.T) {
	var buf bytes.Buffer
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	NewPrinter(&buf, false, 40).Result(diff.Compare(a, b), a, b, 3)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, DifferentMessage+"\n"))
	assert.Contains(t, out, "1 change(s): +0 -0 ~1, 67% similar")
	assert.Contains(t, out, "1. Modify 1 line (2, left text) to 1 line (2, right text)")
	assert.Contains(t, out, "2 - b")
	assert.Contains(t, out, "2 + x")
}

func TestPrinterWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	a := []string{"a", "b"}
	b := []string{"a", "b", "c"}

	NewPrinter(&buf, false, 40).Result(diff.Compare(a, b), a, b, -1)

	assert.Contains(t, buf.String(), "1. Add 1 line (3, right text) after line 2 (left text)")
	assert.NotContains(t, buf.String(), "│")
}

func TestColumns(t *testing.T) {
	left := []diff.DisplayLine{
		{LineNumber: 9, Role: diff.Context, Text: "keep"},
		{LineNumber: 10, Role: diff.Removed, Text: "old"},
	}
	right := []diff.DisplayLine{
		{LineNumber: 9, Role: diff.Context, Text: "keep"},
	}

	out := Columns(left, right, 27, plainStyles())
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, " 9   keep   "+" │ "+" 9   keep   ", rows[0])
	assert.Equal(t, "10 - old    "+" │ "+strings.Repeat(" ", 12), rows[1])
}

func TestColumn(t *testing.T) {
	lines := []diff.DisplayLine{{LineNumber: 1, Role: diff.Added, Text: "new"}}
	assert.Equal(t, "1 + new   ", Column(lines, 10, plainStyles()))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		expected string
	}{
		{"fits", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hell~"},
		{"width one", "hello", 1, "~"},
		{"zero width", "hello", 0, ""},
		{"runes", "héllo wörld", 4, "hél~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.line, tt.width))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	a := []string{"a", "b", "c"}
	b := []string{"a", "c"}
	require.NoError(t, WriteJSON(&buf, diff.Compare(a, b), a, b))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, false, decoded["identical"])
	records := decoded["records"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "delete", records[0].(map[string]any)["kind"])
	assert.Equal(t, float64(2), records[0].(map[string]any)["rightAnchor"])
	assert.Equal(t, float64(1), decoded["stats"].(map[string]any)["removed"])
}
