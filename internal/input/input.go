// Package input loads the texts handed to the differencer and applies the
// line limit before comparison.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultMaxLines caps how many lines a single text may hold.
const DefaultMaxLines = 9999

// ReadFile reads a text from path. "-" reads from stdin.
func ReadFile(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Cap keeps at most limit lines of text and reports how many were dropped.
// A non-positive limit disables the cap.
func Cap(text string, limit int) (string, int) {
	if limit <= 0 {
		return text, 0
	}
	count := strings.Count(text, "\n") + 1
	if count <= limit {
		return text, 0
	}
	lines := strings.SplitN(text, "\n", limit+1)
	return strings.Join(lines[:limit], "\n"), count - limit
}

// StripCR turns CRLF line endings into LF.
func StripCR(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// LimitWarning is the persistent message shown after lines were dropped.
func LimitWarning(limit, removed int) string {
	return fmt.Sprintf("Maximum line limit (%d) exceeded. Extra %d lines have been removed.", limit, removed)
}

// LimitToast is the short-lived notice shown after lines were dropped.
func LimitToast(removed int) string {
	return fmt.Sprintf("Line limit exceeded! Removed %d lines.", removed)
}

// ReadClipboard returns the system clipboard contents.
func ReadClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// WriteClipboard replaces the system clipboard contents.
func WriteClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
