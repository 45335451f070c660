package nvim

import (
	"fmt"
	"strings"
)

// SetText replaces a pane's buffer with text and puts the cursor on the first line.
func (c *Client) SetText(pane int, text string) error {
	if c.nv == nil {
		return fmt.Errorf("nvim is not running")
	}

	lines := strings.Split(text, "\n")
	byteLines := make([][]byte, len(lines))
	for i, l := range lines {
		byteLines[i] = []byte(l)
	}

	if err := c.nv.SetBufferLines(c.buffers[pane], 0, -1, false, byteLines); err != nil {
		return fmt.Errorf("setting buffer lines: %w", err)
	}

	if pane != c.current {
		return nil
	}
	win, err := c.nv.CurrentWindow()
	if err != nil {
		return fmt.Errorf("getting current window: %w", err)
	}
	if err := c.nv.SetWindowCursor(win, [2]int{1, 0}); err != nil {
		return fmt.Errorf("setting cursor: %w", err)
	}

	// Ensure we're in normal mode
	c.Input("<Esc>")

	return nil
}

// Clear empties both pane buffers.
func (c *Client) Clear() error {
	for pane := range c.buffers {
		if err := c.SetText(pane, ""); err != nil {
			return err
		}
	}
	return nil
}

// Paste inserts text at the cursor of the current pane as a single paste.
func (c *Client) Paste(text string) error {
	if c.nv == nil {
		return fmt.Errorf("nvim is not running")
	}
	if _, err := c.nv.Paste(text, true, -1); err != nil {
		return fmt.Errorf("pasting: %w", err)
	}
	return nil
}
