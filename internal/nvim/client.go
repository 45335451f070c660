package nvim

import (
	"fmt"
	"strings"

	"github.com/neovim/go-client/nvim"
)

// Client wraps a Neovim embedded instance holding one buffer per pane.
type Client struct {
	nv      *nvim.Nvim
	buffers [2]nvim.Buffer
	current int
}

// New starts a new embedded Neovim process and connects via msgpack-rpc.
func New() (*Client, error) {
	nv, err := nvim.NewChildProcess(
		nvim.ChildProcessArgs("--embed", "--clean", "-n"),
		nvim.ChildProcessServe(false),
	)
	if err != nil {
		return nil, fmt.Errorf("starting nvim: %w", err)
	}

	// Register no-op handler for UI "redraw" notifications to avoid log spam
	nv.RegisterHandler("redraw", func(...[]interface{}) {})
	go nv.Serve()

	batch := nv.NewBatch()
	batch.Command("set noswapfile")
	batch.Command("set nobackup")
	batch.Command("set nowritebackup")
	batch.Command("set noundofile")
	batch.Command("set hidden")
	batch.Command("set shortmess+=I") // no intro message
	if err := batch.Execute(); err != nil {
		nv.Close()
		return nil, fmt.Errorf("configuring nvim: %w", err)
	}

	// Attach a minimal UI so nvim_input processes keys through the event loop.
	// Without UI, nvim_input keys sit in the input buffer unprocessed.
	if err := nv.AttachUI(80, 24, map[string]interface{}{"rgb": true}); err != nil {
		nv.Close()
		return nil, fmt.Errorf("attaching UI: %w", err)
	}

	c := &Client{nv: nv}
	if c.buffers[0], err = nv.CurrentBuffer(); err != nil {
		c.Close()
		return nil, fmt.Errorf("getting current buffer: %w", err)
	}
	if c.buffers[1], err = nv.CreateBuffer(true, false); err != nil {
		c.Close()
		return nil, fmt.Errorf("creating second buffer: %w", err)
	}
	return c, nil
}

// Close shuts down the Neovim process.
func (c *Client) Close() error {
	if c.nv != nil {
		c.nv.DetachUI()
		err := c.nv.Close()
		c.nv = nil
		return err
	}
	return nil
}

// ResizeUI updates the attached UI size to match the terminal.
func (c *Client) ResizeUI(width, height int) {
	if c.nv == nil {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	_ = c.nv.TryResizeUI(width, height)
}

// Input sends raw key input to Neovim; keycodes like <Esc> are parsed by nvim_input.
func (c *Client) Input(keys string) error {
	if c.nv == nil {
		return nil
	}
	_, err := c.nv.Input(keys)
	return err
}

// Switch makes pane (0 left, 1 right) the buffer shown in the current window.
func (c *Client) Switch(pane int) error {
	if c.nv == nil || pane == c.current {
		return nil
	}
	// Leave insert or visual mode before changing buffers.
	if _, err := c.nv.Input("<Esc>"); err != nil {
		return fmt.Errorf("leaving mode: %w", err)
	}
	if err := c.nv.SetCurrentBuffer(c.buffers[pane]); err != nil {
		return fmt.Errorf("switching buffer: %w", err)
	}
	c.current = pane
	return nil
}

// Current returns the pane whose buffer is shown.
func (c *Client) Current() int {
	return c.current
}

// GetText returns the full text of a pane's buffer.
func (c *Client) GetText(pane int) (string, error) {
	lines, err := c.GetLines(pane)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// GetLines returns a pane's buffer content as a slice of strings.
func (c *Client) GetLines(pane int) ([]string, error) {
	if c.nv == nil {
		return nil, fmt.Errorf("nvim is not running")
	}
	lines, err := c.nv.BufferLines(c.buffers[pane], 0, -1, false)
	if err != nil {
		return nil, fmt.Errorf("getting buffer lines: %w", err)
	}

	strLines := make([]string, len(lines))
	for i, l := range lines {
		strLines[i] = string(l)
	}
	return strLines, nil
}

// GetCursor returns the current cursor position (0-indexed row, col).
func (c *Client) GetCursor() (int, int, error) {
	win, err := c.nv.CurrentWindow()
	if err != nil {
		return 0, 0, fmt.Errorf("getting current window: %w", err)
	}

	pos, err := c.nv.WindowCursor(win)
	if err != nil {
		return 0, 0, fmt.Errorf("getting cursor: %w", err)
	}

	// Neovim returns 1-indexed row, 0-indexed col
	return pos[0] - 1, pos[1], nil
}

// GetMode returns the current Neovim mode string.
func (c *Client) GetMode() (string, error) {
	var mode string
	if err := c.nv.Eval("mode()", &mode); err != nil {
		return "", fmt.Errorf("getting mode: %w", err)
	}
	return mode, nil
}

// ModeDisplayName converts a Neovim mode string to a display name.
func ModeDisplayName(mode string) string {
	switch {
	case strings.HasPrefix(mode, "n"):
		return "NORMAL"
	case strings.HasPrefix(mode, "i"):
		return "INSERT"
	case strings.HasPrefix(mode, "v"):
		return "VISUAL"
	case strings.HasPrefix(mode, "V"):
		return "V-LINE"
	case mode == "\x16": // Ctrl-V
		return "V-BLOCK"
	case strings.HasPrefix(mode, "c"):
		return "COMMAND"
	case strings.HasPrefix(mode, "R"):
		return "REPLACE"
	default:
		return strings.ToUpper(mode)
	}
}
