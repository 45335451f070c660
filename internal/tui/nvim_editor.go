package tui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/textdiff/textdiff/internal/log"
	nvimclient "github.com/textdiff/textdiff/internal/nvim"
	"github.com/textdiff/textdiff/internal/report"
	"go.uber.org/zap"
)

type nvimSyncMsg struct{}

// nvimEditor edits both panes in an embedded Neovim, one buffer per pane.
type nvimEditor struct {
	nvim      *nvimclient.Client
	lines     [2][]string
	mode      string
	cursorRow int
	cursorCol int
	width     int
	height    int
}

func newNvimEditor() (*nvimEditor, error) {
	nv, err := nvimclient.New()
	if err != nil {
		return nil, fmt.Errorf("starting neovim: %w", err)
	}
	return &nvimEditor{
		nvim:  nv,
		mode:  "NORMAL",
		lines: [2][]string{{""}, {""}},
	}, nil
}

func (e *nvimEditor) Init() tea.Cmd {
	e.sync()
	return nil
}

func (e *nvimEditor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case nvimSyncMsg:
		e.sync()
		return nil
	case tea.KeyMsg:
		keys := translateKey(msg)
		debugKeyInput(msg, keys)
		return e.inputAndSync(keys)
	default:
		if keys := translateCSIu(msg); keys != "" {
			debugKeyInput(msg, keys)
			return e.inputAndSync(keys)
		}
	}
	return nil
}

func (e *nvimEditor) Focus(pane int) tea.Cmd {
	if err := e.nvim.Switch(pane); err != nil {
		log.Warn("switching nvim buffer failed", zap.Int("pane", pane), zap.Error(err))
	}
	return e.scheduleSync()
}

func (e *nvimEditor) Focused() int {
	return e.nvim.Current()
}

func (e *nvimEditor) Text(pane int) string {
	text, err := e.nvim.GetText(pane)
	if err != nil {
		log.Warn("reading nvim buffer failed", zap.Int("pane", pane), zap.Error(err))
		return strings.Join(e.lines[pane], "\n")
	}
	return text
}

func (e *nvimEditor) SetText(pane int, text string) {
	if err := e.nvim.SetText(pane, text); err != nil {
		log.Warn("writing nvim buffer failed", zap.Int("pane", pane), zap.Error(err))
		return
	}
	e.lines[pane] = strings.Split(text, "\n")
}

func (e *nvimEditor) Insert(text string) tea.Cmd {
	if err := e.nvim.Paste(text); err != nil {
		log.Warn("nvim paste failed", zap.Error(err))
	}
	return e.scheduleSync()
}

func (e *nvimEditor) LineCount(pane int) int {
	return len(e.lines[pane])
}

func (e *nvimEditor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.nvim.ResizeUI(width, height)
}

func (e *nvimEditor) View(pane int) string {
	return e.renderBuffer(pane, e.width, e.height)
}

func (e *nvimEditor) Mode() string {
	return e.mode
}

func (e *nvimEditor) Close() error {
	return e.nvim.Close()
}

// sync reads buffer state from Neovim synchronously.
func (e *nvimEditor) sync() {
	for pane := range e.lines {
		lines, err := e.nvim.GetLines(pane)
		if err != nil {
			log.Debug("nvim sync failed", zap.Error(err))
			return
		}
		e.lines[pane] = lines
	}

	if row, col, err := e.nvim.GetCursor(); err == nil {
		e.cursorRow = row
		e.cursorCol = col
	}
	if modeStr, err := e.nvim.GetMode(); err == nil {
		e.mode = nvimclient.ModeDisplayName(modeStr)
	}
}

func (e *nvimEditor) scheduleSync() tea.Cmd {
	return tea.Tick(10*time.Millisecond, func(time.Time) tea.Msg {
		return nvimSyncMsg{}
	})
}

func (e *nvimEditor) inputAndSync(keys string) tea.Cmd {
	if keys == "" {
		return nil
	}
	if err := e.nvim.Input(keys); err != nil {
		log.Warn("nvim input failed", zap.String("keys", keys), zap.Error(err))
	}
	return e.scheduleSync()
}

// renderBuffer renders a pane with a line-number gutter and, on the focused
// pane, the cursor highlighted.
func (e *nvimEditor) renderBuffer(pane, width, height int) string {
	lines := e.lines[pane]
	if len(lines) == 0 {
		return mutedStyle.Render("(loading...)")
	}
	if height < 1 {
		height = 1
	}
	gutter := len(strconv.Itoa(len(lines)))
	textWidth := max(width-gutter-1, 1)

	focused := pane == e.nvim.Current()
	cursor := 0
	if focused {
		cursor = e.cursorRow
	}
	start, end := windowRange(len(lines), cursor, height)
	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		num := gutterStyle.Render(fmt.Sprintf("%*d", gutter, i+1))
		line := lines[i]
		if focused && i == e.cursorRow {
			rendered = append(rendered, num+" "+renderLineWithCursor(line, e.cursorCol, textWidth))
		} else {
			rendered = append(rendered, num+" "+report.Truncate(line, textWidth))
		}
	}

	return strings.Join(rendered, "\n")
}

// renderLineWithCursor renders a line with the cursor position highlighted.
func renderLineWithCursor(line string, col int, width int) string {
	if width < 1 {
		width = 1
	}
	runes := []rune(line)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}

	if len(runes) <= width {
		cursorIdx := -1
		if col < len(runes) {
			cursorIdx = col
		}
		return renderCursorInRunes(runes, cursorIdx, col == len(runes), width)
	}

	start := col - width/2
	if start < 0 {
		start = 0
	}
	if start+width > len(runes) {
		start = len(runes) - width
	}
	end := start + width
	visible := runes[start:end]
	cursorIdx := -1
	if col >= start && col < end {
		cursorIdx = col - start
	}
	if start > 0 && cursorIdx != 0 && len(visible) > 0 {
		visible[0] = '~'
	}
	if end < len(runes) && cursorIdx != len(visible)-1 && len(visible) > 0 {
		visible[len(visible)-1] = '~'
	}
	return renderCursorInRunes(visible, cursorIdx, col == len(runes) && end == len(runes), width)
}

func renderCursorInRunes(runes []rune, cursorIdx int, showCursorSpace bool, width int) string {
	var b strings.Builder
	for i, r := range runes {
		if i == cursorIdx {
			b.WriteString(cursorStyle.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	if cursorIdx == -1 && showCursorSpace && len(runes) < width {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// windowRange returns the [start, end) slice of total lines, height tall,
// keeping cursor as close to the middle as the bounds allow.
func windowRange(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// translateKey converts Bubble Tea key messages to Neovim input strings.
func translateKey(msg tea.KeyMsg) string {
	// Special keys
	switch msg.Type {
	case tea.KeyEsc:
		return "<Esc>"
	case tea.KeyEnter:
		return "<CR>"
	case tea.KeyBackspace:
		return "<BS>"
	case tea.KeyDelete:
		return "<Del>"
	case tea.KeyUp:
		return "<Up>"
	case tea.KeyDown:
		return "<Down>"
	case tea.KeyLeft:
		return "<Left>"
	case tea.KeyRight:
		return "<Right>"
	case tea.KeyHome:
		return "<Home>"
	case tea.KeyEnd:
		return "<End>"
	case tea.KeyPgUp:
		return "<PageUp>"
	case tea.KeyPgDown:
		return "<PageDown>"
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		// Escape literal "<" so nvim_input doesn't treat it as a keycode.
		return strings.ReplaceAll(string(msg.Runes), "<", "<LT>")
	}

	// ctrl combinations handled by Bubble Tea
	str := msg.String()
	if strings.HasPrefix(str, "ctrl+") {
		letter := strings.TrimPrefix(str, "ctrl+")
		return "<C-" + letter + ">"
	}

	return ""
}

func translateCSIu(msg tea.Msg) string {
	bytes, ok := csiBytes(msg)
	if !ok || len(bytes) < 3 {
		return ""
	}
	if bytes[0] != 0x1b || bytes[1] != '[' {
		return ""
	}
	if bytes[len(bytes)-1] != 'u' {
		return ""
	}

	body := string(bytes[2 : len(bytes)-1])
	parts := strings.Split(body, ";")
	if len(parts) == 0 {
		return ""
	}

	code, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}

	r := rune(code)
	if !utf8.ValidRune(r) {
		return ""
	}

	mod := 1
	if len(parts) > 1 {
		if parsed, err := strconv.Atoi(parts[1]); err == nil {
			mod = parsed
		}
	}

	mask := mod - 1
	if mask&4 != 0 { // ctrl modifier
		return ctrlKeyString(r)
	}

	return string(r)
}

func debugKeyInput(msg tea.Msg, keys string) {
	msgStr := ""
	if s, ok := msg.(fmt.Stringer); ok {
		msgStr = s.String()
	}
	log.Debug("key input",
		zap.String("type", fmt.Sprintf("%T", msg)),
		zap.String("msg", msgStr),
		zap.String("keys", keys),
		zap.Binary("raw", debugRawBytes(msg)),
	)
}

func debugRawBytes(msg tea.Msg) []byte {
	if b, ok := csiBytes(msg); ok {
		return b
	}

	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Uint8 {
		return []byte{byte(v.Uint())}
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		if km.Type == tea.KeyRunes && len(km.Runes) > 0 {
			return []byte(string(km.Runes))
		}
	}

	return nil
}

func csiBytes(msg tea.Msg) ([]byte, bool) {
	v := reflect.ValueOf(msg)
	if !v.IsValid() || v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}

	out := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(out), v)
	return out, true
}

func ctrlKeyString(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return "<C-" + string(r) + ">"
	case r >= 'A' && r <= 'Z':
		return "<C-" + strings.ToLower(string(r)) + ">"
	default:
		return "<C-" + string(r) + ">"
	}
}
