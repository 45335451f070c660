package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/log"
	"github.com/textdiff/textdiff/internal/report"
	"go.uber.org/zap"
)

const toastDuration = 3 * time.Second

// Rows used by everything on the edit screen except the pane contents.
const editChromeRows = 12

type verdict int

const (
	verdictNone verdict = iota
	verdictIdentical
	verdictDifferent
)

// compareMsg asks the app to compare the two pane texts.
type compareMsg struct {
	left  string
	right string
}

// resetMsg is sent after both panes were cleared.
type resetMsg struct{}

type pasteMsg struct {
	text string
	err  error
}

type toastExpiredMsg struct {
	id int
}

// EditView is the two-pane input screen.
type EditView struct {
	editor   editor
	keys     editKeys
	help     help.Model
	maxLines int

	verdict verdict
	warning string
	toast   string
	toastID int
	width   int
	height  int
}

// NewEditView creates the edit screen over ed.
func NewEditView(ed editor, maxLines int) EditView {
	if maxLines <= 0 {
		maxLines = input.DefaultMaxLines
	}
	return EditView{
		editor:   ed,
		keys:     defaultEditKeys(),
		help:     help.New(),
		maxLines: maxLines,
	}
}

func (v EditView) Init() tea.Cmd {
	return v.editor.Init()
}

func (v EditView) Update(msg tea.Msg) (EditView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.editor.SetSize(v.paneContentWidth(), v.paneContentHeight())
		return v, nil

	case toastExpiredMsg:
		if msg.id == v.toastID {
			v.toast = ""
		}
		return v, nil

	case pasteMsg:
		if msg.err != nil {
			log.Warn("paste failed", zap.Error(msg.err))
			return v, v.showToast("Clipboard is unavailable.")
		}
		cmd := v.editor.Insert(msg.text)
		return v, tea.Batch(cmd, v.enforceLimit())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Switch):
			return v, v.editor.Focus(1 - v.editor.Focused())
		case key.Matches(msg, v.keys.Compare):
			cmd := v.enforceLimit()
			left, right := v.editor.Text(paneLeft), v.editor.Text(paneRight)
			return v, tea.Batch(cmd, func() tea.Msg {
				return compareMsg{left: left, right: right}
			})
		case key.Matches(msg, v.keys.Paste):
			return v, readClipboard
		case key.Matches(msg, v.keys.Reset):
			v.editor.SetText(paneLeft, "")
			v.editor.SetText(paneRight, "")
			v.warning = ""
			v.verdict = verdictNone
			return v, tea.Batch(v.editor.Focus(paneLeft), func() tea.Msg { return resetMsg{} })
		}
	}

	cmd := v.editor.Update(msg)
	return v, tea.Batch(cmd, v.enforceLimit())
}

func readClipboard() tea.Msg {
	text, err := input.ReadClipboard()
	return pasteMsg{text: text, err: err}
}

// load replaces the text of one pane and applies the line limit.
func (v *EditView) load(pane int, text string) tea.Cmd {
	v.editor.SetText(pane, text)
	return v.enforceLimit()
}

// enforceLimit trims panes longer than maxLines.
func (v *EditView) enforceLimit() tea.Cmd {
	removed := 0
	for pane := range paneNames {
		if v.editor.LineCount(pane) <= v.maxLines {
			continue
		}
		text, n := input.Cap(v.editor.Text(pane), v.maxLines)
		if n == 0 {
			continue
		}
		v.editor.SetText(pane, text)
		removed += n
	}
	if removed == 0 {
		return nil
	}
	log.Info("line limit applied", zap.Int("limit", v.maxLines), zap.Int("removed", removed))
	v.warning = input.LimitWarning(v.maxLines, removed)
	return v.showToast(input.LimitToast(removed))
}

func (v *EditView) showToast(text string) tea.Cmd {
	v.toastID++
	id := v.toastID
	v.toast = text
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (v *EditView) setVerdict(identical bool) {
	if identical {
		v.verdict = verdictIdentical
	} else {
		v.verdict = verdictDifferent
	}
}

func (v EditView) paneWidth() int {
	width := v.width
	if width <= 0 {
		width = 80
	}
	return max((width-1)/2, 12)
}

// paneContentWidth is the box width minus its border and padding.
func (v EditView) paneContentWidth() int {
	return v.paneWidth() - 4
}

func (v EditView) paneContentHeight() int {
	height := v.height
	if height <= 0 {
		height = 24
	}
	return max(height-editChromeRows, 1)
}

func (v EditView) View() string {
	width := v.width
	if width <= 0 {
		width = 80
	}

	header := titleStyle.MaxWidth(width).Render("textdiff - compare two texts")

	panes := make([]string, len(paneNames))
	for pane, name := range paneNames {
		style := blurredBoxStyle
		if pane == v.editor.Focused() {
			style = focusedBoxStyle
		}
		label := labelStyle.Render(" "+name+" ") +
			mutedStyle.Render(fmt.Sprintf(" %d/%d lines", v.editor.LineCount(pane), v.maxLines))
		box := style.Width(v.paneWidth() - 2).Render(v.editor.View(pane))
		panes[pane] = lipgloss.JoinVertical(lipgloss.Left, label, box)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes[paneLeft], " ", panes[paneRight])

	parts := []string{header, body}

	switch v.verdict {
	case verdictIdentical:
		parts = append(parts, identicalStyle.Render(report.IdenticalMessage))
	case verdictDifferent:
		parts = append(parts, differentStyle.Render(report.DifferentMessage))
	}
	if v.warning != "" {
		parts = append(parts, dangerStyle.MaxWidth(width).Render(v.warning))
	}

	status := "Editing " + strings.ToLower(paneNames[v.editor.Focused()])
	if mode := v.editor.Mode(); mode != "" {
		status = ModeStyle(mode).Render(" "+mode+" ") + "  " + status
	}
	if v.toast != "" {
		status += "  " + toastStyle.Render(v.toast)
	}
	parts = append(parts, statusBarStyle.MaxWidth(width).Render(status))
	parts = append(parts, helpStyle.Render(v.help.View(v.keys)))

	return strings.Join(parts, "\n")
}
