package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	paneLeft  = 0
	paneRight = 1
)

var paneNames = [2]string{"LEFT", "RIGHT"}

// editor holds the two texts being compared and edits the focused one.
type editor interface {
	Init() tea.Cmd
	// Update routes a message to the focused pane.
	Update(msg tea.Msg) tea.Cmd
	Focus(pane int) tea.Cmd
	Focused() int
	Text(pane int) string
	SetText(pane int, text string)
	// Insert adds text at the cursor of the focused pane.
	Insert(text string) tea.Cmd
	LineCount(pane int) int
	SetSize(width, height int)
	View(pane int) string
	// Mode is the editing mode shown in the status bar, if any.
	Mode() string
	Close() error
}

// textareaEditor edits both panes with bubbles textareas.
type textareaEditor struct {
	panes   [2]textarea.Model
	focused int
}

func newTextareaEditor() *textareaEditor {
	e := &textareaEditor{}
	placeholders := [2]string{"Paste or type the left text...", "Paste or type the right text..."}
	for i := range e.panes {
		ta := textarea.New()
		ta.ShowLineNumbers = true
		ta.Placeholder = placeholders[i]
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.Prompt = ""
		e.panes[i] = ta
	}
	e.panes[paneLeft].Focus()
	return e
}

func (e *textareaEditor) Init() tea.Cmd {
	return textarea.Blink
}

func (e *textareaEditor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.panes[e.focused], cmd = e.panes[e.focused].Update(msg)
	return cmd
}

func (e *textareaEditor) Focus(pane int) tea.Cmd {
	e.panes[e.focused].Blur()
	e.focused = pane
	return e.panes[pane].Focus()
}

func (e *textareaEditor) Focused() int {
	return e.focused
}

func (e *textareaEditor) Text(pane int) string {
	return e.panes[pane].Value()
}

func (e *textareaEditor) SetText(pane int, text string) {
	e.panes[pane].SetValue(text)
}

func (e *textareaEditor) Insert(text string) tea.Cmd {
	e.panes[e.focused].InsertString(text)
	return nil
}

func (e *textareaEditor) LineCount(pane int) int {
	return e.panes[pane].LineCount()
}

func (e *textareaEditor) SetSize(width, height int) {
	for i := range e.panes {
		e.panes[i].SetWidth(width)
		e.panes[i].SetHeight(height)
	}
}

func (e *textareaEditor) View(pane int) string {
	return e.panes[pane].View()
}

func (e *textareaEditor) Mode() string {
	return ""
}

func (e *textareaEditor) Close() error {
	return nil
}
