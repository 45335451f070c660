package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/report"
)

const maxContextSize = 50

// Rows taken by the header and footer around the viewport.
const contextChromeRows = 7

type contextHelp listKeys

func (k contextHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.More, k.Less, k.Up, k.Down, k.Back}
}

func (k contextHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ContextView shows one record with the unchanged lines around it, left and
// right side by side.
type ContextView struct {
	cmp      *comparison
	index    int
	size     int
	keys     listKeys
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewContextView opens record index of cmp with size context lines.
func NewContextView(cmp *comparison, index, size, width, height int) ContextView {
	v := ContextView{
		cmp:   cmp,
		index: index,
		size:  size,
		keys:  defaultListKeys(),
		help:  help.New(),
	}
	v.resize(width, height)
	return v
}

func (v *ContextView) resize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	v.width = width
	v.height = height
	v.help.Width = width
	v.viewport = viewport.New(width, max(height-contextChromeRows, 1))
	v.refresh()
}

// refresh renders the current record into the viewport.
func (v *ContextView) refresh() {
	rec := v.cmp.result.Records[v.index]
	left, right := diff.Render(rec, v.cmp.left, v.cmp.right, v.size)
	v.viewport.SetContent(report.Columns(left, right, v.width, windowStyles()))
	v.viewport.GotoTop()
}

func (v ContextView) Update(msg tea.Msg) (ContextView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Next):
			if v.index < len(v.cmp.result.Records)-1 {
				v.index++
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.Prev):
			if v.index > 0 {
				v.index--
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.More):
			if v.size < maxContextSize {
				v.size++
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.Less):
			if v.size > 0 {
				v.size--
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return backMsg{} }
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v ContextView) View() string {
	rec := v.cmp.result.Records[v.index]
	title := titleStyle.MaxWidth(v.width).Render(
		fmt.Sprintf("Change %d of %d", v.index+1, len(v.cmp.result.Records)))
	summary := KindStyle(rec.Kind).MaxWidth(v.width).Render(rec.String())

	colWidth := max((v.width-3)/2, 1)
	columns := labelStyle.Render(fmt.Sprintf("%-*s", colWidth, "LEFT")) + "   " + labelStyle.Render("RIGHT")

	info := mutedStyle.Render(fmt.Sprintf("%d context lines", v.size))
	footer := helpStyle.MaxWidth(v.width).Render(info + "  " + v.help.View(contextHelp(v.keys)))

	return strings.Join([]string{title, summary, fitWidth(columns, v.width), v.viewport.View(), footer}, "\n")
}
