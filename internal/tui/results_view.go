package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/textdiff/textdiff/internal/input"
	"github.com/textdiff/textdiff/internal/report"
)

// openContextMsg asks the app to show the context of a record.
type openContextMsg struct {
	index int
}

// backMsg returns to the previous screen.
type backMsg struct{}

type copiedMsg struct {
	err error
}

// resultsHelp is the key help shown under the record list.
type resultsHelp listKeys

func (k resultsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Copy, k.Back, k.Quit}
}

func (k resultsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ResultsView lists the change records of a comparison.
type ResultsView struct {
	cmp    *comparison
	keys   listKeys
	help   help.Model
	cursor int
	status string
	width  int
	height int
}

// NewResultsView creates the record list for cmp.
func NewResultsView(cmp *comparison) ResultsView {
	return ResultsView{
		cmp:  cmp,
		keys: defaultListKeys(),
		help: help.New(),
	}
}

func (v ResultsView) Update(msg tea.Msg) (ResultsView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		return v, nil
	case copiedMsg:
		if msg.err != nil {
			v.status = "Copy failed: " + msg.err.Error()
		} else {
			v.status = "Copied to clipboard."
		}
		return v, nil
	case tea.KeyMsg:
		v.status = ""
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, v.keys.Down):
			v.cursor = min(v.cursor+1, v.maxCursor())
		case key.Matches(msg, v.keys.Select):
			index := v.cursor
			return v, func() tea.Msg { return openContextMsg{index: index} }
		case key.Matches(msg, v.keys.Copy):
			return v, copySummary(v.summary(v.cursor))
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return backMsg{} }
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v ResultsView) maxCursor() int {
	return max(0, len(v.cmp.result.Records)-1)
}

func (v ResultsView) summary(i int) string {
	if i < 0 || i >= len(v.cmp.result.Records) {
		return ""
	}
	return fmt.Sprintf("%d. %s", i+1, v.cmp.result.Records[i])
}

func copySummary(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: input.WriteClipboard(text)}
	}
}

func (v ResultsView) View() string {
	var b strings.Builder

	width := v.width
	if width <= 0 {
		width = 80
	}
	height := v.height
	if height <= 0 {
		height = 24
	}

	headerLines := []string{
		titleStyle.MaxWidth(width).Render("textdiff - changes"),
		differentStyle.MaxWidth(width).Render(report.DifferentMessage),
		mutedStyle.MaxWidth(width).Render(report.StatsLine(len(v.cmp.result.Records), v.cmp.stats)),
	}
	header := strings.Join(headerLines, "\n")

	lines := make([]string, 0, len(v.cmp.result.Records))
	for i, rec := range v.cmp.result.Records {
		prefix := "  "
		style := unselectedStyle
		if i == v.cursor {
			prefix = "> "
			style = selectedStyle
		}
		marker := KindStyle(rec.Kind).Render(fmt.Sprintf("%-6s", rec.Kind))
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, marker, style.Render(v.summary(i))))
	}

	footer := helpStyle.MaxWidth(width).Render(v.help.View(resultsHelp(v.keys)))
	if v.status != "" {
		footer = mutedStyle.MaxWidth(width).Render(v.status) + "\n" + footer
	}
	available := height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if available < 1 {
		available = 1
	}
	visible := windowLines(lines, v.cursor, available)

	b.WriteString(header)
	b.WriteString("\n\n")
	for i, line := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fitWidth(line, width))
	}
	b.WriteString("\n\n")
	b.WriteString(footer)

	return b.String()
}

func windowLines(lines []string, cursor, height int) []string {
	start, end := windowRange(len(lines), cursor, height)
	return lines[start:end]
}

func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
