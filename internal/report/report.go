// Package report formats comparison results for terminals and JSON consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/textdiff/textdiff/internal/diff"
)

const (
	IdenticalMessage = "Both texts are identical."
	DifferentMessage = "Texts are different."
)

// Styles colors the parts of a rendered context window.
type Styles struct {
	Context lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Gutter  lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the default palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Context: r.NewStyle(),
		Added:   r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Removed: r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Gutter:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// Printer writes human readable reports.
type Printer struct {
	w      io.Writer
	styles Styles
	width  int
}

// NewPrinter creates a printer writing to w. When color is false all
// styling is dropped.
func NewPrinter(w io.Writer, color bool, width int) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	if width <= 0 {
		width = 100
	}
	return &Printer{w: w, styles: NewStyles(r), width: width}
}

// Result prints the verdict, one summary per record and, when contextSize
// is non-negative, the context window of every record.
func (p *Printer) Result(res diff.Result, a, b []string, contextSize int) {
	if res.Identical {
		fmt.Fprintln(p.w, IdenticalMessage)
		return
	}
	fmt.Fprintln(p.w, DifferentMessage)
	stats := diff.Summarize(res.Records, a, b)
	fmt.Fprintln(p.w, p.styles.Muted.Render(StatsLine(len(res.Records), stats)))
	for i, rec := range res.Records {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Header.Render(fmt.Sprintf("%d. %s", i+1, rec)))
		if contextSize < 0 {
			continue
		}
		left, right := diff.Render(rec, a, b, contextSize)
		fmt.Fprintln(p.w, Columns(left, right, p.width, p.styles))
	}
}

// StatsLine describes a result in one line.
func StatsLine(records int, s diff.Stats) string {
	return fmt.Sprintf("%d change(s): +%d -%d ~%d, %d%% similar", records, s.Added, s.Removed, s.Modified, s.Similarity)
}

// JSONReport is the machine readable form of a comparison.
type JSONReport struct {
	diff.Result
	Stats diff.Stats `json:"stats"`
}

// WriteJSON encodes res with its stats as indented JSON.
func WriteJSON(w io.Writer, res diff.Result, a, b []string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONReport{Result: res, Stats: diff.Summarize(res.Records, a, b)})
}

// Columns lays the two windows side by side within width cells.
func Columns(left, right []diff.DisplayLine, width int, st Styles) string {
	gutter := len(fmt.Sprint(maxLineNumber(left, right)))
	colWidth := max((width-3)/2, gutter+3)

	rows := max(len(left), len(right))
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cell(left, i, gutter, colWidth, st))
		b.WriteString(st.Gutter.Render(" │ "))
		b.WriteString(cell(right, i, gutter, colWidth, st))
	}
	return b.String()
}

// Column renders a single window, one line per row.
func Column(lines []diff.DisplayLine, width int, st Styles) string {
	gutter := len(fmt.Sprint(maxLineNumber(lines, nil)))
	rows := make([]string, len(lines))
	for i := range lines {
		rows[i] = cell(lines, i, gutter, width, st)
	}
	return strings.Join(rows, "\n")
}

func cell(lines []diff.DisplayLine, i, gutter, width int, st Styles) string {
	if i >= len(lines) {
		return strings.Repeat(" ", width)
	}
	l := lines[i]
	num := st.Gutter.Render(fmt.Sprintf("%*d", gutter, l.LineNumber))
	textWidth := max(width-gutter-3, 1)
	text := Truncate(l.Text, textWidth)
	pad := strings.Repeat(" ", max(textWidth-len([]rune(text)), 0))
	return num + " " + roleStyle(l.Role, st).Render(Marker(l.Role)+" "+text) + pad
}

// Marker returns the one-character prefix of a role.
func Marker(r diff.Role) string {
	switch r {
	case diff.Added:
		return "+"
	case diff.Removed:
		return "-"
	default:
		return " "
	}
}

func roleStyle(r diff.Role, st Styles) lipgloss.Style {
	switch r {
	case diff.Added:
		return st.Added
	case diff.Removed:
		return st.Removed
	default:
		return st.Context
	}
}

func maxLineNumber(a, b []diff.DisplayLine) int {
	n := 1
	for _, l := range a {
		n = max(n, l.LineNumber)
	}
	for _, l := range b {
		n = max(n, l.LineNumber)
	}
	return n
}

// Truncate shortens line to width runes, marking the cut with "~".
func Truncate(line string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width == 1 {
		return "~"
	}
	return string(runes[:width-1]) + "~"
}
