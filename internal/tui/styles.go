package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/textdiff/textdiff/internal/diff"
	"github.com/textdiff/textdiff/internal/report"
)

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // purple
	colorSecondary = lipgloss.Color("#10B981") // green
	colorWarning   = lipgloss.Color("#F59E0B") // yellow
	colorDanger    = lipgloss.Color("#EF4444") // red
	colorMuted     = lipgloss.Color("#6B7280") // gray
	colorText      = lipgloss.Color("#F9FAFB") // white

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// Pane boxes
	focusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	blurredBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Labels
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			MarginTop(1)

	modeNormalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorSecondary).
			Padding(0, 1)

	modeInsertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorPrimary).
			Padding(0, 1)

	modeVisualStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorWarning).
			Padding(0, 1)

	// Menu items
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Line limit warning
	dangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Verdict banners
	identicalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 2)

	differentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	// Toast
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorWarning).
			Padding(0, 1)

	// Cursor character highlight
	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	addedStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	removedStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	modifiedStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// ModeStyle returns the appropriate style for a vim mode.
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case "NORMAL":
		return modeNormalStyle
	case "INSERT", "REPLACE":
		return modeInsertStyle
	case "VISUAL", "V-LINE", "V-BLOCK":
		return modeVisualStyle
	default:
		return modeNormalStyle
	}
}

// KindStyle returns the list style for a change kind.
func KindStyle(k diff.Kind) lipgloss.Style {
	switch k {
	case diff.Add:
		return addedStyle
	case diff.Delete:
		return removedStyle
	default:
		return modifiedStyle
	}
}

func windowStyles() report.Styles {
	return report.Styles{
		Context: lipgloss.NewStyle().Foreground(colorText),
		Added:   addedStyle,
		Removed: removedStyle,
		Gutter:  gutterStyle,
		Header:  labelStyle,
		Muted:   mutedStyle,
	}
}
