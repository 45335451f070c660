package tui

import "github.com/charmbracelet/bubbles/key"

// editKeys are the edit screen shortcuts. Every other key goes to the editor.
type editKeys struct {
	Switch  key.Binding
	Compare key.Binding
	Paste   key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func defaultEditKeys() editKeys {
	return editKeys{
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Compare: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "compare"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "paste clipboard"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Compare, k.Paste, k.Reset, k.Quit}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listKeys are shared by the results and context screens.
type listKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Next   key.Binding
	Prev   key.Binding
	More   key.Binding
	Less   key.Binding
	Copy   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultListKeys() listKeys {
	return listKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "show context"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next change"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "N"),
			key.WithHelp("p", "previous change"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more context"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "less context"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy summary"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+q"),
			key.WithHelp("q", "quit"),
		),
	}
}
