package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Press   key.Binding
	Buttons key.Binding
	Up      key.Binding
	Down    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "shift+tab", "h"), key.WithHelp("←", "prev")),
		Right:   key.NewBinding(key.WithKeys("right", "tab", "l"), key.WithHelp("→", "next")),
		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Buttons: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "press button")),
		Up:      key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓", "scroll down")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Buttons, k.Left, k.Right, k.Press, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Buttons, k.Left, k.Right, k.Press},
		{k.Up, k.Down, k.Dismiss, k.Quit},
	}
}
