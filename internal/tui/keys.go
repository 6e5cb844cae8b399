package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Copy     key.Binding
	Quit     key.Binding
	Left     key.Binding
	Right    key.Binding
	StepDown key.Binding
	StepUp   key.Binding
	Min      key.Binding
	Max      key.Binding
	Toggle   key.Binding
	Activate key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy summary"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "more"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("pgdown", "shift+left"),
			key.WithHelp("pgdn", "-10"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("pgup", "shift+right"),
			key.WithHelp("pgup", "+10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "min"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "max"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit, k.Copy, k.Quit},
		{k.Left, k.Right, k.StepDown, k.StepUp, k.Min, k.Max, k.Toggle},
	}
}
