package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the main screen understands
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Remove   key.Binding
	Add      key.Binding
	Import   key.Binding
	Next     key.Binding
	Previous key.Binding
	Jump     key.Binding
	Pager    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove selected")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add file")),
		Import:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import pieces")),
		Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next step")),
		Previous: key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous step")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to step")),
		Pager:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view list in pager")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Remove, k.Next, k.Previous, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Toggle, k.Clear, k.Remove, k.Add, k.Import},
		{k.Next, k.Previous, k.Jump},
		{k.Pager, k.Help, k.Quit},
	}
}
