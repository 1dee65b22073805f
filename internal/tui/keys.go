package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Sort  key.Binding
	Jump  key.Binding
	Reset key.Binding
	Up    key.Binding
	Down  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// jumpKeys select columns 1-12 directly.
var jumpKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "sort column")),
		Jump:  key.NewBinding(key.WithKeys(jumpKeys...), key.WithHelp("1-0,-,=", "sort by column")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "unsort")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Sort, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Sort, k.Jump},
		{k.Up, k.Down, k.Reset},
		{k.Help, k.Quit},
	}
}

func jumpIndex(pressed string) int {
	for i, k := range jumpKeys {
		if k == pressed {
			return i
		}
	}
	return -1
}
