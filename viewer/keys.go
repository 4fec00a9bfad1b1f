package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Step   key.Binding
	Play   key.Binding
	Faster key.Binding
	Slower key.Binding
	Input  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Step: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "step"),
	),
	Play: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "play/pause"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Input: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "feed input"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Play, k.Input, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Play, k.Faster, k.Slower},
		{k.Input, k.Help, k.Quit},
	}
}
