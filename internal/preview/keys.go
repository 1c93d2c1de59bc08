package preview

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the preview bindings. It implements help.KeyMap.
type keyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Step1 key.Binding
	Step2 key.Binding
	Step3 key.Binding
	Scan  key.Binding
	Play  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous section")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next section")),
		Step1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "upload step")),
		Step2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "analysis step")),
		Step3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "report step")),
		Scan:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sample scan")),
		Play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Step1, k.Step2, k.Step3},
		{k.Scan, k.Play},
		{k.Help, k.Quit},
	}
}
