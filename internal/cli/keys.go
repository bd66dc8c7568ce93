package cli

import "github.com/charmbracelet/bubbles/key"

// pagerKeys are the pager bindings. They double as the help line.
type pagerKeys struct {
	Back    key.Binding
	Forward key.Binding
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func defaultPagerKeys() pagerKeys {
	return pagerKeys{
		Back:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		Forward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next chart")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev chart")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pagerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Next, k.Reload, k.Quit}
}

func (k pagerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward},
		{k.Next, k.Prev},
		{k.Up, k.Down},
		{k.Reload, k.Quit},
	}
}
