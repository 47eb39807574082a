package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Restart key.Binding
	Reset   key.Binding
	Time    key.Binding
	Mode    key.Binding
	Tab     key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new text")),
		Reset:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset")),
		Time:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "time")),
		Mode:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "mode")),
		Tab:     key.NewBinding(key.WithKeys("tab")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Reset, k.Time, k.Mode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// setRunning disables the bindings that only apply outside a running session,
// which also hides them from the help line.
func (k *keyMap) setRunning(running bool) {
	k.Restart.SetEnabled(!running)
	k.Time.SetEnabled(!running)
	k.Mode.SetEnabled(!running)
}
