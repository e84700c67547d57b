package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	sync     key.Binding
	retryAll key.Binding
	retryOne key.Binding
	remove   key.Binding
	clear    key.Binding
	copy     key.Binding
	info     key.Binding
	esc      key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	sync:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync now")),
	retryAll: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry failed")),
	retryOne: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "retry selected")),
	remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove selected")),
	clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear failed")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
}

func (k keyMap) mainHelp(hasFailed bool) []key.Binding {
	if !hasFailed {
		return []key.Binding{k.sync, k.info, k.quit}
	}
	return []key.Binding{k.sync, k.retryAll, k.clear, k.retryOne, k.remove, k.copy, k.quit}
}
