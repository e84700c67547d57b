package tui

import "github.com/charmbracelet/bubbles/spinner"

// syncIndicator shows a spinner while a pass or a user action is running.
type syncIndicator struct {
	spinner spinner.Model
	running bool
}

func newSyncIndicator() syncIndicator {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncIndicator{spinner: s}
}

func (m syncIndicator) View() string {
	if !m.running {
		return ""
	}
	return m.spinner.View() + " Syncing..."
}
