package tui

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	content := "Remove " + items(m.count) + " that failed to sync?\n"
	content += "They will never reach the server.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
