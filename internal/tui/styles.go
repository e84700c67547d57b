package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	onlineStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	offlineStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	failedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	labelStyle      = lipgloss.NewStyle().Width(14)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
