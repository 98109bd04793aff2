package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().Bold(true)

	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	unchangedStyle = lipgloss.NewStyle().Faint(true)
)
