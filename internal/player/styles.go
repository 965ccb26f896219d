package player

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1)

	counterStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor).
			Padding(1, 2)
)
