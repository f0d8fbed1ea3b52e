package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the prompt flow. Captions are highlighted headers, errors
// are alerting, info lines stay unstyled so wrapped text reads cleanly.
var (
	StyleCaption = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // bright cyan
	StyleInfo    = lipgloss.NewStyle()
	StyleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // bright red
)
