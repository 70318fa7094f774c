package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	NameStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle()

	ErrorValueStyle = lipgloss.NewStyle().
			Foreground(colorError)

	PolicyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Italic(true)
)
