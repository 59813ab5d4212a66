package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorResult  = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorResult).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func renderTitle(title string) string {
	return titleStyle.Render(title)
}

func renderResult(result string) string {
	return resultStyle.Render(result)
}

func renderError(err string) string {
	return errorStyle.Render("Fehler: " + err)
}

func renderMuted(text string) string {
	return mutedStyle.Render(text)
}
