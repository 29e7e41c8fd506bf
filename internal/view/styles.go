// Package view renders the contact list, the contact detail and the
// split-pane composition as terminal strings.
package view

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CDD6F4"))

	phoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	selectedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAB387"))

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#89B4FA")).
			Width(4).
			Align(lipgloss.Center)

	largeAvatarStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#CDD6F4")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7C3AED")).
				Width(11).
				Height(3).
				Align(lipgloss.Center, lipgloss.Center)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)
