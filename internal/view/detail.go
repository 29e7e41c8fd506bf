package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daviddao/adaptive_contacts/internal/contact"
)

// RenderDetail draws one contact centered in a width x height box.
func RenderDetail(c contact.Contact, width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		largeAvatarStyle.Render(c.Initials()),
		"",
		nameStyle.Render(c.Name),
		"",
		phoneStyle.Render(c.Phone),
	)
	return place(block, width, height)
}

// RenderPlaceholder draws the empty detail pane shown in split mode when
// nothing is selected.
func RenderPlaceholder(width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		dimStyle.Render("No contact selected"),
		"",
		dimStyle.Render("pick one from the list"),
	)
	return place(block, width, height)
}

func place(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
