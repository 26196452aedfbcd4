package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full key help as a centered modal over the clear
// color.
func (m Model) renderHelp(width, height int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	if m.variant == VariantOverlay {
		follow := "off"
		if m.following() {
			follow = "on"
		}
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("auto-scroll " + follow))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.clearColor)),
	)
}
