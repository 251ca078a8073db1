package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginBottom(1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true)

	whenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// RenderTerminal lays cards out for a terminal of the given width. A width
// of zero leaves cards unsized.
func RenderTerminal(cards []Card, width int) string {
	style := cardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.Empty {
			rendered = append(rendered, style.Render(mutedStyle.Render(c.Body)))
			continue
		}
		meta := lipgloss.JoinHorizontal(lipgloss.Center, badgeStyle.Render(c.Badge), " ", whenStyle.Render(c.When))
		rendered = append(rendered, style.Render(lipgloss.JoinVertical(lipgloss.Left, meta, "", bodyStyle.Render(c.Body))))
	}
	return strings.Join(rendered, "\n")
}
