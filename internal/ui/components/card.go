package components

import (
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections so
// they line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Frame wraps content in a rounded border filling the given dimensions,
// centered both ways.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a bordered box at the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(max(cw-2, 0)).Render(content)
}

// Button renders a one-line action, highlighted when selected.
func Button(label string, selected bool) string {
	if selected {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
