package home

import (
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/ui/theme"
)

const titleFull = `╦  ╦┌─┐┌┬┐┌─┐┌─┐  ╔═╗┌─┐┌┬┐┬ ┬┌┬┐┌─┐┬─┐
╚╗╔╝├─┤││││ │└─┐  ║╣ └─┐ │ │ │ ││├─┤├┬┘
 ╚╝ ┴ ┴┴ ┴└─┘└─┘  ╚═╝└─┘ ┴ └─┘─┴┘┴ ┴┴└─`

const titleCompact = "📚 Vamos Estudar"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}
