package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// NotFoundScreen is shown when an assessment or subject requested on the
// command line does not exist.
type NotFoundScreen struct {
	what string
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen describing what was missing.
func New(what string) *NotFoundScreen {
	return &NotFoundScreen{what: what}
}

func (n *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (n *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Início"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (n *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return n, router.PopToRoot()
	}
	return n, nil
}

func (n *NotFoundScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Não encontrado ╌╌\n\n" + n.what + "\n\n" + components.Button("Voltar ao início", true))
}

func (n *NotFoundScreen) Title() string {
	return "Não encontrado"
}
