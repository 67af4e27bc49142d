package materials

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// MaterialsScreen lists a subject's support materials with a detail pane
// for the highlighted one.
type MaterialsScreen struct {
	subject   string
	materials []content.SupportMaterial
	menu      components.Menu
}

var _ screen.Screen = (*MaterialsScreen)(nil)
var _ screen.KeyHintProvider = (*MaterialsScreen)(nil)

// New creates a materials screen for the subject.
func New(s content.Subject) *MaterialsScreen {
	items := make([]components.MenuItem, len(s.SupportMaterials))
	for i, m := range s.SupportMaterials {
		items[i] = components.MenuItem{Label: TypeIcon(m.Type) + " " + m.Title, Detail: TypeLabel(m.Type)}
	}
	return &MaterialsScreen{
		subject:   s.Name,
		materials: s.SupportMaterials,
		menu:      components.NewMenu(items),
	}
}

// TypeIcon returns the glyph shown for a material type.
func TypeIcon(t content.MaterialType) string {
	switch t {
	case content.MaterialVideo:
		return "🎬"
	case content.MaterialDocument:
		return "📄"
	case content.MaterialText:
		return "📝"
	default:
		return "🔗"
	}
}

// TypeLabel returns the Portuguese name of a material type.
func TypeLabel(t content.MaterialType) string {
	switch t {
	case content.MaterialVideo:
		return "vídeo"
	case content.MaterialDocument:
		return "documento"
	case content.MaterialText:
		return "texto"
	default:
		return "link"
	}
}

func (m *MaterialsScreen) Init() tea.Cmd {
	return nil
}

func (m *MaterialsScreen) Title() string {
	return "Materiais: " + m.subject
}

func (m *MaterialsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

// Selected returns the highlighted material.
func (m *MaterialsScreen) Selected() (content.SupportMaterial, bool) {
	if m.menu.Selected < 0 || m.menu.Selected >= len(m.materials) {
		return content.SupportMaterial{}, false
	}
	return m.materials[m.menu.Selected], true
}

func (m *MaterialsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MaterialsScreen) View(width, height int) string {
	if len(m.materials) == 0 {
		return components.Frame(theme.Subtitle.Render("Nenhum material de apoio para esta matéria."), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	listRows := min(len(m.materials), max(height/3, 3))
	b.WriteString(m.menu.ViewWindow(listRows))
	b.WriteString("\n")

	if sel, ok := m.Selected(); ok {
		b.WriteString(components.Card(m.renderDetail(sel, cw-4), cw))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(b.String())
}

func (m *MaterialsScreen) renderDetail(mat content.SupportMaterial, w int) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render(mat.Title))
	b.WriteString("\n\n")
	url := lipgloss.NewStyle().Foreground(theme.Secondary).Render(mat.URL)
	body := layout.Wrap(content.PlainText(mat.Content), w)

	switch {
	case mat.URL == "" && mat.Content == "":
		b.WriteString(theme.Hint.Render("Sem conteúdo."))
	case mat.Type == content.MaterialText && mat.Content != "":
		// Text materials are read in place; the link is only a fallback.
		b.WriteString(body)
	case mat.URL == "":
		b.WriteString(body)
	case mat.Content == "":
		b.WriteString(url)
	default:
		b.WriteString(url + "\n\n" + body)
	}
	return b.String()
}
