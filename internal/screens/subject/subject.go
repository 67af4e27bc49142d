package subject

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/screens/cards"
	"github.com/vamosestudar/estudar/internal/screens/materials"
	quizscreen "github.com/vamosestudar/estudar/internal/screens/quiz"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// SubjectScreen shows a subject's content and links to its cards,
// materials and quiz.
type SubjectScreen struct {
	assessment content.Assessment
	subject    content.Subject
	menu       components.Menu
	scroll     int
}

var _ screen.Screen = (*SubjectScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectScreen)(nil)

// New creates the screen for subject s of assessment a.
func New(a content.Assessment, s content.Subject, cfg qz.Config, log *zap.Logger) *SubjectScreen {
	items := []components.MenuItem{
		{
			Label:    "🗂  Cartões de estudo",
			Detail:   countDetail(len(s.StudyCards)),
			Disabled: len(s.StudyCards) == 0,
			Action:   func() tea.Cmd { return router.Push(cards.New(s)) },
		},
		{
			Label:    "📎 Materiais de apoio",
			Detail:   countDetail(len(s.SupportMaterials)),
			Disabled: len(s.SupportMaterials) == 0,
			Action:   func() tea.Cmd { return router.Push(materials.New(s)) },
		},
		{
			Label:    "✏️  Quiz",
			Detail:   qz.CountLabel(len(s.Questions)),
			Disabled: len(s.Questions) == 0,
			Action: func() tea.Cmd {
				sess := qz.NewSubjectSession(s, cfg, qz.WithLogger(log))
				return router.Push(quizscreen.New(sess))
			},
		},
	}
	return &SubjectScreen{
		assessment: a,
		subject:    s,
		menu:       components.NewMenu(items),
	}
}

func countDetail(n int) string {
	if n == 0 {
		return "nenhum"
	}
	return fmt.Sprintf("%d", n)
}

func (s *SubjectScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectScreen) Title() string {
	return s.subject.Icon + " " + s.subject.Name
}

func (s *SubjectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "PgUp/PgDn", Description: "Rolar conteúdo"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *SubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "pgdown", "J":
			s.scroll++
			return s, nil
		case "pgup", "K":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.subject.Icon + "  " + s.subject.Name))
	b.WriteString("\n")

	meta := s.assessment.Title
	if s.subject.Date != "" {
		meta += "  ·  prova em " + content.FormatDate(s.subject.Date)
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(meta))
	b.WriteString("\n\n")

	menu := s.menu.View()
	bodyRows := max(height-lipgloss.Height(b.String())-lipgloss.Height(menu)-4, 3)
	b.WriteString(components.Card(s.renderContent(cw-4, bodyRows), cw))
	b.WriteString("\n\n")
	b.WriteString(menu)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(max((width-cw)/2, 0)).
		Render(b.String())
}

// renderContent returns the subject body scrolled to s.scroll, cut to rows
// lines.
func (s *SubjectScreen) renderContent(w, rows int) string {
	if !s.subject.HasRealContent() {
		return theme.Hint.Render("Conteúdo em breve.")
	}
	lines := strings.Split(layout.Wrap(content.PlainText(s.subject.Content), w), "\n")
	s.scroll = min(s.scroll, max(len(lines)-rows, 0))
	end := min(s.scroll+rows, len(lines))
	return strings.Join(lines[s.scroll:end], "\n")
}
