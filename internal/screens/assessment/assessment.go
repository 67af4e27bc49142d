package assessment

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	quizscreen "github.com/vamosestudar/estudar/internal/screens/quiz"
	"github.com/vamosestudar/estudar/internal/screens/subject"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// AssessmentScreen shows one assessment: its details, notes, subjects and
// the full quiz.
type AssessmentScreen struct {
	assessment content.Assessment
	menu       components.Menu
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates the screen for a.
func New(a content.Assessment, cfg qz.Config, log *zap.Logger) *AssessmentScreen {
	items := make([]components.MenuItem, 0, len(a.Subjects)+1)
	for _, s := range a.Subjects {
		detail := qz.CountLabel(len(s.Questions))
		if s.Date != "" {
			detail = content.FormatDate(s.Date) + "  ·  " + detail
		}
		items = append(items, components.MenuItem{
			Label:  s.Icon + " " + s.Name,
			Detail: detail,
			Action: func() tea.Cmd { return router.Push(subject.New(a, s, cfg, log)) },
		})
	}
	items = append(items, components.MenuItem{
		Label:    "📝 Simulado completo",
		Detail:   "até " + qz.CountLabel(cfg.MaxQuestionsAll) + " por matéria",
		Disabled: a.QuestionCount() == 0,
		Action: func() tea.Cmd {
			sess := qz.NewAssessmentSession(a, cfg, qz.WithLogger(log))
			return router.Push(quizscreen.New(sess))
		},
	})

	return &AssessmentScreen{
		assessment: a,
		menu:       components.NewMenu(items),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return s.assessment.Title
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) View(width, height int) string {
	a := s.assessment
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(a.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(
		a.SchoolLogo + " " + a.School + "  ·  " + a.Course + "  ·  " + content.FormatDate(a.ExamDate)))
	b.WriteString("\n\n")

	if notes := content.PlainText(a.AnotherInfo); notes != "" {
		b.WriteString(components.Card(
			theme.Section.Render("Informações")+"\n"+layout.Wrap(notes, cw-4), cw))
		b.WriteString("\n\n")
	}

	if len(a.Subjects) == 0 {
		b.WriteString(theme.Hint.Render("Nenhuma matéria cadastrada."))
		b.WriteString("\n\n")
	}

	rows := max(height-lipgloss.Height(b.String())-1, 3)
	b.WriteString(s.menu.ViewWindow(rows))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(max((width-cw)/2, 0)).
		Render(b.String())
}
