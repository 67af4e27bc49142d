package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/screens/subject"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// CalendarScreen lists upcoming subject exam dates across assessments.
type CalendarScreen struct {
	entries []content.CalendarEntry
	menu    components.Menu
	now     func() time.Time
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates a calendar over the given assessments. Selecting an entry
// opens its subject.
func New(assessments []content.Assessment, cfg qz.Config, log *zap.Logger) *CalendarScreen {
	byID := make(map[int]content.Assessment, len(assessments))
	for _, a := range assessments {
		byID[a.ID] = a
	}

	entries := content.Calendar(assessments)
	items := make([]components.MenuItem, len(entries))
	for i, e := range entries {
		a := byID[e.AssessmentID]
		s, found := findSubject(a, e.Subject)
		items[i] = components.MenuItem{
			Label:    fmt.Sprintf("%s  %s %s", content.FormatDate(e.Date), e.Icon, e.Subject),
			Detail:   e.AssessmentTitle + " · " + e.School,
			Disabled: !found,
			Action:   func() tea.Cmd { return router.Push(subject.New(a, s, cfg, log)) },
		}
	}

	return &CalendarScreen{
		entries: entries,
		menu:    components.NewMenu(items),
		now:     time.Now,
	}
}

func findSubject(a content.Assessment, name string) (content.Subject, bool) {
	for _, s := range a.Subjects {
		if s.Name == name {
			return s, true
		}
	}
	return content.Subject{}, false
}

// Entries returns the listed dates in order.
func (c *CalendarScreen) Entries() []content.CalendarEntry {
	return c.entries
}

func (c *CalendarScreen) Init() tea.Cmd {
	return nil
}

func (c *CalendarScreen) Title() string {
	return "Calendário de provas"
}

func (c *CalendarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir matéria"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (c *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CalendarScreen) View(width, height int) string {
	if len(c.entries) == 0 {
		return components.Frame(theme.Subtitle.Render("Nenhuma data de prova cadastrada."), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("📅 Próximas provas"))
	b.WriteString("\n")
	if next, ok := c.next(); ok {
		b.WriteString(theme.Subtitle.Width(cw).Render(next))
	}
	b.WriteString("\n\n")
	b.WriteString(c.menu.ViewWindow(max(height-5, 3)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(max((width-cw)/2, 0)).
		Render(b.String())
}

// next describes the first exam that has not happened yet.
func (c *CalendarScreen) next() (string, bool) {
	y, mo, day := c.now().Date()
	today := time.Date(y, mo, day, 0, 0, 0, 0, time.UTC)
	for _, e := range c.entries {
		d, ok := content.ParseDate(e.Date)
		if !ok || d.Before(today) {
			continue
		}
		days := int(d.Sub(today).Hours() / 24)
		switch days {
		case 0:
			return fmt.Sprintf("Hoje: %s", e.Subject), true
		case 1:
			return fmt.Sprintf("Amanhã: %s", e.Subject), true
		default:
			return fmt.Sprintf("Próxima: %s em %d dias", e.Subject, days), true
		}
	}
	return "", false
}
