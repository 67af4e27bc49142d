package home

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
	"github.com/vamosestudar/estudar/internal/screens/assessment"
	"github.com/vamosestudar/estudar/internal/screens/calendar"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// HomeScreen lists the enabled assessments with school, course and text
// filters.
type HomeScreen struct {
	all     []content.Assessment
	visible []content.Assessment
	schools []string
	courses []string

	// 0 means no filter; i selects schools[i-1] or courses[i-1].
	school int
	course int

	search    components.TextInput
	searching bool
	query     string

	menu components.Menu
	cfg  qz.Config
	log  *zap.Logger
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.EscapeHandler = (*HomeScreen)(nil)

// New creates a HomeScreen over the enabled assessments, already sorted.
func New(assessments []content.Assessment, cfg qz.Config, log *zap.Logger) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	h := &HomeScreen{
		all:     assessments,
		schools: content.Schools(assessments),
		courses: content.Courses(assessments),
		search:  components.NewTextInput("buscar avaliação", false, 40),
		cfg:     cfg,
		log:     log,
	}
	h.rebuild()
	return h
}

// Filter returns the active school and course filter.
func (h *HomeScreen) Filter() content.Filter {
	var f content.Filter
	if h.school > 0 {
		f.School = h.schools[h.school-1]
	}
	if h.course > 0 {
		f.Course = h.courses[h.course-1]
	}
	return f
}

// Visible returns the assessments currently listed.
func (h *HomeScreen) Visible() []content.Assessment {
	return h.visible
}

// rebuild applies the filters and the search query and refreshes the menu.
func (h *HomeScreen) rebuild() {
	visible := h.Filter().Apply(h.all)
	if q := strings.ToLower(h.query); q != "" {
		var matched []content.Assessment
		for _, a := range visible {
			hay := strings.ToLower(a.Title + " " + a.School + " " + a.Course)
			if strings.Contains(hay, q) {
				matched = append(matched, a)
			}
		}
		visible = matched
	}
	h.visible = visible

	items := make([]components.MenuItem, len(visible))
	for i, a := range visible {
		items[i] = components.MenuItem{
			Label: a.SchoolLogo + " " + a.Title,
			Detail: fmt.Sprintf("%s · %s · %s · %d matérias",
				a.School, a.Course, content.FormatDate(a.ExamDate), len(a.Subjects)),
			Action: func() tea.Cmd { return router.Push(assessment.New(a, h.cfg, h.log)) },
		}
	}
	h.menu = components.NewMenu(items)
	h.log.Debug("home list rebuilt",
		zap.String("school", h.Filter().School),
		zap.String("course", h.Filter().Course),
		zap.String("query", h.query),
		zap.Int("visible", len(visible)),
	)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Avaliações"
}

func (h *HomeScreen) Status() string {
	if len(h.visible) == 1 {
		return "1 avaliação"
	}
	return fmt.Sprintf("%d avaliações", len(h.visible))
}

func (h *HomeScreen) HandlesEscape() bool {
	return h.searching
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aplicar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "E", Description: "Escola"},
		{Key: "C", Description: "Curso"},
		{Key: "/", Description: "Buscar"},
		{Key: "D", Description: "Calendário"},
		{Key: "Q", Description: "Sair"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if h.searching {
			var cmd tea.Cmd
			h.search, cmd = h.search.Update(msg)
			return h, cmd
		}
		return h, nil
	}

	if h.searching {
		return h.handleSearchKey(kmsg)
	}

	switch kmsg.String() {
	case "e", "E":
		h.school = (h.school + 1) % (len(h.schools) + 1)
		h.rebuild()
		return h, nil
	case "c", "C":
		h.course = (h.course + 1) % (len(h.courses) + 1)
		h.rebuild()
		return h, nil
	case "x", "X":
		h.school, h.course, h.query = 0, 0, ""
		h.search.SetValue("")
		h.rebuild()
		return h, nil
	case "/":
		h.searching = true
		h.search.SetValue(h.query)
		return h, h.search.Init()
	case "d", "D":
		return h, router.Push(calendar.New(h.visible, h.cfg, h.log))
	case "q", "Q":
		return h, tea.Quit
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		h.searching = false
		h.search.SetValue(h.query)
		return h, nil
	case "enter":
		h.searching = false
		h.query = h.search.Value()
		h.rebuild()
		return h, nil
	}
	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 20 || width < 90

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, h.renderFilters(cw))

	var list string
	if len(h.visible) == 0 {
		list = theme.Subtitle.Width(cw).Render("Nenhuma avaliação encontrada.")
	} else {
		used := lipgloss.Height(strings.Join(sections, "\n\n")) + 4
		list = h.menu.ViewWindow(max(height-used, 3))
	}
	sections = append(sections, list)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(max((width-cw)/2, 0)).
		Render(strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) renderFilters(cw int) string {
	f := h.Filter()
	school, course := "Todas", "Todos"
	if f.School != "" {
		school = f.School
	}
	if f.Course != "" {
		course = f.Course
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	on := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	parts := []string{
		dim.Render("Escola: ") + on.Render(school),
		dim.Render("Curso: ") + on.Render(course),
	}
	if h.searching {
		parts = append(parts, dim.Render("Busca: ")+h.search.View())
	} else if h.query != "" {
		parts = append(parts, dim.Render("Busca: ")+on.Render(h.query))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, dim.Render("  ·  ")))
}
