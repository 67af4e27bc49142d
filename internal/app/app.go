package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/screens/assessment"
	"github.com/vamosestudar/estudar/internal/screens/home"
	"github.com/vamosestudar/estudar/internal/screens/notfound"
	"github.com/vamosestudar/estudar/internal/screens/subject"
	"github.com/vamosestudar/estudar/internal/screens/welcome"
	"github.com/vamosestudar/estudar/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Catalog *content.Catalog
	Quiz    quiz.Config
	Logger  *zap.Logger

	// SkipSplash starts directly on the home screen.
	SkipSplash bool

	// AssessmentID, when set, opens that assessment on top of home.
	// SubjectID additionally opens one of its subjects.
	AssessmentID *int
	SubjectID    *int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the initial screen stack.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	enabled := opts.Catalog.Enabled()
	homeFactory := func() screen.Screen {
		return home.New(enabled, opts.Quiz, log)
	}

	var r *router.Router
	if opts.SkipSplash || opts.AssessmentID != nil {
		r = router.New(homeFactory())
	} else {
		r = router.New(welcome.New(homeFactory, "Bons estudos!"))
	}

	if opts.AssessmentID != nil {
		for _, s := range deepLink(opts, log) {
			r.Push(s)
		}
	}

	return AppModel{router: r, log: log}
}

// deepLink resolves the screens opened from the command line.
func deepLink(opts Options, log *zap.Logger) []screen.Screen {
	id := *opts.AssessmentID
	a, err := opts.Catalog.Assessment(id)
	if err != nil {
		log.Warn("deep link", zap.Error(err))
		return []screen.Screen{notfound.New(fmt.Sprintf("Avaliação %d não existe.", id))}
	}
	stack := []screen.Screen{assessment.New(a, opts.Quiz, log)}
	if opts.SubjectID == nil {
		return stack
	}
	_, s, err := opts.Catalog.Subject(id, *opts.SubjectID)
	if err != nil {
		log.Warn("deep link", zap.Error(err))
		return append(stack, notfound.New(fmt.Sprintf("Matéria %d não existe em %q.", *opts.SubjectID, a.Title)))
	}
	return append(stack, subject.New(a, s, opts.Quiz, log))
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Info("quit")
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("run: no content catalog")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
