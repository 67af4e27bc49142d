package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
)

// QuizScreen runs one quiz session through configuration, answering and
// results.
type QuizScreen struct {
	sess *qz.Session

	counts      components.Menu
	custom      components.TextInput
	customOpen  bool
	choice      components.MultiChoice
	confirmQuit bool
	confirmEnd  bool
	reviewTop   int
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a quiz screen over sess. Subject sessions start on the
// question-count selector; assessment sessions start answering.
func New(sess *qz.Session) *QuizScreen {
	s := &QuizScreen{
		sess:   sess,
		custom: components.NewTextInput("quantidade", true, 3),
	}
	s.resetCounts()
	s.loadChoice()
	return s
}

// Session returns the underlying quiz session.
func (s *QuizScreen) Session() *qz.Session {
	return s.sess
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.sess.Kind() == qz.KindAssessment {
		return "Simulado: " + s.sess.Title()
	}
	return "Quiz: " + s.sess.Title()
}

func (s *QuizScreen) Status() string {
	switch s.sess.Phase() {
	case qz.PhaseInProgress:
		return fmt.Sprintf("%d/%d respondidas", s.sess.Answered(), s.sess.Len())
	case qz.PhaseCompleted:
		if r, ok := s.sess.Result(); ok {
			return fmt.Sprintf("Nota %d/%d", r.Score, r.TotalQuestions)
		}
	}
	return ""
}

func (s *QuizScreen) HandlesEscape() bool {
	if s.customOpen || s.confirmQuit || s.confirmEnd {
		return true
	}
	return s.sess.Phase() == qz.PhaseInProgress
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "S", Description: "Sair"},
			{Key: "N", Description: "Continuar"},
		}
	case s.confirmEnd:
		return []layout.KeyHint{
			{Key: "F", Description: "Finalizar"},
			{Key: "Esc", Description: "Voltar"},
		}
	case s.customOpen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}

	switch s.sess.Phase() {
	case qz.PhaseConfiguring:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Quantidade"},
			{Key: "N", Description: "Outro valor"},
			{Key: "Enter", Description: "Começar"},
			{Key: "Esc", Description: "Voltar"},
		}
	case qz.PhaseInProgress:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Responder"},
			{Key: "←→", Description: "Navegar"},
			{Key: "F", Description: "Finalizar"},
			{Key: "Esc", Description: "Sair"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Revisar"},
			{Key: "R", Description: "Refazer"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
}

func (s *QuizScreen) View(width, height int) string {
	switch s.sess.Phase() {
	case qz.PhaseConfiguring:
		return s.renderConfigure(width, height)
	case qz.PhaseInProgress:
		return s.renderQuestion(width, height)
	default:
		return s.renderResults(width, height)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.customOpen {
			var cmd tea.Cmd
			s.custom, cmd = s.custom.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "s", "S", "y", "Y":
			s.confirmQuit = false
			return s, router.Pop()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.Phase() {
	case qz.PhaseConfiguring:
		return s.handleConfigureKey(kmsg)
	case qz.PhaseInProgress:
		return s.handleAnswerKey(kmsg)
	default:
		return s.handleResultsKey(kmsg)
	}
}

func (s *QuizScreen) handleConfigureKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.customOpen {
		switch key {
		case "esc":
			s.customOpen = false
			s.custom.SetValue("")
			return s, nil
		case "enter":
			n, err := s.custom.NumericValue()
			if err != nil || n < 1 {
				s.custom.Submit(false)
				return s, nil
			}
			s.customOpen = false
			s.custom.SetValue("")
			return s.start(n)
		}
		var cmd tea.Cmd
		s.custom, cmd = s.custom.Update(msg)
		return s, cmd
	}

	switch key {
	case "n", "N":
		if s.sess.Available() > 0 {
			s.customOpen = true
			return s, s.custom.Init()
		}
		return s, nil
	case "enter":
		opts := s.sess.Options()
		if s.counts.Selected < 0 || s.counts.Selected >= len(opts) {
			return s, nil
		}
		return s.start(opts[s.counts.Selected].Value)
	}

	var cmd tea.Cmd
	s.counts, cmd = s.counts.Update(msg)
	return s, cmd
}

// start selects count questions and begins answering. Counts above the
// pool size are clamped by the session.
func (s *QuizScreen) start(count int) (screen.Screen, tea.Cmd) {
	if err := s.sess.Select(count); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if err := s.sess.Start(); err != nil {
		s.errMsg = "Nenhuma questão disponível."
		return s, nil
	}
	s.errMsg = ""
	s.loadChoice()
	return s, nil
}

func (s *QuizScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmEnd {
		switch key {
		case "f", "F":
			return s.finish()
		case "esc", "n", "N":
			s.confirmEnd = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "f", "F":
		if !s.sess.IsComplete() {
			s.confirmEnd = true
			return s, nil
		}
		return s.finish()
	case "right", "l", "tab":
		if s.sess.Next() {
			s.loadChoice()
		}
		return s, nil
	case "left", "h", "shift+tab":
		if s.sess.Prev() {
			s.loadChoice()
		}
		return s, nil
	}

	var picked bool
	s.choice, picked = s.choice.Update(msg)
	if picked {
		if err := s.sess.RecordAnswer(s.sess.Index(), s.choice.Chosen); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.sess.Next() {
			s.loadChoice()
		}
	}
	return s, nil
}

func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	s.confirmEnd = false
	if _, err := s.sess.Grade(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.reviewTop = 0
	return s, nil
}

func (s *QuizScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r", "R":
		s.sess.Restart()
		s.resetCounts()
		s.loadChoice()
		s.reviewTop = 0
	case "up", "k":
		if s.reviewTop > 0 {
			s.reviewTop--
		}
	case "down", "j":
		if s.reviewTop < s.sess.Len()-1 {
			s.reviewTop++
		}
	case "enter":
		return s, router.Pop()
	}
	return s, nil
}

// resetCounts rebuilds the count selector with the session's current
// selection highlighted.
func (s *QuizScreen) resetCounts() {
	opts := s.sess.Options()
	items := make([]components.MenuItem, len(opts))
	for i, o := range opts {
		items[i] = components.MenuItem{Label: o.Label}
	}
	s.counts = components.NewMenu(items)
	if sel := s.sess.Selected() - 1; sel >= 0 && sel < len(items) {
		s.counts.Selected = sel
	}
}

// loadChoice points the answer selector at the current question.
func (s *QuizScreen) loadChoice() {
	item, ok := s.sess.Current()
	if !ok {
		s.choice = components.MultiChoice{}
		return
	}
	s.choice = components.NewMultiChoice(item.Question, s.sess.Answer(s.sess.Index()))
}
