package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// Labels for true/false questions.
const (
	LabelTrue  = "Verdadeiro"
	LabelFalse = "Falso"
)

// MultiChoice renders one quiz question and lets the user pick an answer.
// Boolean questions are shown as two options. Picking does not grade; the
// caller records Chosen() into the quiz session.
type MultiChoice struct {
	Question content.Question
	Cursor   int
	Chosen   content.Answer

	// Reveal marks the correct option and the chosen one when wrong.
	Reveal bool
}

// NewMultiChoice creates the selector for q with its current answer.
func NewMultiChoice(q content.Question, current content.Answer) MultiChoice {
	m := MultiChoice{Question: q, Chosen: current}
	if i, ok := m.indexOf(current); ok {
		m.Cursor = i
	}
	return m
}

// Options returns the displayed option texts.
func (m MultiChoice) Options() []string {
	if m.Question.Type == content.TypeBoolean {
		return []string{LabelTrue, LabelFalse}
	}
	return m.Question.Options
}

// answerAt converts a displayed position to an answer value.
func (m MultiChoice) answerAt(i int) content.Answer {
	if m.Question.Type == content.TypeBoolean {
		return content.BoolAnswer(i == 0)
	}
	return content.OptionAnswer(i)
}

// indexOf returns the displayed position of an answer value.
func (m MultiChoice) indexOf(a content.Answer) (int, bool) {
	if b, ok := a.Bool(); ok {
		if b {
			return 0, true
		}
		return 1, true
	}
	if i, ok := a.Option(); ok {
		return i, true
	}
	return 0, false
}

// Update handles cursor movement and picking. It reports whether an
// answer was picked.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Reveal {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	n := len(m.Options())
	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < n-1 {
			m.Cursor++
		}
	case "enter", "space", " ":
		if n > 0 {
			m.Chosen = m.answerAt(m.Cursor)
			return m, true
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < n {
				m.Cursor = i
				m.Chosen = m.answerAt(i)
				return m, true
			}
		}
	}
	return m, false
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(max(width, 10)).
		Foreground(theme.Text).
		Bold(true).
		Render(m.Question.Question))
	b.WriteString("\n\n")

	chosen, hasChosen := m.indexOf(m.Chosen)
	correct, _ := m.indexOf(m.Question.CorrectAnswer)

	for i, opt := range m.Options() {
		prefix := "  "
		if i == m.Cursor && !m.Reveal {
			prefix = "▸ "
		}
		mark := " "
		if hasChosen && i == chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)

		style := theme.Unselected
		switch {
		case m.Reveal && i == correct:
			style = theme.Correct
		case m.Reveal && hasChosen && i == chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

// AnswerText renders an answer value as the option text the user saw.
func AnswerText(q content.Question, a content.Answer) string {
	if b, ok := a.Bool(); ok {
		if b {
			return LabelTrue
		}
		return LabelFalse
	}
	if i, ok := a.Option(); ok {
		if i >= 0 && i < len(q.Options) {
			return q.Options[i]
		}
		return fmt.Sprintf("opção %d", i+1)
	}
	return "sem resposta"
}
