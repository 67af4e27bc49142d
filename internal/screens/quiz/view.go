package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

func (s *QuizScreen) renderConfigure(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(s.sess.Title()))
	b.WriteString("\n\n")

	if s.sess.Available() == 0 {
		b.WriteString(theme.Subtitle.Width(cw).Render("Nenhuma questão disponível para esta matéria."))
		return components.Frame(b.String(), width, height)
	}

	b.WriteString(theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%s no banco. Quantas deseja responder?", qz.CountLabel(s.sess.Available()))))
	b.WriteString("\n\n")

	if s.customOpen {
		b.WriteString(theme.Body.Render("Quantidade: "))
		b.WriteString(s.custom.View())
	} else {
		rows := max(height-10, 3)
		b.WriteString(s.counts.ViewWindow(rows))
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}
	return components.Frame(b.String(), width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	item, ok := s.sess.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	info := fmt.Sprintf("Questão %d de %d", s.sess.Index()+1, s.sess.Len())
	if s.sess.Kind() == qz.KindAssessment {
		info += "  ·  " + item.Subject
	}
	b.WriteString(theme.Section.Render(info))
	b.WriteString("\n")

	answered := 0.0
	if s.sess.Len() > 0 {
		answered = float64(s.sess.Answered()) / float64(s.sess.Len())
	}
	b.WriteString(components.NewProgressBar("", answered, false, cw).View())
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(cw))
	b.WriteString("\n")
	b.WriteString(s.renderDots())

	switch {
	case s.confirmQuit:
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render("Sair do quiz? As respostas serão perdidas. (s/n)"))
	case s.confirmEnd:
		missing := s.sess.Len() - s.sess.Answered()
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render(fmt.Sprintf("Há %d sem resposta. Pressione F de novo para finalizar.", missing)))
	case s.errMsg != "":
		b.WriteString("\n\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 3).
		Render(b.String())
}

// renderDots shows one marker per question: filled when answered,
// highlighted for the current one.
func (s *QuizScreen) renderDots() string {
	var b strings.Builder
	for i := range s.sess.Len() {
		dot := "○"
		if s.sess.Answer(i).IsSet() {
			dot = "●"
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.sess.Index() {
			style = theme.Selected
		}
		b.WriteString(style.Render(dot) + " ")
	}
	return b.String()
}

func (s *QuizScreen) renderResults(width, height int) string {
	r, ok := s.sess.Result()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(layout.Centered(bandStyle(r.Band()).Render(r.Band().Message()), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Body.Render(
		fmt.Sprintf("Você acertou %d de %d questões (%.0f%%)", r.Score, r.TotalQuestions, r.Percentage)), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(components.NewProgressBar("", r.Percentage/100, true, cw).View(), width))
	b.WriteString("\n\n")

	if len(r.Subjects) > 0 {
		b.WriteString(layout.Centered(theme.Section.Render("Por matéria"), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(layout.Divider(width), width))
		b.WriteString("\n")
		for _, sc := range r.Subjects {
			label := fmt.Sprintf("%-18s %d/%d", truncate(sc.Subject, 18), sc.Score, sc.TotalQuestions)
			bar := components.NewProgressBar(label, sc.Percentage/100, true, cw)
			b.WriteString(layout.Centered(bar.View(), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(layout.Centered(theme.Section.Render("Revisão"), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(layout.Divider(width), width))
	b.WriteString("\n")

	used := lipgloss.Height(b.String())
	b.WriteString(s.renderReview(r, cw, max(height-used-1, 4)))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// renderReview lists graded answers from reviewTop, fitting rows lines.
func (s *QuizScreen) renderReview(r qz.Result, cw, rows int) string {
	var blocks []string
	lines := 0
	for i := s.reviewTop; i < len(r.Answers); i++ {
		a := r.Answers[i]
		mark := theme.Correct.Render("✓")
		if !a.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		head := fmt.Sprintf("%s %d. %s", mark, i+1, a.Question.Question)
		if s.sess.Kind() == qz.KindAssessment {
			head += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + a.Subject + ")")
		}

		block := lipgloss.NewStyle().Width(cw).Render(head) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				"   Sua resposta: "+components.AnswerText(a.Question, a.UserAnswer)) + "\n"
		if !a.IsCorrect {
			block += theme.Correct.Render("   Resposta correta: "+components.AnswerText(a.Question, a.Question.CorrectAnswer)) + "\n"
		}

		h := lipgloss.Height(block)
		if lines+h > rows && len(blocks) > 0 {
			break
		}
		blocks = append(blocks, block)
		lines += h
	}
	return lipgloss.NewStyle().PaddingLeft(3).Render(strings.Join(blocks, ""))
}

func bandStyle(b qz.Band) lipgloss.Style {
	switch b {
	case qz.BandGood:
		return theme.BandGood
	case qz.BandFair:
		return theme.BandFair
	default:
		return theme.BandPoor
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
