package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/ui/components"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer a quiz on the command line (no TUI)",
	Long: `Take a subject quiz, or the full assessment quiz when --subject is
omitted, reading answers from stdin. Useful for scripting and for checking
authored questions.`,
	RunE: runQuizCmd,
}

func init() {
	quizCmd.Flags().Int("assessment", 0, "Assessment ID as shown by list (required)")
	quizCmd.Flags().Int("subject", 0, "Subject position inside the assessment")
	quizCmd.Flags().Int("count", 0, "Questions to draw for a subject quiz (default: quiz.max_questions_single)")
	quizCmd.Flags().Uint64("seed", 0, "Seed for a reproducible draw")
	_ = quizCmd.MarkFlagRequired("assessment")
}

func runQuizCmd(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("assessment")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	opts := []qz.Option{qz.WithLogger(rt.log)}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts = append(opts, qz.WithRand(qz.NewSeededRand(seed)))
	}

	var sess *qz.Session
	if cmd.Flags().Changed("subject") {
		sid, _ := cmd.Flags().GetInt("subject")
		_, s, err := cat.Subject(id, sid)
		if err != nil {
			return err
		}
		sess = qz.NewSubjectSession(s, rt.cfg.QuizSettings(), opts...)
		if cmd.Flags().Changed("count") {
			count, _ := cmd.Flags().GetInt("count")
			if err := sess.Select(count); err != nil {
				return fmt.Errorf("question count: %w", err)
			}
		}
	} else {
		a, err := cat.Assessment(id)
		if err != nil {
			return err
		}
		sess = qz.NewAssessmentSession(a, rt.cfg.QuizSettings(), opts...)
	}

	rt.log.Debug("quiz session", zap.String("quiz_id", sess.ID))
	return runQuiz(cmd.OutOrStdout(), cmd.InOrStdin(), sess)
}

// runQuiz asks every question of sess on out, reading answers from in, and
// prints the graded summary. Empty input skips a question.
func runQuiz(out io.Writer, in io.Reader, sess *qz.Session) error {
	if sess.Phase() == qz.PhaseConfiguring {
		if err := sess.Start(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	n := sess.Len()
	fmt.Fprintf(out, "%s: %s\n\n", sess.Title(), qz.CountLabel(n))

	for i, item := range sess.Items() {
		q := item.Question
		fmt.Fprintf(out, "── Questão %d/%d · %s ──\n", i+1, n, item.Subject)
		fmt.Fprintln(out, content.PlainText(q.Question))
		if q.Type == content.TypeBoolean {
			fmt.Fprintf(out, "  v) %s\n  f) %s\n", components.LabelTrue, components.LabelFalse)
		} else {
			for j, o := range q.Options {
				fmt.Fprintf(out, "  %d) %s\n", j+1, o)
			}
		}

		fmt.Fprint(out, "\nSua resposta: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(entrada encerrada)")
			break
		}
		a, ok := parseAnswer(q, scanner.Text())
		if !ok {
			fmt.Fprintln(out, "(pulada)")
			fmt.Fprintln(out)
			continue
		}
		if err := sess.RecordAnswer(i, a); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	res, err := sess.Grade()
	if err != nil {
		return err
	}
	writeSummary(out, res)
	return nil
}

// parseAnswer interprets typed input for q. Options are numbered from 1;
// boolean questions accept v/f, s/n or 1/2.
func parseAnswer(q content.Question, s string) (content.Answer, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return content.Unanswered(), false
	}

	if q.Type == content.TypeBoolean {
		switch s {
		case "v", "verdadeiro", "s", "sim", "1", "true":
			return content.BoolAnswer(true), true
		case "f", "falso", "n", "não", "nao", "2", "false":
			return content.BoolAnswer(false), true
		}
		return content.Unanswered(), false
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(q.Options) {
		return content.Unanswered(), false
	}
	return content.OptionAnswer(n - 1), true
}

func writeSummary(out io.Writer, res qz.Result) {
	fmt.Fprintf(out, "── Resultado: %d/%d (%.0f%%) ──\n", res.Score, res.TotalQuestions, res.Percentage)
	fmt.Fprintln(out, res.Band().Message())

	if len(res.Subjects) > 0 {
		fmt.Fprintln(out, "\nPor matéria:")
		for _, s := range res.Subjects {
			fmt.Fprintf(out, "  %-24s %d/%d (%.0f%%)\n", s.Subject, s.Score, s.TotalQuestions, s.Percentage)
		}
	}

	var wrong []qz.AnswerResult
	for _, a := range res.Answers {
		if !a.IsCorrect {
			wrong = append(wrong, a)
		}
	}
	if len(wrong) == 0 {
		return
	}
	fmt.Fprintln(out, "\nCorreções:")
	for _, a := range wrong {
		fmt.Fprintf(out, "  ✗ %s\n", content.PlainText(a.Question.Question))
		fmt.Fprintf(out, "    Sua resposta: %s · Correta: %s\n",
			components.AnswerText(a.Question, a.UserAnswer),
			components.AnswerText(a.Question, a.Question.CorrectAnswer))
	}
}
