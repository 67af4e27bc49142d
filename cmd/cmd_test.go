package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
)

func bundledCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Parse(content.Bundled(), zap.NewNop())
	require.NoError(t, err)
	return cat
}

func TestWriteAssessmentTable(t *testing.T) {
	cat := bundledCatalog(t)
	var buf bytes.Buffer
	writeAssessmentTable(&buf, cat.Enabled())

	out := buf.String()
	assert.Contains(t, out, "Avaliação")
	assert.Contains(t, out, "Portinari")
	assert.Contains(t, out, "25/11/2024")
	assert.True(t, strings.HasSuffix(out, "2 avaliações\n"), "count footer missing: %q", out)
}

func TestWriteCalendarTable(t *testing.T) {
	cat := bundledCatalog(t)
	var buf bytes.Buffer
	writeCalendarTable(&buf, content.Calendar(cat.Enabled()))
	assert.Contains(t, buf.String(), "7 provas")

	buf.Reset()
	writeCalendarTable(&buf, nil)
	assert.Equal(t, "Nenhuma data de prova cadastrada.\n", buf.String())
}

func TestParseAnswer(t *testing.T) {
	multiple := content.Question{Type: content.TypeMultiple, Options: []string{"a", "b", "c"}}
	boolean := content.Question{Type: content.TypeBoolean}

	tests := []struct {
		name  string
		q     content.Question
		input string
		want  content.Answer
		ok    bool
	}{
		{"first option", multiple, "1", content.OptionAnswer(0), true},
		{"last option padded", multiple, " 3 ", content.OptionAnswer(2), true},
		{"option out of range", multiple, "4", content.Unanswered(), false},
		{"zero", multiple, "0", content.Unanswered(), false},
		{"not a number", multiple, "b", content.Unanswered(), false},
		{"empty skips", multiple, "", content.Unanswered(), false},
		{"v is true", boolean, "v", content.BoolAnswer(true), true},
		{"Verdadeiro", boolean, "Verdadeiro", content.BoolAnswer(true), true},
		{"f is false", boolean, "f", content.BoolAnswer(false), true},
		{"não", boolean, "não", content.BoolAnswer(false), true},
		{"2 is false", boolean, "2", content.BoolAnswer(false), true},
		{"garbage", boolean, "talvez", content.Unanswered(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAnswer(tt.q, tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func quizSubject() content.Subject {
	return content.Subject{
		Name: "Ciências",
		Questions: []content.Question{
			{Question: "A água ferve a 100 °C ao nível do mar?", Type: content.TypeBoolean, CorrectAnswer: content.BoolAnswer(true)},
			{Question: "Qual é um mamífero?", Type: content.TypeMultiple, Options: []string{"Tubarão", "Baleia"}, CorrectAnswer: content.OptionAnswer(1)},
		},
	}
}

func correctInput(sess *qz.Session) string {
	var lines []string
	for _, it := range sess.Items() {
		if b, ok := it.Question.CorrectAnswer.Bool(); ok {
			if b {
				lines = append(lines, "v")
			} else {
				lines = append(lines, "f")
			}
			continue
		}
		i, _ := it.Question.CorrectAnswer.Option()
		lines = append(lines, string(rune('1'+i)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestRunQuiz_AllCorrect(t *testing.T) {
	sess := qz.NewSubjectSession(quizSubject(), qz.DefaultConfig(), qz.WithRand(qz.NewSeededRand(7)))
	require.NoError(t, sess.Start())

	var out bytes.Buffer
	require.NoError(t, runQuiz(&out, strings.NewReader(correctInput(sess)), sess))

	assert.Contains(t, out.String(), "Questão 1/2")
	assert.Contains(t, out.String(), "Resultado: 2/2 (100%)")
	assert.NotContains(t, out.String(), "Correções")
	assert.Equal(t, qz.PhaseCompleted, sess.Phase())
}

func TestRunQuiz_SkipAndClosedInput(t *testing.T) {
	sess := qz.NewSubjectSession(quizSubject(), qz.DefaultConfig(), qz.WithRand(qz.NewSeededRand(7)))

	var out bytes.Buffer
	require.NoError(t, runQuiz(&out, strings.NewReader("\n"), sess))

	s := out.String()
	assert.Contains(t, s, "(pulada)")
	assert.Contains(t, s, "(entrada encerrada)")
	assert.Contains(t, s, "Resultado: 0/2 (0%)")
	assert.Contains(t, s, "Sua resposta: sem resposta")
}

func TestRunQuiz_AssessmentBreakdown(t *testing.T) {
	a := content.Assessment{
		Title: "Trimestral",
		Subjects: []content.Subject{
			quizSubject(),
			{Name: "Artes"},
		},
	}
	sess := qz.NewAssessmentSession(a, qz.DefaultConfig(), qz.WithRand(qz.NewSeededRand(1)))

	var out bytes.Buffer
	require.NoError(t, runQuiz(&out, strings.NewReader(correctInput(sess)), sess))
	assert.Contains(t, out.String(), "Por matéria:")
	assert.Contains(t, out.String(), "Ciências")
	assert.NotContains(t, out.String(), "Artes")
}

func TestRunQuiz_NoQuestions(t *testing.T) {
	sess := qz.NewSubjectSession(content.Subject{Name: "Artes"}, qz.DefaultConfig())
	err := runQuiz(&bytes.Buffer{}, strings.NewReader(""), sess)
	assert.ErrorIs(t, err, qz.ErrNoQuestions)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "estudar (devel)\n", buf.String())
}

func TestSetup_VerboseSubcommandLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ESTUDAR_LOGGING_FILE", filepath.Join(dir, "estudar.log"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"validate", "--verbose"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("verbose", "false")
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "(bundled): ok")
	assert.Contains(t, errOut.String(), "configured")
	assert.FileExists(t, filepath.Join(dir, "estudar.log"))
}
