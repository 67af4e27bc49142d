package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamosestudar/estudar/internal/content"
)

func multiple(text string, correct int) content.Question {
	return content.Question{
		Question:      text,
		Type:          content.TypeMultiple,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: content.OptionAnswer(correct),
	}
}

func boolean(text string, correct bool) content.Question {
	return content.Question{
		Question:      text,
		Type:          content.TypeBoolean,
		CorrectAnswer: content.BoolAnswer(correct),
	}
}

func gradingSubject() content.Subject {
	return content.Subject{
		Name:      "Matemática",
		Questions: []content.Question{multiple("m", 1), boolean("b", false)},
	}
}

func startedSubject(t *testing.T) *Session {
	t.Helper()
	s := NewSubjectSession(gradingSubject(), DefaultConfig(), WithRand(identityRand{}))
	require.NoError(t, s.Start())
	return s
}

func TestSubjectSession_StartsConfiguring(t *testing.T) {
	subj := content.Subject{Name: "S", Questions: make([]content.Question, 8)}
	s := NewSubjectSession(subj, DefaultConfig())

	assert.Equal(t, PhaseConfiguring, s.Phase())
	assert.Equal(t, KindSubject, s.Kind())
	assert.Equal(t, 5, s.Selected())
	assert.Len(t, s.Options(), 8)
	assert.NotEmpty(t, s.ID)
	assert.Zero(t, s.Len())
}

func TestSubjectSession_DefaultCountCappedByAvailable(t *testing.T) {
	s := NewSubjectSession(gradingSubject(), DefaultConfig())
	assert.Equal(t, 2, s.Selected())
}

func TestSubjectSession_SelectAndStart(t *testing.T) {
	subj := content.Subject{Name: "S"}
	for i := range 6 {
		subj.Questions = append(subj.Questions, multiple(string(rune('a'+i)), 0))
	}
	s := NewSubjectSession(subj, DefaultConfig(), WithRand(NewSeededRand(9)))

	require.NoError(t, s.Select(3))
	assert.Equal(t, 3, s.Selected())
	require.NoError(t, s.Select(100))
	assert.Equal(t, 6, s.Selected())
	require.NoError(t, s.Select(3))

	require.NoError(t, s.Start())
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Answered())
	for _, it := range s.Items() {
		assert.Equal(t, "S", it.Subject)
	}

	assert.ErrorIs(t, s.Select(2), ErrNotConfiguring)
	assert.ErrorIs(t, s.Start(), ErrNotConfiguring)
}

func TestSubjectSession_NoQuestions(t *testing.T) {
	s := NewSubjectSession(content.Subject{Name: "vazio"}, DefaultConfig())
	assert.Equal(t, 0, s.Selected())
	assert.Len(t, s.Options(), 1)
	assert.ErrorIs(t, s.Start(), ErrNoQuestions)
	assert.Equal(t, PhaseConfiguring, s.Phase())
}

func TestSession_RecordAnswerRequiresInProgress(t *testing.T) {
	s := NewSubjectSession(gradingSubject(), DefaultConfig())
	assert.ErrorIs(t, s.RecordAnswer(0, content.OptionAnswer(1)), ErrNotInProgress)

	_, err := s.Grade()
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestSession_RecordAnswerOverwrites(t *testing.T) {
	s := startedSubject(t)

	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(2)))
	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(1)))
	assert.Equal(t, content.OptionAnswer(1), s.Answer(0))

	assert.ErrorIs(t, s.RecordAnswer(2, content.OptionAnswer(0)), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.RecordAnswer(-1, content.OptionAnswer(0)), ErrIndexOutOfRange)
	assert.Equal(t, content.Unanswered(), s.Answer(7))
}

func TestSession_IsCompleteCountsFalse(t *testing.T) {
	s := startedSubject(t)
	assert.False(t, s.IsComplete())

	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(0)))
	assert.False(t, s.IsComplete())

	require.NoError(t, s.RecordAnswer(1, content.BoolAnswer(false)))
	assert.True(t, s.IsComplete())
	assert.Equal(t, 2, s.Answered())
}

func TestSession_GradeAllCorrect(t *testing.T) {
	s := startedSubject(t)
	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(1)))
	require.NoError(t, s.RecordAnswer(1, content.BoolAnswer(false)))

	r, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 2, r.TotalQuestions)
	assert.Equal(t, 100.0, r.Percentage)
	assert.Equal(t, BandGood, r.Band())
	assert.Empty(t, r.Subjects)
	assert.Equal(t, PhaseCompleted, s.Phase())

	again, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, r, again)

	stored, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, r, stored)

	assert.ErrorIs(t, s.RecordAnswer(0, content.OptionAnswer(0)), ErrNotInProgress)
}

func TestSession_GradeUnanswered(t *testing.T) {
	s := startedSubject(t)

	r, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 0.0, r.Percentage)
	assert.Equal(t, BandPoor, r.Band())
	for _, a := range r.Answers {
		assert.False(t, a.IsCorrect)
		assert.False(t, a.UserAnswer.IsSet())
	}
}

func TestSession_GradeIsStrict(t *testing.T) {
	s := startedSubject(t)
	// An option index 0 must not match a false boolean.
	require.NoError(t, s.RecordAnswer(1, content.OptionAnswer(0)))
	// Out-of-range indices are accepted and graded incorrect.
	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(42)))

	r, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Score)
}

func TestSession_Navigation(t *testing.T) {
	subj := content.Subject{Name: "S", Questions: []content.Question{
		multiple("1", 0), multiple("2", 0), multiple("3", 0),
	}}
	s := NewSubjectSession(subj, DefaultConfig(), WithRand(identityRand{}))
	require.NoError(t, s.Start())

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "1", cur.Question.Question)

	assert.False(t, s.Prev())
	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.False(t, s.Next())
	assert.Equal(t, 2, s.Index())

	require.NoError(t, s.GoTo(0))
	assert.Equal(t, 0, s.Index())
	assert.ErrorIs(t, s.GoTo(3), ErrIndexOutOfRange)
	assert.Equal(t, 0, s.Index())

	it, err := s.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "2", it.Question.Question)
	_, err = s.Item(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSubjectSession_Restart(t *testing.T) {
	subj := content.Subject{Name: "S"}
	for i := range 10 {
		subj.Questions = append(subj.Questions, multiple(string(rune('a'+i)), 0))
	}
	s := NewSubjectSession(subj, DefaultConfig(), WithRand(NewSeededRand(5)))
	require.NoError(t, s.Select(4))
	require.NoError(t, s.Start())
	require.NoError(t, s.RecordAnswer(0, content.OptionAnswer(0)))
	s.Next()
	_, err := s.Grade()
	require.NoError(t, err)

	s.Restart()
	assert.Equal(t, PhaseConfiguring, s.Phase())
	assert.Equal(t, 4, s.Selected())
	assert.Zero(t, s.Len())
	_, ok := s.Result()
	assert.False(t, ok)

	require.NoError(t, s.Start())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Answered())
	for i := range s.Len() {
		assert.False(t, s.Answer(i).IsSet())
	}
}

func fullAssessment() content.Assessment {
	return content.Assessment{
		Title: "Prova",
		Subjects: []content.Subject{
			{Name: "Matemática", Questions: []content.Question{multiple("m1", 0), multiple("m2", 1), multiple("m3", 2)}},
			{Name: "Artes"},
			{Name: "Ciências", Questions: []content.Question{boolean("c1", true)}},
			{Name: "História", Questions: []content.Question{boolean("h1", false), boolean("h2", true)}},
		},
	}
}

func TestAssessmentSession_SamplesPerSubject(t *testing.T) {
	s := NewAssessmentSession(fullAssessment(), DefaultConfig(), WithRand(NewSeededRand(11)))

	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, KindAssessment, s.Kind())
	assert.Equal(t, 5, s.Len())

	counts := map[string]int{}
	for _, it := range s.Items() {
		counts[it.Subject]++
	}
	assert.Equal(t, map[string]int{"Matemática": 2, "Ciências": 1, "História": 2}, counts)

	assert.ErrorIs(t, s.Select(1), ErrNotConfiguring)
}

func TestAssessmentSession_BreakdownSumsToTotal(t *testing.T) {
	s := NewAssessmentSession(fullAssessment(), DefaultConfig(), WithRand(NewSeededRand(3)))
	for i, it := range s.Items() {
		if i%2 == 0 {
			require.NoError(t, s.RecordAnswer(i, it.Question.CorrectAnswer))
		}
	}

	r, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, 3, r.Score)

	sum, total := 0, 0
	for _, sub := range r.Subjects {
		sum += sub.Score
		total += sub.TotalQuestions
		assert.NotEqual(t, "Artes", sub.Subject)
	}
	assert.Equal(t, r.Score, sum)
	assert.Equal(t, r.TotalQuestions, total)
	assert.Len(t, r.Subjects, 3)
	assert.InDelta(t, 60.0, r.Percentage, 0.001)
	assert.Equal(t, BandFair, r.Band())
}

func TestAssessmentSession_RestartResamples(t *testing.T) {
	s := NewAssessmentSession(fullAssessment(), DefaultConfig(), WithRand(NewSeededRand(8)))
	require.NoError(t, s.RecordAnswer(0, content.BoolAnswer(true)))
	_, err := s.Grade()
	require.NoError(t, err)

	s.Restart()
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 0, s.Answered())
	_, ok := s.Result()
	assert.False(t, ok)
}

func TestAssessmentSession_Empty(t *testing.T) {
	s := NewAssessmentSession(content.Assessment{Title: "vazia"}, DefaultConfig())
	assert.Zero(t, s.Len())

	_, ok := s.Current()
	assert.False(t, ok)

	r, err := s.Grade()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Percentage)
	assert.Empty(t, r.Subjects)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandGood, BandFor(70))
	assert.Equal(t, BandFair, BandFor(69.9))
	assert.Equal(t, BandFair, BandFor(50))
	assert.Equal(t, BandPoor, BandFor(49.9))
	assert.Equal(t, "Excelente! 🎉", BandGood.Message())
}
