package quiz

import "github.com/vamosestudar/estudar/internal/content"

// AnswerResult is the graded answer to one presented question.
type AnswerResult struct {
	Question   content.Question
	Subject    string
	UserAnswer content.Answer
	IsCorrect  bool
}

// SubjectScore is the per-subject part of a full-assessment result.
type SubjectScore struct {
	Subject        string
	Score          int
	TotalQuestions int
	Percentage     float64
}

// Result is a graded quiz.
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     float64 // 0-100; 0 when there are no questions
	Answers        []AnswerResult

	// Subjects is the per-subject breakdown of a full-assessment quiz in
	// first-seen presentation order. Empty for single-subject quizzes.
	Subjects []SubjectScore
}

// Band classifies a result for feedback.
type Band int

const (
	BandPoor Band = iota // below 50%
	BandFair             // 50% to 70%
	BandGood             // 70% and above
)

// Band returns the feedback band for the result.
func (r Result) Band() Band {
	return BandFor(r.Percentage)
}

// BandFor returns the feedback band for a percentage.
func BandFor(pct float64) Band {
	switch {
	case pct >= 70:
		return BandGood
	case pct >= 50:
		return BandFair
	default:
		return BandPoor
	}
}

// Message is the encouragement shown for the band.
func (b Band) Message() string {
	switch b {
	case BandGood:
		return "Excelente! 🎉"
	case BandFair:
		return "Bom trabalho! 👍"
	default:
		return "Continue estudando! 📚"
	}
}

func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(score) / float64(total)
}

// grade compares each answer with the question's correct answer. Equality
// is strict: an option index never matches a boolean and an unanswered
// slot never matches anything.
func grade(items []Item, answers []content.Answer, breakdown bool) Result {
	r := Result{
		TotalQuestions: len(items),
		Answers:        make([]AnswerResult, len(items)),
	}

	bySubject := make(map[string]int)
	for i, it := range items {
		var user content.Answer
		if i < len(answers) {
			user = answers[i]
		}
		correct := user.IsSet() && user == it.Question.CorrectAnswer
		if correct {
			r.Score++
		}
		r.Answers[i] = AnswerResult{
			Question:   it.Question,
			Subject:    it.Subject,
			UserAnswer: user,
			IsCorrect:  correct,
		}

		if !breakdown {
			continue
		}
		pos, ok := bySubject[it.Subject]
		if !ok {
			pos = len(r.Subjects)
			bySubject[it.Subject] = pos
			r.Subjects = append(r.Subjects, SubjectScore{Subject: it.Subject})
		}
		r.Subjects[pos].TotalQuestions++
		if correct {
			r.Subjects[pos].Score++
		}
	}

	r.Percentage = percentage(r.Score, r.TotalQuestions)
	for i := range r.Subjects {
		r.Subjects[i].Percentage = percentage(r.Subjects[i].Score, r.Subjects[i].TotalQuestions)
	}
	return r
}
