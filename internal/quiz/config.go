package quiz

// Config holds the per-subject question caps. It is built once at startup
// and never changes afterwards.
type Config struct {
	// MaxQuestionsSingle is the default question count for a single-subject
	// quiz before the user picks one.
	MaxQuestionsSingle int

	// MaxQuestionsAll is how many questions each subject contributes to a
	// full-assessment quiz.
	MaxQuestionsAll int
}

const (
	DefaultMaxQuestionsSingle = 5
	DefaultMaxQuestionsAll    = 2
)

// DefaultConfig returns the caps used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxQuestionsSingle: DefaultMaxQuestionsSingle,
		MaxQuestionsAll:    DefaultMaxQuestionsAll,
	}
}
