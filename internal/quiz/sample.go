package quiz

import (
	"math/rand/v2"
	"slices"
	"strconv"
)

// Rand is the randomness source used for sampling. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the unseeded process-wide source.
func DefaultRand() Rand { return globalRand{} }

// NewSeededRand returns a deterministic source for reproducible quizzes.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes s in place with a Fisher-Yates shuffle.
func Shuffle[T any](s []T, r Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Sample returns QuestionCount(len(pool), limit, requested) elements of
// pool in shuffled order. The pool itself is not modified.
func Sample[T any](pool []T, requested *int, limit int, r Rand) []T {
	n := QuestionCount(len(pool), limit, requested)
	shuffled := slices.Clone(pool)
	Shuffle(shuffled, r)
	return shuffled[:n]
}

// QuestionCount is how many questions a quiz uses: the user's selection
// when present, the configured maximum otherwise, never more than what is
// available and never negative.
func QuestionCount(available, limit int, selected *int) int {
	n := limit
	if selected != nil {
		n = *selected
	}
	return clamp(n, 0, available)
}

// CountOption is one entry of the question-count selector.
type CountOption struct {
	Value int
	Label string
}

// QuestionOptions lists the selectable question counts 1..available. There
// is always at least one option.
func QuestionOptions(available int) []CountOption {
	n := max(1, available)
	opts := make([]CountOption, 0, n)
	for i := 1; i <= n; i++ {
		opts = append(opts, CountOption{Value: i, Label: CountLabel(i)})
	}
	return opts
}

// CountLabel renders a question count in Portuguese.
func CountLabel(n int) string {
	if n == 1 {
		return "1 questão"
	}
	return strconv.Itoa(n) + " questões"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
