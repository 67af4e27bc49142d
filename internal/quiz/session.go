package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
)

// Session is one quiz run. It is driven by a single UI and is not safe for
// concurrent use.
type Session struct {
	// ID correlates log lines of one run.
	ID string

	kind  Kind
	title string
	cfg   Config
	pools []pool
	rnd   Rand
	log   *zap.Logger

	phase    Phase
	selected int
	items    []Item
	answers  []content.Answer
	index    int
	result   *Result
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the randomness source used for sampling.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rnd = r
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

func newSession(kind Kind, title string, cfg Config, pools []pool, opts []Option) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		kind:  kind,
		title: title,
		cfg:   cfg,
		pools: pools,
		rnd:   DefaultRand(),
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(zap.String("quiz_id", s.ID), zap.Stringer("kind", kind))
	return s
}

// NewSubjectSession creates a quiz over one subject. It starts in
// PhaseConfiguring with the configured default count selected.
func NewSubjectSession(subject content.Subject, cfg Config, opts ...Option) *Session {
	s := newSession(KindSubject, subject.Name, cfg,
		[]pool{{subject: subject.Name, questions: subject.Questions}}, opts)
	s.phase = PhaseConfiguring
	s.selected = QuestionCount(len(subject.Questions), cfg.MaxQuestionsSingle, nil)
	return s
}

// NewAssessmentSession creates a quiz over every subject of an assessment
// and samples it right away. Subjects without questions contribute nothing.
func NewAssessmentSession(a content.Assessment, cfg Config, opts ...Option) *Session {
	var pools []pool
	for _, subj := range a.Subjects {
		if len(subj.Questions) == 0 {
			continue
		}
		pools = append(pools, pool{subject: subj.Name, questions: subj.Questions})
	}
	s := newSession(KindAssessment, a.Title, cfg, pools, opts)
	s.begin()
	return s
}

// Kind returns the quiz flavour.
func (s *Session) Kind() Kind { return s.kind }

// Title is the subject name or assessment title the quiz covers.
func (s *Session) Title() string { return s.title }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Available is the number of questions the quiz can draw from.
func (s *Session) Available() int {
	n := 0
	for _, p := range s.pools {
		n += len(p.questions)
	}
	return n
}

// Selected is the question count chosen for a subject quiz.
func (s *Session) Selected() int { return s.selected }

// Options lists the selectable question counts.
func (s *Session) Options() []CountOption { return QuestionOptions(s.Available()) }

// Select chooses the question count. It is clamped to what is available.
func (s *Session) Select(count int) error {
	if s.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}
	s.selected = QuestionCount(s.Available(), s.cfg.MaxQuestionsSingle, &count)
	return nil
}

// Start samples the questions and enters PhaseInProgress.
func (s *Session) Start() error {
	if s.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}
	if s.Available() == 0 {
		return ErrNoQuestions
	}
	if s.selected < 1 {
		s.selected = 1
	}
	s.begin()
	return nil
}

// begin draws a fresh question set and resets answers and navigation.
func (s *Session) begin() {
	switch s.kind {
	case KindSubject:
		p := s.pools[0]
		items := make([]Item, 0, s.selected)
		for _, q := range Sample(p.questions, &s.selected, s.cfg.MaxQuestionsSingle, s.rnd) {
			items = append(items, Item{Question: q, Subject: p.subject})
		}
		s.items = items
	case KindAssessment:
		var items []Item
		for _, p := range s.pools {
			for _, q := range Sample(p.questions, nil, s.cfg.MaxQuestionsAll, s.rnd) {
				items = append(items, Item{Question: q, Subject: p.subject})
			}
		}
		Shuffle(items, s.rnd)
		s.items = items
	}

	s.answers = make([]content.Answer, len(s.items))
	s.index = 0
	s.result = nil
	s.phase = PhaseInProgress
	s.log.Info("quiz started", zap.String("title", s.title), zap.Int("questions", len(s.items)))
}

// Len is the number of presented questions.
func (s *Session) Len() int { return len(s.items) }

// Items returns the presented questions in presentation order.
func (s *Session) Items() []Item { return s.items }

// Item returns the question at i.
func (s *Session) Item(i int) (Item, error) {
	if i < 0 || i >= len(s.items) {
		return Item{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return s.items[i], nil
}

// Index is the position of the question being shown.
func (s *Session) Index() int { return s.index }

// Current returns the question being shown. ok is false when the quiz has
// no questions.
func (s *Session) Current() (item Item, ok bool) {
	if s.index < 0 || s.index >= len(s.items) {
		return Item{}, false
	}
	return s.items[s.index], true
}

// Next moves to the following question and reports whether it moved.
// It stops at the last question.
func (s *Session) Next() bool {
	if s.index >= len(s.items)-1 {
		return false
	}
	s.index++
	return true
}

// Prev moves to the previous question and reports whether it moved.
// It stops at the first question.
func (s *Session) Prev() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// GoTo jumps to question i.
func (s *Session) GoTo(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.index = i
	return nil
}

// RecordAnswer stores value as the answer to question i, replacing any
// earlier answer. The value is not checked against the question's
// options; a value that cannot match simply grades as incorrect.
func (s *Session) RecordAnswer(i int, value content.Answer) error {
	if s.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if i < 0 || i >= len(s.answers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.answers[i] = value
	return nil
}

// Answer returns the recorded answer to question i, or the unanswered
// value.
func (s *Session) Answer(i int) content.Answer {
	if i < 0 || i >= len(s.answers) {
		return content.Unanswered()
	}
	return s.answers[i]
}

// Answered counts recorded answers.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.answers {
		if a.IsSet() {
			n++
		}
	}
	return n
}

// IsComplete reports whether every question has an answer. A false
// boolean answer counts.
func (s *Session) IsComplete() bool {
	for _, a := range s.answers {
		if !a.IsSet() {
			return false
		}
	}
	return true
}

// Grade scores the quiz and enters PhaseCompleted. It may be called before
// every question is answered; unanswered questions score as incorrect.
// Grading a completed quiz returns the same result.
func (s *Session) Grade() (Result, error) {
	switch s.phase {
	case PhaseCompleted:
		return *s.result, nil
	case PhaseInProgress:
	default:
		return Result{}, ErrNotInProgress
	}

	r := grade(s.items, s.answers, s.kind == KindAssessment)
	s.result = &r
	s.phase = PhaseCompleted
	s.log.Info("quiz graded",
		zap.Int("score", r.Score),
		zap.Int("total", r.TotalQuestions),
		zap.Float64("percentage", r.Percentage),
	)
	return r, nil
}

// Result returns the graded result once the quiz is completed.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Restart discards the sample and every answer. A subject quiz goes back
// to PhaseConfiguring keeping the selected count; an assessment quiz is
// sampled again immediately.
func (s *Session) Restart() {
	s.log.Info("quiz restarted")
	s.items = nil
	s.answers = nil
	s.index = 0
	s.result = nil

	if s.kind == KindSubject {
		s.phase = PhaseConfiguring
		return
	}
	s.begin()
}
