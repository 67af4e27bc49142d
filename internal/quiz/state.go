package quiz

import (
	"errors"

	"github.com/vamosestudar/estudar/internal/content"
)

// Kind distinguishes the two quiz flavours.
type Kind int

const (
	KindSubject    Kind = iota // One subject, user picks the question count
	KindAssessment             // Every subject of an assessment, fixed per-subject cap
)

func (k Kind) String() string {
	if k == KindAssessment {
		return "assessment"
	}
	return "subject"
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseConfiguring Phase = iota // Waiting for a question count
	PhaseInProgress               // Questions sampled, collecting answers
	PhaseCompleted                // Graded
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Invalid transitions return these errors; the session is left unchanged.
var (
	ErrNotConfiguring  = errors.New("quiz is not configuring")
	ErrNotInProgress   = errors.New("quiz is not in progress")
	ErrNoQuestions     = errors.New("no questions available")
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// Item is a presented question tagged with the subject it came from.
type Item struct {
	Question content.Question
	Subject  string
}

// pool is the full question set of one subject.
type pool struct {
	subject   string
	questions []content.Question
}
