package content

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// QuestionType discriminates how a question is answered.
type QuestionType string

const (
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
)

// MaterialType describes how a support material is presented.
type MaterialType string

const (
	MaterialLink     MaterialType = "link"
	MaterialDocument MaterialType = "document"
	MaterialVideo    MaterialType = "video"
	MaterialText     MaterialType = "text"
)

// Assessment is one exam with its subjects, normalized from a raw record.
type Assessment struct {
	// ID is the position of the raw record in the source document.
	ID int `json:"-"`

	Title       string    `json:"title"`
	Course      string    `json:"course"`
	School      string    `json:"school"`
	SchoolLogo  string    `json:"schoolLogo,omitempty"`
	ExamDate    string    `json:"examDate"`
	AnotherInfo string    `json:"anotherInfo"`
	Enabled     bool      `json:"enabled"`
	Order       int       `json:"order"`
	Subjects    []Subject `json:"subjects"`
}

// QuestionCount returns the number of questions across all subjects.
func (a Assessment) QuestionCount() int {
	n := 0
	for _, s := range a.Subjects {
		n += len(s.Questions)
	}
	return n
}

// Subject is a discipline inside an assessment.
type Subject struct {
	Name             string            `json:"name"`
	Content          string            `json:"content"`
	Icon             string            `json:"icon"`
	Date             string            `json:"date,omitempty"`
	StudyCards       []StudyCard       `json:"studyCards"`
	Questions        []Question        `json:"questions"`
	SupportMaterials []SupportMaterial `json:"supportMaterials"`
}

// PlaceholderContent is the content assigned to subjects that ship none.
func PlaceholderContent(name string) string {
	return "Conteúdo de " + name
}

// HasRealContent reports whether the subject carries authored content
// rather than the generated placeholder.
func (s Subject) HasRealContent() bool {
	return s.Content != "" && s.Content != PlaceholderContent(s.Name)
}

// StudyCard is a flashcard.
type StudyCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageSrc    string `json:"imageSrc,omitempty"`
}

// Question is a quiz question. For TypeMultiple, CorrectAnswer is an
// option index into Options; for TypeBoolean it is a boolean answer.
type Question struct {
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer Answer       `json:"correctAnswer"`
}

// SupportMaterial is a link, document, video or inline text.
type SupportMaterial struct {
	Title   string       `json:"title"`
	Type    MaterialType `json:"type"`
	URL     string       `json:"url,omitempty"`
	Content string       `json:"content,omitempty"`
}

type answerKind uint8

const (
	answerNone answerKind = iota
	answerOption
	answerBool
)

// Answer is either unset, an option index or a boolean. The zero value is
// unanswered. Answers are comparable with ==, which is strict: an option
// index never equals a boolean.
type Answer struct {
	kind   answerKind
	option int
	flag   bool
}

// Unanswered returns the empty answer.
func Unanswered() Answer { return Answer{} }

// OptionAnswer returns an answer selecting option i.
func OptionAnswer(i int) Answer { return Answer{kind: answerOption, option: i} }

// BoolAnswer returns a true/false answer.
func BoolAnswer(b bool) Answer { return Answer{kind: answerBool, flag: b} }

// IsSet reports whether the answer holds a value. A false BoolAnswer is set.
func (a Answer) IsSet() bool { return a.kind != answerNone }

// Option returns the option index and whether the answer is an option.
func (a Answer) Option() (int, bool) { return a.option, a.kind == answerOption }

// Bool returns the boolean value and whether the answer is a boolean.
func (a Answer) Bool() (bool, bool) { return a.flag, a.kind == answerBool }

func (a Answer) String() string {
	switch a.kind {
	case answerOption:
		return strconv.Itoa(a.option)
	case answerBool:
		return strconv.FormatBool(a.flag)
	default:
		return "null"
	}
}

// MarshalJSON encodes the answer as null, an integer or a boolean.
func (a Answer) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts null, an integer or a boolean.
func (a *Answer) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	ans, ok := answerFromValue(v)
	if !ok && v != nil {
		return fmt.Errorf("answer: unsupported value %s", b)
	}
	*a = ans
	return nil
}

// answerFromValue converts a decoded JSON value into an Answer.
func answerFromValue(v any) (Answer, bool) {
	switch x := v.(type) {
	case bool:
		return BoolAnswer(x), true
	case float64:
		if x != float64(int(x)) {
			return Answer{}, false
		}
		return OptionAnswer(int(x)), true
	case int:
		return OptionAnswer(x), true
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return Answer{}, false
		}
		return OptionAnswer(int(i)), true
	}
	return Answer{}, false
}
