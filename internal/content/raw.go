package content

import (
	"strconv"
	"strings"
)

// Raw shapes found in content files written over several schema versions.
// Each entry is classified into one explicit variant before normalization
// so the rules for a shape live in one place.

// rawCard is a study card as found in the source.
type rawCard interface {
	normalize() (StudyCard, bool)
}

// legacyStringCard is a bare string from the first schema version.
// Its position becomes the title ("Card N").
type legacyStringCard struct {
	position int
	text     string
}

func (c legacyStringCard) normalize() (StudyCard, bool) {
	if strings.TrimSpace(c.text) == "" {
		return StudyCard{}, false
	}
	return StudyCard{
		Title:       "Card " + strconv.Itoa(c.position+1),
		Description: c.text,
	}, true
}

// objectCard is a card with title, description and optional image.
type objectCard struct {
	title       string
	description string
	imageSrc    string
}

func (c objectCard) normalize() (StudyCard, bool) {
	if c.title == "" || c.description == "" {
		return StudyCard{}, false
	}
	return StudyCard{Title: c.title, Description: c.description, ImageSrc: c.imageSrc}, true
}

// classifyCard returns the variant for a raw card, or nil when the entry
// matches no known shape.
func classifyCard(position int, v any) rawCard {
	switch x := v.(type) {
	case string:
		return legacyStringCard{position: position, text: x}
	case map[string]any:
		return objectCard{
			title:       str(x, "title"),
			description: str(x, "description"),
			imageSrc:    str(x, "imageSrc"),
		}
	}
	return nil
}

// rawQuestion is a question as found in the source.
type rawQuestion interface {
	normalize() (Question, bool)
}

// legacyResponse is one entry of the legacy "responses" list.
type legacyResponse struct {
	description string
	isCorrect   bool
}

// legacyResponseQuestion uses "description" for the prompt and
// "responses" for the options, each flagged with isCorrect.
type legacyResponseQuestion struct {
	text      string
	trueFalse bool
	responses []legacyResponse
}

// canonicalQuestion already carries question, type, options and
// correctAnswer in their normalized form.
type canonicalQuestion struct {
	text    string
	typ     string
	options []string
	correct any
}

// classifyQuestion picks the variant for a raw question. Records with a
// correctAnswer field are canonical; everything else is read as the
// legacy responses shape.
func classifyQuestion(v any) rawQuestion {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := m["correctAnswer"]; ok {
		q := canonicalQuestion{
			text:    str(m, "question"),
			typ:     str(m, "type"),
			correct: m["correctAnswer"],
		}
		for _, o := range list(m, "options") {
			if s, ok := o.(string); ok {
				q.options = append(q.options, s)
			}
		}
		return q
	}

	q := legacyResponseQuestion{
		text:      firstStr(m, "question", "description"),
		trueFalse: str(m, "type") == "true/false",
	}
	responses := list(m, "options")
	if responses == nil {
		responses = list(m, "responses")
	}
	for _, r := range responses {
		switch x := r.(type) {
		case map[string]any:
			q.responses = append(q.responses, legacyResponse{
				description: str(x, "description"),
				isCorrect:   truthy(x["isCorrect"]),
			})
		case string:
			q.responses = append(q.responses, legacyResponse{description: x})
		}
	}
	return q
}

// trueLabels are option texts that mean "true" in a true/false question.
var trueLabels = []string{"verdadeiro", "verdadeira", "true", "v"}

func isTrueLabel(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range trueLabels {
		if s == l {
			return true
		}
	}
	return false
}

func (q legacyResponseQuestion) normalize() (Question, bool) {
	if q.text == "" {
		return Question{}, false
	}

	correct := -1
	for i, r := range q.responses {
		if r.isCorrect {
			correct = i
			break
		}
	}
	// A question with no marked answer is malformed; defaulting to the
	// first option would invent a correct answer.
	if correct < 0 {
		return Question{}, false
	}

	if q.trueFalse {
		return Question{
			Question:      q.text,
			Type:          TypeBoolean,
			CorrectAnswer: BoolAnswer(isTrueLabel(q.responses[correct].description)),
		}, true
	}

	options := make([]string, len(q.responses))
	for i, r := range q.responses {
		options[i] = r.description
	}
	return Question{
		Question:      q.text,
		Type:          TypeMultiple,
		Options:       options,
		CorrectAnswer: OptionAnswer(correct),
	}, true
}

func (q canonicalQuestion) normalize() (Question, bool) {
	if q.text == "" {
		return Question{}, false
	}

	if q.typ == string(TypeBoolean) || q.typ == "true/false" {
		var ans Answer
		switch x := q.correct.(type) {
		case bool:
			ans = BoolAnswer(x)
		case string:
			ans = BoolAnswer(isTrueLabel(x))
		default:
			return Question{}, false
		}
		return Question{Question: q.text, Type: TypeBoolean, CorrectAnswer: ans}, true
	}

	ans, ok := answerFromValue(q.correct)
	if !ok {
		return Question{}, false
	}
	idx, isOption := ans.Option()
	if !isOption || idx < 0 || idx >= len(q.options) {
		return Question{}, false
	}
	return Question{
		Question:      q.text,
		Type:          TypeMultiple,
		Options:       q.options,
		CorrectAnswer: ans,
	}, true
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// firstStr returns the first non-empty string among keys.
func firstStr(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := str(m, k); s != "" {
			return s
		}
	}
	return ""
}

func list(m map[string]any, key string) []any {
	l, _ := m[key].([]any)
	return l
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(strings.TrimSpace(x), "true")
	}
	return false
}

func number(m map[string]any, key string) int {
	switch x := m[key].(type) {
	case float64:
		return int(x)
	case int:
		return x
	}
	return 0
}
