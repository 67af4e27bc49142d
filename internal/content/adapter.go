package content

import "go.uber.org/zap"

// DefaultExamDate is used when a record carries no exam date.
const DefaultExamDate = "2024-12-01"

// Adapter normalizes raw assessment records. The zero value is usable and
// logs nothing.
type Adapter struct {
	log *zap.Logger
}

// NewAdapter creates an Adapter that reports dropped entries at debug level.
func NewAdapter(log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{log: log}
}

// Adapt converts one raw record into an Assessment using a silent adapter.
func Adapt(raw map[string]any) Assessment {
	return (&Adapter{}).Adapt(raw)
}

// Adapt converts one raw record into an Assessment. It never fails:
// missing fields get defaults and malformed subjects, cards and questions
// are dropped.
func (a *Adapter) Adapt(raw map[string]any) Assessment {
	if raw == nil {
		raw = map[string]any{}
	}

	var subjects []Subject
	for _, entry := range list(raw, "subjects") {
		switch x := entry.(type) {
		case []any:
			for _, s := range x {
				if subj, ok := a.adaptSubject(s); ok {
					subjects = append(subjects, subj)
				}
			}
		case map[string]any:
			if subj, ok := a.adaptSubject(x); ok {
				subjects = append(subjects, subj)
			}
		default:
			a.debug("drop subject entry", zap.Any("entry", entry))
		}
	}

	school := str(raw, "school")
	logo := str(raw, "schoolLogo")
	if logo == "" {
		logo = ResolveSchoolLogo(school)
	}

	examDate := firstStr(raw, "examDate", "date")
	if examDate == "" {
		examDate = DefaultExamDate
	}

	enabled, _ := raw["enabled"].(bool)

	return Assessment{
		Title:       str(raw, "title"),
		Course:      str(raw, "course"),
		School:      school,
		SchoolLogo:  logo,
		ExamDate:    examDate,
		AnotherInfo: firstStr(raw, "anotherInfo", "AnotherInfo"),
		Enabled:     enabled,
		Order:       number(raw, "order"),
		Subjects:    subjects,
	}
}

func (a *Adapter) adaptSubject(v any) (Subject, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		a.debug("drop subject: not an object")
		return Subject{}, false
	}
	name := firstStr(raw, "title", "name")
	if name == "" {
		a.debug("drop subject: missing title")
		return Subject{}, false
	}

	cards := list(raw, "cards")
	if cards == nil {
		cards = list(raw, "studyCards")
	}
	studyCards := []StudyCard{}
	for i, c := range cards {
		rc := classifyCard(i, c)
		if rc == nil {
			a.debug("drop card: unknown shape", zap.String("subject", name), zap.Int("position", i))
			continue
		}
		card, ok := rc.normalize()
		if !ok {
			a.debug("drop card: missing title or description", zap.String("subject", name), zap.Int("position", i))
			continue
		}
		studyCards = append(studyCards, card)
	}

	questions := []Question{}
	for i, q := range list(raw, "questions") {
		rq := classifyQuestion(q)
		if rq == nil {
			a.debug("drop question: not an object", zap.String("subject", name), zap.Int("position", i))
			continue
		}
		question, ok := rq.normalize()
		if !ok {
			a.debug("drop question: malformed", zap.String("subject", name), zap.Int("position", i))
			continue
		}
		questions = append(questions, question)
	}

	materials := []SupportMaterial{}
	for _, key := range []string{"helpMaterial", "supportMaterials"} {
		for _, m := range list(raw, key) {
			if mat, ok := adaptMaterial(m); ok {
				materials = append(materials, mat)
			}
		}
	}

	body := str(raw, "content")
	if body == "" {
		body = PlaceholderContent(name)
	}

	return Subject{
		Name:             name,
		Content:          body,
		Icon:             ResolveIcon(name),
		Date:             str(raw, "date"),
		StudyCards:       studyCards,
		Questions:        questions,
		SupportMaterials: materials,
	}, true
}

func adaptMaterial(v any) (SupportMaterial, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		return SupportMaterial{}, false
	}
	m := SupportMaterial{
		Title:   str(raw, "title"),
		Type:    MaterialType(str(raw, "type")),
		URL:     str(raw, "url"),
		Content: str(raw, "content"),
	}
	switch m.Type {
	case MaterialLink, MaterialDocument, MaterialVideo, MaterialText:
	default:
		if m.Content != "" && m.URL == "" {
			m.Type = MaterialText
		} else {
			m.Type = MaterialLink
		}
	}
	return m, true
}

func (a *Adapter) debug(msg string, fields ...zap.Field) {
	if a.log != nil {
		a.log.Debug(msg, fields...)
	}
}
