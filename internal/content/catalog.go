package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Lookup errors. Callers render a "content not found" state for both.
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSubjectNotFound    = errors.New("subject not found")
)

//go:embed bundled/content.json
var bundled []byte

// Bundled returns the content document shipped with the binary.
func Bundled() []byte {
	return bundled
}

// Catalog holds the raw records of a content document and adapts them on
// access. It is read-only after construction.
type Catalog struct {
	records []map[string]any
	adapter *Adapter
}

// Parse decodes a content document of the form {"assessments": [...]}.
// Entries that are not objects keep their position but adapt to an empty
// assessment.
func Parse(data []byte, log *zap.Logger) (*Catalog, error) {
	var doc struct {
		Assessments []any `json:"assessments"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	records := make([]map[string]any, len(doc.Assessments))
	for i, a := range doc.Assessments {
		m, _ := a.(map[string]any)
		records[i] = m
	}
	return &Catalog{records: records, adapter: NewAdapter(log)}, nil
}

// Load reads a content document from path, or the bundled document when
// path is empty.
func Load(path string, log *zap.Logger) (*Catalog, error) {
	if path == "" {
		return Parse(bundled, log)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data, log)
}

// Len returns the number of raw records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Assessment adapts the record at position id.
func (c *Catalog) Assessment(id int) (Assessment, error) {
	if id < 0 || id >= len(c.records) {
		return Assessment{}, fmt.Errorf("%w: %d", ErrAssessmentNotFound, id)
	}
	a := c.adapter.Adapt(c.records[id])
	a.ID = id
	return a, nil
}

// Subject returns subject subjectID of assessment id, with its assessment.
func (c *Catalog) Subject(id, subjectID int) (Assessment, Subject, error) {
	a, err := c.Assessment(id)
	if err != nil {
		return Assessment{}, Subject{}, err
	}
	if subjectID < 0 || subjectID >= len(a.Subjects) {
		return Assessment{}, Subject{}, fmt.Errorf("%w: %d/%d", ErrSubjectNotFound, id, subjectID)
	}
	return a, a.Subjects[subjectID], nil
}

// Enabled returns the visible assessments sorted by exam date, earliest
// first. Records with unparseable dates sort last; ties keep document order.
func (c *Catalog) Enabled() []Assessment {
	var out []Assessment
	for i, r := range c.records {
		if enabled, _ := r["enabled"].(bool); !enabled {
			continue
		}
		a := c.adapter.Adapt(r)
		a.ID = i
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dateLess(out[i].ExamDate, out[j].ExamDate)
	})
	return out
}

// Filter narrows assessments by school and course. Empty fields match
// everything; matching is a case-insensitive substring test.
type Filter struct {
	School string
	Course string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.School == "" && f.Course == ""
}

// Apply returns the assessments matching f, in input order.
func (f Filter) Apply(in []Assessment) []Assessment {
	if f.IsZero() {
		return in
	}
	school := strings.ToLower(f.School)
	course := strings.ToLower(f.Course)
	var out []Assessment
	for _, a := range in {
		if school != "" && !strings.Contains(strings.ToLower(a.School), school) {
			continue
		}
		if course != "" && !strings.Contains(strings.ToLower(a.Course), course) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Schools returns the distinct schools in first-seen order.
func Schools(in []Assessment) []string {
	return distinct(in, func(a Assessment) string { return a.School })
}

// Courses returns the distinct courses in first-seen order.
func Courses(in []Assessment) []string {
	return distinct(in, func(a Assessment) string { return a.Course })
}

func distinct(in []Assessment, key func(Assessment) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range in {
		k := key(a)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// CalendarEntry is one subject exam date.
type CalendarEntry struct {
	Subject         string
	Icon            string
	Date            string
	AssessmentID    int
	AssessmentTitle string
	School          string
}

// Calendar lists every dated subject of the given assessments, sorted by
// date ascending.
func Calendar(in []Assessment) []CalendarEntry {
	var out []CalendarEntry
	for _, a := range in {
		for _, s := range a.Subjects {
			if s.Date == "" {
				continue
			}
			out = append(out, CalendarEntry{
				Subject:         s.Name,
				Icon:            s.Icon,
				Date:            s.Date,
				AssessmentID:    a.ID,
				AssessmentTitle: a.Title,
				School:          a.School,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dateLess(out[i].Date, out[j].Date)
	})
	return out
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD content date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a YYYY-MM-DD date as DD/MM/YYYY. Unparseable input is
// returned unchanged.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006")
}

func dateLess(a, b string) bool {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	switch {
	case okA && okB:
		return ta.Before(tb)
	case okA:
		return true
	default:
		return false
	}
}
