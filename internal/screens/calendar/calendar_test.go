package calendar

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/vamosestudar/estudar/internal/content"
	qz "github.com/vamosestudar/estudar/internal/quiz"
	"github.com/vamosestudar/estudar/internal/router"
	"github.com/vamosestudar/estudar/internal/screens/subject"
)

func testAssessments() []content.Assessment {
	return []content.Assessment{
		{ID: 0, Title: "Trimestral", School: "Colégio Portinari", Subjects: []content.Subject{
			{Name: "Matemática", Icon: "🔢", Date: "2024-11-26"},
			{Name: "Artes", Icon: "🎨"},
		}},
		{ID: 1, Title: "Inglês", School: "Yazigi Centro", Subjects: []content.Subject{
			{Name: "Grammar", Icon: "🇺🇸", Date: "2024-11-25"},
		}},
	}
}

func fixedNow(s string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
}

func TestCalendarScreen_SortedByDate(t *testing.T) {
	c := New(testAssessments(), qz.DefaultConfig(), zap.NewNop())
	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Subject != "Grammar" || entries[1].Subject != "Matemática" {
		t.Errorf("order = %s, %s", entries[0].Subject, entries[1].Subject)
	}
	if !strings.Contains(c.View(80, 24), "25/11/2024") {
		t.Error("expected formatted date in view")
	}
}

func TestCalendarScreen_Next(t *testing.T) {
	c := New(testAssessments(), qz.DefaultConfig(), zap.NewNop())

	c.now = fixedNow("2024-11-20")
	if got, _ := c.next(); got != "Próxima: Grammar em 5 dias" {
		t.Errorf("next = %q", got)
	}
	c.now = fixedNow("2024-11-25")
	if got, _ := c.next(); got != "Hoje: Grammar" {
		t.Errorf("next = %q", got)
	}
	c.now = fixedNow("2024-11-26")
	if got, _ := c.next(); got != "Hoje: Matemática" {
		t.Errorf("next = %q", got)
	}
	c.now = fixedNow("2025-01-01")
	if _, ok := c.next(); ok {
		t.Error("expected no upcoming exam")
	}
}

func TestCalendarScreen_OpenSubject(t *testing.T) {
	c := New(testAssessments(), qz.DefaultConfig(), zap.NewNop())
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*subject.SubjectScreen); !ok {
		t.Errorf("pushed %T, want subject screen", msg.Screen)
	}
}

func TestCalendarScreen_Empty(t *testing.T) {
	c := New(nil, qz.DefaultConfig(), zap.NewNop())
	if !strings.Contains(c.View(80, 24), "Nenhuma data") {
		t.Error("expected empty message")
	}
}
