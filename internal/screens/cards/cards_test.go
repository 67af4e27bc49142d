package cards

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vamosestudar/estudar/internal/content"
)

func testSubject() content.Subject {
	return content.Subject{
		Name: "Matemática",
		StudyCards: []content.StudyCard{
			{Title: "Frações", Description: "<p>Parte de um <b>todo</b>.</p>"},
			{Title: "Decimais", Description: "Números com vírgula."},
		},
	}
}

func TestCardsScreen_Flip(t *testing.T) {
	c := New(testSubject())
	if strings.Contains(c.View(80, 20), "Parte de um todo") {
		t.Error("description should be hidden before flipping")
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if !c.Flipped() {
		t.Fatal("expected card flipped")
	}
	if !strings.Contains(c.View(80, 20), "Parte de um todo") {
		t.Error("expected plain-text description after flipping")
	}
}

func TestCardsScreen_Navigation(t *testing.T) {
	c := New(testSubject())

	c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0 at first card", c.Index())
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1", c.Index())
	}
	if c.Flipped() {
		t.Error("moving should show the front of the next card")
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1 at last card", c.Index())
	}
	if c.Status() != "2/2" {
		t.Errorf("status = %q", c.Status())
	}
}

func TestCardsScreen_Empty(t *testing.T) {
	c := New(content.Subject{Name: "Artes"})
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !strings.Contains(c.View(80, 20), "não tem cartões") {
		t.Error("expected empty message")
	}
	if c.Status() != "" {
		t.Errorf("status = %q, want empty", c.Status())
	}
}
