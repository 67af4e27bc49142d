package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vamosestudar/estudar/internal/content"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at end = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key('k'))
	if m.Selected != 1 {
		t.Errorf("after k = %d, want 1", m.Selected)
	}
}

func TestMenu_ViewWindowKeepsSelectionVisible(t *testing.T) {
	items := make([]MenuItem, 10)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	m := NewMenu(items)
	m.Selected = 7

	view := m.ViewWindow(3)
	if strings.Count(view, "\n") != 3 {
		t.Errorf("expected 3 rows, got %q", view)
	}
	if !strings.Contains(view, "▸ h") {
		t.Errorf("selection not visible: %q", view)
	}
}

func TestMultiChoice_BooleanPick(t *testing.T) {
	q := content.Question{Question: "Céu é azul?", Type: content.TypeBoolean, CorrectAnswer: content.BoolAnswer(true)}
	m := NewMultiChoice(q, content.Unanswered())

	m, picked := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if picked {
		t.Fatal("moving should not pick")
	}
	m, picked = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !picked {
		t.Fatal("enter should pick")
	}
	if b, ok := m.Chosen.Bool(); !ok || b {
		t.Errorf("Chosen = %v, want false", m.Chosen)
	}
}

func TestMultiChoice_DigitPick(t *testing.T) {
	q := content.Question{Type: content.TypeMultiple, Options: []string{"x", "y", "z"}}
	m := NewMultiChoice(q, content.Unanswered())

	if _, picked := m.Update(key('4')); picked {
		t.Error("digit past the last option should not pick")
	}
	m, picked := m.Update(key('3'))
	if !picked {
		t.Fatal("digit should pick")
	}
	if i, ok := m.Chosen.Option(); !ok || i != 2 {
		t.Errorf("Chosen = %v, want option 2", m.Chosen)
	}
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
}

func TestMultiChoice_RestoresCurrentAnswer(t *testing.T) {
	q := content.Question{Type: content.TypeMultiple, Options: []string{"x", "y"}}
	m := NewMultiChoice(q, content.OptionAnswer(1))
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}
	if !strings.Contains(m.View(40), "● 2) y") {
		t.Error("chosen option not marked")
	}
}

func TestMultiChoice_RevealIgnoresKeys(t *testing.T) {
	q := content.Question{Type: content.TypeMultiple, Options: []string{"x", "y"}}
	m := NewMultiChoice(q, content.Unanswered())
	m.Reveal = true
	if _, picked := m.Update(key('1')); picked {
		t.Error("reveal mode should not accept answers")
	}
}

func TestAnswerText(t *testing.T) {
	q := content.Question{Type: content.TypeMultiple, Options: []string{"x"}}
	tests := []struct {
		a    content.Answer
		want string
	}{
		{content.OptionAnswer(0), "x"},
		{content.OptionAnswer(4), "opção 5"},
		{content.BoolAnswer(true), LabelTrue},
		{content.Unanswered(), "sem resposta"},
	}
	for _, tt := range tests {
		if got := AnswerText(q, tt.a); got != tt.want {
			t.Errorf("AnswerText(%v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}
