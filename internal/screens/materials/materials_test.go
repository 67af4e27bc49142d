package materials

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vamosestudar/estudar/internal/content"
)

func testSubject() content.Subject {
	return content.Subject{
		Name: "Inglês",
		SupportMaterials: []content.SupportMaterial{
			{Title: "Verb to be", Type: content.MaterialVideo, URL: "https://example.com/v"},
			{Title: "Resumo", Type: content.MaterialText, URL: "https://example.com/resumo", Content: "<ul><li>I am</li><li>You are</li></ul>"},
		},
	}
}

func TestMaterialsScreen_ShowsSelectedDetail(t *testing.T) {
	m := New(testSubject())
	view := m.View(80, 24)
	if !strings.Contains(view, "https://example.com/v") {
		t.Error("expected first material url")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel, ok := m.Selected()
	if !ok || sel.Title != "Resumo" {
		t.Fatalf("selected = %+v, want Resumo", sel)
	}
	view = m.View(80, 24)
	if !strings.Contains(view, "• You are") {
		t.Error("expected text material rendered as bullets")
	}
	if strings.Contains(view, "https://example.com/resumo") {
		t.Error("text material with content should not show its url")
	}
}

func TestRenderDetail(t *testing.T) {
	m := New(content.Subject{Name: "Inglês"})
	tests := []struct {
		name    string
		mat     content.SupportMaterial
		want    []string
		notWant []string
	}{
		{
			name: "link shows url",
			mat:  content.SupportMaterial{Title: "Site", Type: content.MaterialLink, URL: "https://example.com/site"},
			want: []string{"https://example.com/site"},
		},
		{
			name: "document shows url and notes",
			mat:  content.SupportMaterial{Title: "PDF", Type: content.MaterialDocument, URL: "https://example.com/a.pdf", Content: "capítulo 2"},
			want: []string{"https://example.com/a.pdf", "capítulo 2"},
		},
		{
			name:    "text prefers content",
			mat:     content.SupportMaterial{Title: "Resumo", Type: content.MaterialText, URL: "https://example.com/r", Content: "<p>verbo</p>"},
			want:    []string{"verbo"},
			notWant: []string{"https://example.com/r"},
		},
		{
			name: "text falls back to url",
			mat:  content.SupportMaterial{Title: "Resumo", Type: content.MaterialText, URL: "https://example.com/r"},
			want: []string{"https://example.com/r"},
		},
		{
			name: "empty",
			mat:  content.SupportMaterial{Title: "Nada", Type: content.MaterialLink},
			want: []string{"Sem conteúdo."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.renderDetail(tt.mat, 60)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("detail missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("detail should not contain %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestMaterialsScreen_Empty(t *testing.T) {
	m := New(content.Subject{Name: "Artes"})
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection")
	}
	if !strings.Contains(m.View(80, 24), "Nenhum material") {
		t.Error("expected empty message")
	}
}

func TestTypeIcon(t *testing.T) {
	tests := []struct {
		typ  content.MaterialType
		want string
	}{
		{content.MaterialVideo, "🎬"},
		{content.MaterialDocument, "📄"},
		{content.MaterialText, "📝"},
		{content.MaterialLink, "🔗"},
		{"", "🔗"},
	}
	for _, tt := range tests {
		if got := TypeIcon(tt.typ); got != tt.want {
			t.Errorf("TypeIcon(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
