package notfound

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vamosestudar/estudar/internal/router"
)

func TestNotFoundScreen_View(t *testing.T) {
	n := New("Avaliação 9 não existe.")
	if !strings.Contains(n.View(80, 20), "Avaliação 9 não existe.") {
		t.Error("expected the missing item in the view")
	}
}

func TestNotFoundScreen_EnterGoesHome(t *testing.T) {
	n := New("x")
	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}
