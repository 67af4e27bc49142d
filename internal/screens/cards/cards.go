package cards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/screen"
	"github.com/vamosestudar/estudar/internal/ui/components"
	"github.com/vamosestudar/estudar/internal/ui/layout"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

// CardsScreen flips through a subject's study cards one at a time.
type CardsScreen struct {
	subject string
	cards   []content.StudyCard
	index   int
	flipped bool
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)
var _ screen.StatusProvider = (*CardsScreen)(nil)

// New creates a cards screen for the subject.
func New(s content.Subject) *CardsScreen {
	return &CardsScreen{subject: s.Name, cards: s.StudyCards}
}

func (c *CardsScreen) Init() tea.Cmd {
	return nil
}

func (c *CardsScreen) Title() string {
	return "Cartões: " + c.subject
}

func (c *CardsScreen) Status() string {
	if len(c.cards) == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", c.index+1, len(c.cards))
}

func (c *CardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Espaço", Description: "Virar"},
		{Key: "←→", Description: "Anterior/Próximo"},
		{Key: "Esc", Description: "Voltar"},
	}
}

// Index returns the position of the card being shown.
func (c *CardsScreen) Index() int {
	return c.index
}

// Flipped reports whether the card's description is showing.
func (c *CardsScreen) Flipped() bool {
	return c.flipped
}

func (c *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.cards) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "space", " ", "enter":
		c.flipped = !c.flipped
	case "right", "l", "down", "j":
		if c.index < len(c.cards)-1 {
			c.index++
			c.flipped = false
		}
	case "left", "h", "up", "k":
		if c.index > 0 {
			c.index--
			c.flipped = false
		}
	case "home", "g":
		c.index = 0
		c.flipped = false
	}
	return c, nil
}

func (c *CardsScreen) View(width, height int) string {
	if len(c.cards) == 0 {
		return components.Frame(theme.Subtitle.Render("Esta matéria ainda não tem cartões de estudo."), width, height)
	}
	cw := components.ContentWidth(width)
	card := c.cards[c.index]

	var body strings.Builder
	if c.flipped {
		body.WriteString(theme.Section.Render(card.Title))
		body.WriteString("\n\n")
		body.WriteString(layout.Wrap(content.PlainText(card.Description), cw-4))
	} else {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().
			Width(cw-4).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(card.Title))
		body.WriteString("\n\n")
		body.WriteString(theme.Hint.Width(cw - 4).Align(lipgloss.Center).Render("pressione espaço para ver a resposta"))
		body.WriteString("\n")
	}
	if card.ImageSrc != "" {
		body.WriteString("\n\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("🖼  " + card.ImageSrc))
	}

	var b strings.Builder
	b.WriteString(components.Card(body.String(), cw))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("Cartão %d de %d", c.index+1, len(c.cards))))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
