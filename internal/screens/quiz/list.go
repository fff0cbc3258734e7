package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/quiz"
	"github.com/obinna/studymate/internal/router"
	"github.com/obinna/studymate/internal/screen"
	"github.com/obinna/studymate/internal/ui/theme"
)

// ListScreen shows the quiz catalog.
type ListScreen struct {
	quizzes  []quiz.Quiz
	selected int
	engine   *progress.Engine
}

var _ screen.Screen = (*ListScreen)(nil)

// NewList creates the quiz catalog screen.
func NewList(engine *progress.Engine) *ListScreen {
	return &ListScreen{
		quizzes: quiz.Catalog(),
		engine:  engine,
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.quizzes)-1 {
			l.selected++
		}
	case "enter":
		q := l.quizzes[l.selected]
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: NewPlay(q, l.engine)}
		}
	}

	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a quiz") + "\n\n")

	for i, q := range l.quizzes {
		card := fmt.Sprintf("%s\n%s\n%s",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Title),
			dimStyle.Render(q.Description),
			dimStyle.Render(fmt.Sprintf("%s · %d questions · %s",
				q.Difficulty, len(q.Questions), q.EstimatedTime)),
		)

		border := theme.Border
		if i == l.selected {
			border = theme.Primary
		}
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2).
			Width(min(width-8, 70)).
			Render(card) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (l *ListScreen) Title() string {
	return "Quizzes"
}
