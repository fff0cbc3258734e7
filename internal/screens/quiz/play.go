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
	"github.com/obinna/studymate/internal/ui/components"
	"github.com/obinna/studymate/internal/ui/layout"
	"github.com/obinna/studymate/internal/ui/theme"
)

type playPhase int

const (
	phaseAnswering playPhase = iota
	phaseFeedback
	phaseDone
)

// PlayScreen runs a single quiz from first question to the results view.
type PlayScreen struct {
	runner   *quiz.Runner
	engine   *progress.Engine
	choice   components.MultiChoice
	phase    playPhase
	xpBefore int
	xpEarned int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// NewPlay creates a play screen for the given quiz. The engine doubles as
// the score reporter; it may be nil in previews.
func NewPlay(q quiz.Quiz, engine *progress.Engine) *PlayScreen {
	var reporter quiz.Reporter
	if engine != nil {
		reporter = engine
	}
	runner := quiz.NewRunner(q, reporter)

	p := &PlayScreen{
		runner: runner,
		engine: engine,
	}
	if engine != nil {
		p.xpBefore = engine.UserProgress().XP
	}
	p.loadQuestion()
	return p
}

func (p *PlayScreen) loadQuestion() {
	q, ok := p.runner.Current()
	if !ok {
		return
	}
	p.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
	p.phase = phaseAnswering
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch p.phase {
	case phaseAnswering:
		var cmd tea.Cmd
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			p.phase = phaseFeedback
		}
		return p, cmd

	case phaseFeedback:
		if isKey && kmsg.String() == "enter" {
			done := p.runner.Submit(p.choice.ChosenIndex)
			if done {
				if p.engine != nil {
					p.xpEarned = p.engine.UserProgress().XP - p.xpBefore
				}
				p.phase = phaseDone
			} else {
				p.loadQuestion()
			}
		}
		return p, nil

	case phaseDone:
		if isKey {
			switch kmsg.String() {
			case "r":
				p.runner.Reset()
				if p.engine != nil {
					p.xpBefore = p.engine.UserProgress().XP
				}
				p.xpEarned = 0
				p.loadQuestion()
			case "enter":
				return p, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
		return p, nil
	}

	return p, nil
}

func (p *PlayScreen) View(width, height int) string {
	if p.phase == phaseDone {
		return p.viewResults(width)
	}

	q, ok := p.runner.Current()
	if !ok {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s — question %d of %d",
		p.runner.Quiz().Title, p.runner.Index()+1, p.runner.Total())) + "\n\n")
	b.WriteString(p.choice.View())

	if p.phase == phaseFeedback {
		b.WriteString("\n")
		if p.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite.") + "\n")
		}
		if q.Explanation != "" {
			b.WriteString(dimStyle.Render(q.Explanation) + "\n")
		}
		b.WriteString("\n" + theme.Hint.Render("Press Enter to continue"))
	}

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(b.String())
}

func (p *PlayScreen) viewResults(width int) string {
	pct := p.runner.Percent()

	var verdict string
	switch {
	case pct == 100:
		verdict = theme.Correct.Render("Perfect score!")
	case pct >= 70:
		verdict = theme.Correct.Render("Well done!")
	default:
		verdict = lipgloss.NewStyle().Foreground(theme.Accent).Render("Keep practicing!")
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.runner.Quiz().Title + " — results"),
		"",
		fmt.Sprintf("Score: %d/%d (%d%%)", p.runner.CorrectCount(), p.runner.Total(), pct),
		verdict,
	}
	if p.engine != nil {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("⚡ +%d XP", p.xpEarned)))
	}
	lines = append(lines, "", theme.Hint.Render("Enter: back to quizzes · r: retake"))

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width))
	return lipgloss.NewStyle().Padding(1, 4).Render(card)
}

func (p *PlayScreen) Title() string {
	return p.runner.Quiz().Title
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
			{Key: "R", Description: "Retake"},
		}
	}
}
