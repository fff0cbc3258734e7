package knowledge

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/studymate/internal/knowledge"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/screen"
	"github.com/obinna/studymate/internal/ui/components"
	"github.com/obinna/studymate/internal/ui/layout"
	"github.com/obinna/studymate/internal/ui/theme"
)

// levelTabs cycles "" (all) → ND → HND.
var levelTabs = []knowledge.Level{"", knowledge.LevelND, knowledge.LevelHND}

// KnowledgeScreen is the searchable course material browser. Time spent
// reading a course's detail page is credited as study time.
type KnowledgeScreen struct {
	engine *progress.Engine
	search components.TextInput

	results  []knowledge.Course
	selected int
	tab      int

	// Detail view. openedAt is set while a course is open.
	detail   *knowledge.Course
	openedAt time.Time
}

var _ screen.Screen = (*KnowledgeScreen)(nil)
var _ screen.KeyHintProvider = (*KnowledgeScreen)(nil)

// New creates the knowledge base screen. engine may be nil; study time
// is then not recorded.
func New(engine *progress.Engine) *KnowledgeScreen {
	s := &KnowledgeScreen{
		engine: engine,
		search: components.NewTextInput("Search courses, topics...", false, 0),
	}
	s.refresh()
	return s
}

func (s *KnowledgeScreen) refresh() {
	s.results = knowledge.Filter(s.search.Value(), levelTabs[s.tab])
	if s.selected >= len(s.results) {
		s.selected = 0
	}
}

func (s *KnowledgeScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *KnowledgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.detail != nil {
		if isKey {
			switch kmsg.String() {
			case "enter", "backspace":
				s.closeDetail()
			}
		}
		return s, nil
	}

	if isKey {
		switch kmsg.String() {
		case "tab":
			s.tab = (s.tab + 1) % len(levelTabs)
			s.refresh()
			return s, nil
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				c := s.results[s.selected]
				s.detail = &c
				s.openedAt = time.Now()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return s, cmd
}

// closeDetail leaves the detail view and credits the reading time.
func (s *KnowledgeScreen) closeDetail() {
	if s.engine != nil {
		minutes := int(time.Since(s.openedAt).Minutes())
		if minutes > 0 {
			s.engine.AddStudyTime(minutes)
		}
	}
	s.detail = nil
}

func (s *KnowledgeScreen) View(width, height int) string {
	if s.detail != nil {
		return s.viewDetail(width)
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(s.search.View() + "\n")

	var tabs []string
	labels := []string{"ALL", "ND", "HND"}
	for i, label := range labels {
		if i == s.tab {
			tabs = append(tabs, theme.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	if len(s.results) == 0 {
		b.WriteString(dimStyle.Render("No courses match your search."))
	}

	for i, c := range s.results {
		border := theme.Border
		if i == s.selected {
			border = theme.Primary
		}
		card := fmt.Sprintf("%s  %s\n%s\n%s",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title),
			dimStyle.Render(string(c.Level)),
			dimStyle.Render(c.Description),
			dimStyle.Render(c.Semester),
		)
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2).
			Width(min(width-8, 72)).
			Render(card) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (s *KnowledgeScreen) viewDetail(width int) string {
	c := s.detail
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Title) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s", c.Level, c.Semester)) + "\n\n")
	b.WriteString(theme.Body.Render(c.Description) + "\n\n")

	b.WriteString(theme.Selected.Render("Topics") + "\n")
	for _, t := range c.Topics {
		b.WriteString("  • " + theme.Body.Render(t) + "\n")
	}

	if len(c.Materials) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Study materials") + "\n")
		for _, m := range c.Materials {
			b.WriteString("  ▸ " + theme.Body.Render(m) + "\n")
		}
	}

	b.WriteString("\n" + theme.Hint.Render("Enter: back to results"))

	return lipgloss.NewStyle().Padding(1, 4).Width(min(width, 84)).Render(b.String())
}

func (s *KnowledgeScreen) Title() string {
	return "Knowledge Base"
}

func (s *KnowledgeScreen) KeyHints() []layout.KeyHint {
	if s.detail != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to results"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Level filter"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Home"},
	}
}
