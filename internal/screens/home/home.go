package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/obinna/studymate/internal/chat"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/router"
	"github.com/obinna/studymate/internal/screen"
	chatscreen "github.com/obinna/studymate/internal/screens/chat"
	"github.com/obinna/studymate/internal/screens/knowledge"
	progressscreen "github.com/obinna/studymate/internal/screens/progress"
	quizscreen "github.com/obinna/studymate/internal/screens/quiz"
	"github.com/obinna/studymate/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	engine     *progress.Engine
	relay      *chat.Relay
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. relay may be nil when no LLM provider is
// configured.
func New(engine *progress.Engine, relay *chat.Relay) *HomeScreen {
	menuLabels := []string{"TAKE A QUIZ", "KNOWLEDGE BASE", "AI ASSISTANT", "MY PROGRESS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.NewList(engine)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: knowledge.New(engine)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(relay, engine)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(engine)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		engine:     engine,
		relay:      relay,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderHero(cw, compact))

	var up = progress.DefaultState().UserProgress
	if h.engine != nil {
		up = h.engine.UserProgress()
	}
	sections = append(sections, renderStatsBar(up, cw, compact))

	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))

	if h.relay == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.HeroFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
