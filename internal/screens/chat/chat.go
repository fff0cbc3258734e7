package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/obinna/studymate/internal/chat"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/screen"
	"github.com/obinna/studymate/internal/ui/components"
	"github.com/obinna/studymate/internal/ui/layout"
	"github.com/obinna/studymate/internal/ui/theme"
)

// replyMsg delivers the assistant's answer (or failure) back to the UI loop.
type replyMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg animates the "thinking" indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const requestTimeout = 60 * time.Second

// ChatScreen is the AI study assistant conversation view.
//
// The transcript and all progress mutations live on the UI loop; only
// the model request itself runs in a command.
type ChatScreen struct {
	relay    *chat.Relay
	engine   *progress.Engine
	input    components.TextInput
	messages []chat.Message
	loading  bool
	spinner  int
	notice   string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen. relay may be nil when no provider is
// configured; the screen then shows setup instructions. engine may be
// nil to skip progress tracking.
func New(relay *chat.Relay, engine *progress.Engine) *ChatScreen {
	s := &ChatScreen{
		relay:  relay,
		engine: engine,
		input:  components.NewTextInput("Ask me anything about Computer Science...", false, 0),
	}
	s.messages = append(s.messages, chat.Message{
		ID:        uuid.NewString(),
		Text:      chat.Greeting,
		Sender:    chat.SenderBot,
		Timestamp: time.Now(),
	})
	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.loading = false
		if msg.Err != nil {
			s.notice = "Failed to send message. Please try again."
			return s, nil
		}
		s.messages = append(s.messages, chat.Message{
			ID:        uuid.NewString(),
			Text:      msg.Text,
			Sender:    chat.SenderBot,
			Timestamp: time.Now(),
		})
		if s.engine != nil {
			s.engine.RecordChatReply()
		}
		return s, nil

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner = (s.spinner + 1) % len(spinnerFrames)
		return s, s.spinnerTick()

	case tea.KeyMsg:
		if s.relay == nil {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.send(s.input.Value())
		case "ctrl+p":
			// Cycle through the quick prompts.
			cur := s.input.Value()
			next := chat.QuickPrompts[0]
			for i, p := range chat.QuickPrompts {
				if p == cur {
					next = chat.QuickPrompts[(i+1)%len(chat.QuickPrompts)]
					break
				}
			}
			s.input.Model.SetValue(next)
			s.input.Model.CursorEnd()
			return s, nil
		}
	}

	if s.loading {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send dispatches the question to the relay and updates progress. The
// transcript gets the question immediately; the answer arrives as a
// replyMsg. A no-op while a request is in flight.
func (s *ChatScreen) send(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" || s.loading {
		return nil
	}

	s.messages = append(s.messages, chat.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    chat.SenderUser,
		Timestamp: time.Now(),
	})
	if s.engine != nil {
		s.engine.RecordChatQuestion()
	}

	s.input.Model.SetValue("")
	s.loading = true
	s.notice = ""

	relay := s.relay
	ask := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := relay.Ask(ctx, text)
		return replyMsg{Text: reply, Err: err}
	}
	return tea.Batch(ask, s.spinnerTick())
}

func (s *ChatScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *ChatScreen) View(width, height int) string {
	if s.relay == nil {
		return lipgloss.NewStyle().Padding(2, 4).Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⚠ The AI assistant is not configured.") + "\n\n" +
				theme.Body.Render("Set STUDYMATE_GEMINI_API_KEY (or another provider key)\nand restart to chat with the study assistant."))
	}

	wrap := width - 12
	if wrap < 20 {
		wrap = 20
	}

	userStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Text).
		Padding(0, 1)
	botStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var blocks []string
	for _, m := range s.messages {
		label := "Assistant"
		style := botStyle
		if m.Sender == chat.SenderUser {
			label = "You"
			style = userStyle
		}
		blocks = append(blocks,
			dimStyle.Render(fmt.Sprintf("%s · %s", label, m.Timestamp.Format("15:04")))+"\n"+
				style.Width(min(wrap, 72)).Render(m.Text))
	}

	if s.loading {
		blocks = append(blocks, dimStyle.Render(spinnerFrames[s.spinner]+" thinking..."))
	}
	if s.notice != "" {
		blocks = append(blocks, theme.Incorrect.Render(s.notice))
	}

	transcript := strings.Join(blocks, "\n")

	// Keep only the lines that fit above the input row.
	avail := height - 4
	if avail < 3 {
		avail = 3
	}
	lines := strings.Split(transcript, "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	transcript = strings.Join(lines, "\n")

	inputRow := s.input.View()
	prompts := dimStyle.Render("Ctrl+P cycles quick prompts: " + strings.Join(chat.QuickPrompts, " · "))

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(
		transcript + "\n\n" + inputRow + "\n" + prompts)
}

func (s *ChatScreen) Title() string {
	return "AI Assistant"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+P", Description: "Quick prompt"},
		{Key: "Esc", Description: "Back"},
	}
}
