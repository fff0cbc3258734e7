package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/obinna/studymate/internal/llm"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single chat transcript entry.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Greeting is the assistant's opening message, shown before any request
// is made.
const Greeting = "Hello! I'm your AI study assistant for Computer Science at Kaduna Polytechnic. I can help you with programming concepts, database management, software engineering, and much more. What would you like to learn about today?"

// systemPreamble frames every request sent to the model.
const systemPreamble = "You are an AI study assistant for Computer Science students at Kaduna Polytechnic. Provide helpful, educational responses focusing on CS concepts, programming, and academic support."

// apologyReply is returned when the model produced no usable text. The
// exchange still counts as answered.
const apologyReply = "I apologize, but I could not process your request at the moment."

// QuickPrompts are suggested questions surfaced in the chat UI.
var QuickPrompts = []string{
	"Explain Object-Oriented Programming",
	"Database normalization concepts",
	"Data structures and algorithms",
	"Software development lifecycle",
}

// Tracker receives progress notifications for chat activity.
type Tracker interface {
	RecordChatQuestion()
	RecordChatReply()
}

// RelayConfig holds generation parameters for the relay.
type RelayConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRelayConfig returns sensible defaults.
func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Relay forwards learner questions to the model and tracks the
// conversation transcript.
type Relay struct {
	provider llm.Provider
	tracker  Tracker
	cfg      RelayConfig
	now      func() time.Time

	history []Message
}

// NewRelay creates a Relay. tracker may be nil when progress tracking is
// not wanted (one-shot CLI questions).
func NewRelay(provider llm.Provider, tracker Tracker, cfg RelayConfig, now func() time.Time) *Relay {
	if now == nil {
		now = time.Now
	}
	r := &Relay{
		provider: provider,
		tracker:  tracker,
		cfg:      cfg,
		now:      now,
	}
	r.history = append(r.history, Message{
		ID:        uuid.NewString(),
		Text:      Greeting,
		Sender:    SenderBot,
		Timestamp: now(),
	})
	return r
}

// Ask forwards a single question to the model and returns the reply
// text. It does not touch the transcript or the tracker, so it is safe
// to call off the UI loop.
//
// An empty or malformed model reply degrades to a canned apology rather
// than an error; only transport-level failures surface as errors.
func (r *Relay) Ask(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: systemPreamble,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	switch {
	case err == nil:
		return resp.Text, nil
	case isEmptyReply(err):
		return apologyReply, nil
	default:
		return "", fmt.Errorf("chat request failed: %w", err)
	}
}

// Send forwards the learner's question and appends both sides of the
// exchange to the transcript. A blank question is a no-op. On a
// transport failure the question stays in the transcript unanswered.
func (r *Relay) Send(ctx context.Context, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	r.history = append(r.history, Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: r.now(),
	})
	if r.tracker != nil {
		r.tracker.RecordChatQuestion()
	}

	replyText, err := r.Ask(ctx, text)
	if err != nil {
		return nil, err
	}

	reply := Message{
		ID:        uuid.NewString(),
		Text:      replyText,
		Sender:    SenderBot,
		Timestamp: r.now(),
	}
	r.history = append(r.history, reply)
	if r.tracker != nil {
		r.tracker.RecordChatReply()
	}
	return &reply, nil
}

// History returns a copy of the transcript, oldest first.
func (r *Relay) History() []Message {
	out := make([]Message, len(r.history))
	copy(out, r.history)
	return out
}

// isEmptyReply reports whether the error means the model answered but
// produced no usable text.
func isEmptyReply(err error) bool {
	var invResp *llm.ErrInvalidResponse
	return errors.As(err, &invResp)
}
