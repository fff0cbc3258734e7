package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinna/studymate/internal/llm"
)

type countingTracker struct {
	questions int
	replies   int
}

func (c *countingTracker) RecordChatQuestion() { c.questions++ }
func (c *countingTracker) RecordChatReply()    { c.replies++ }

func fixedClock() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestRelayStartsWithGreeting(t *testing.T) {
	r := NewRelay(llm.NewMockProvider(), nil, DefaultRelayConfig(), fixedClock)

	history := r.History()
	require.Len(t, history, 1)
	assert.Equal(t, SenderBot, history[0].Sender)
	assert.Equal(t, Greeting, history[0].Text)
}

func TestRelaySendSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "A primary key uniquely identifies a row."})
	tracker := &countingTracker{}
	r := NewRelay(mock, tracker, DefaultRelayConfig(), fixedClock)

	reply, err := r.Send(context.Background(), "What is a primary key?")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, SenderBot, reply.Sender)
	assert.Equal(t, "A primary key uniquely identifies a row.", reply.Text)

	history := r.History()
	require.Len(t, history, 3) // greeting, question, reply
	assert.Equal(t, SenderUser, history[1].Sender)
	assert.Equal(t, 1, tracker.questions)
	assert.Equal(t, 1, tracker.replies)

	// The preamble travels as the system prompt, not inline with the question.
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, systemPreamble, mock.Calls[0].System)
	assert.Equal(t, "What is a primary key?", mock.Calls[0].Messages[0].Content)
}

func TestRelayEmptyReplyFallsBackToApology(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("no candidates")}})
	tracker := &countingTracker{}
	r := NewRelay(mock, tracker, DefaultRelayConfig(), fixedClock)

	reply, err := r.Send(context.Background(), "Explain recursion")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, apologyReply, reply.Text)
	assert.Equal(t, 1, tracker.replies, "an apology still counts as an answered question")
}

func TestRelayTransportFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("dial tcp: timeout")}})
	tracker := &countingTracker{}
	r := NewRelay(mock, tracker, DefaultRelayConfig(), fixedClock)

	reply, err := r.Send(context.Background(), "Explain recursion")
	require.Error(t, err)
	assert.Nil(t, reply)

	// The question stays in the transcript but no reply is recorded.
	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, SenderUser, history[1].Sender)
	assert.Equal(t, 1, tracker.questions)
	assert.Equal(t, 0, tracker.replies)
}

func TestRelayBlankQuestionIsNoop(t *testing.T) {
	mock := llm.NewMockProvider()
	tracker := &countingTracker{}
	r := NewRelay(mock, tracker, DefaultRelayConfig(), fixedClock)

	reply, err := r.Send(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, reply)
	assert.Equal(t, 0, mock.CallCount())
	assert.Equal(t, 0, tracker.questions)
	assert.Len(t, r.History(), 1)
}

func TestRelayNilTracker(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	r := NewRelay(mock, nil, DefaultRelayConfig(), fixedClock)

	_, err := r.Send(context.Background(), "hello")
	require.NoError(t, err)
}
