package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"statutesync/models"
	ai "statutesync/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct {
	reply string
	err   error
}

func (s stubAdvisor) Advise(context.Context, string) (string, error) {
	return s.reply, s.err
}

func newAssistant(advisor ai.Advisor) *DefaultAssistantService {
	return &DefaultAssistantService{
		Advisor: advisor,
		Store:   ai.NewMemoryContextStore(time.Hour),
		Timeout: time.Second,
	}
}

func TestTranscriptStartsWithGreeting(t *testing.T) {
	msgs, err := newAssistant(stubAdvisor{}).Transcript(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: Greeting}}, msgs)
}

func TestChatAppendsTurns(t *testing.T) {
	ctx := context.Background()
	svc := newAssistant(stubAdvisor{reply: "Verbal contracts can be binding."})

	reply, err := svc.Chat(ctx, "a@b.c", "Is a verbal contract binding?")
	require.NoError(t, err)
	assert.Equal(t, "Verbal contracts can be binding.", reply.Reply)
	require.Len(t, reply.Messages, 3)
	assert.Equal(t, models.ChatRoleUser, reply.Messages[1].Role)
	assert.Equal(t, models.ChatRoleAssistant, reply.Messages[2].Role)

	stored, err := svc.Transcript(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, reply.Messages, stored)

	// Other sessions are unaffected.
	other, err := svc.Transcript(ctx, "x@y.z")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestChatFallsBackOnAdvisorError(t *testing.T) {
	reply, err := newAssistant(stubAdvisor{err: errors.New("boom")}).Chat(context.Background(), "k", "hello")
	require.NoError(t, err)
	assert.Equal(t, ErrorReply, reply.Reply)
}

func TestChatEmptyCompletion(t *testing.T) {
	reply, err := newAssistant(stubAdvisor{reply: "  "}).Chat(context.Background(), "k", "hello")
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, reply.Reply)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	_, err := newAssistant(stubAdvisor{}).Chat(context.Background(), "k", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newAssistant(stubAdvisor{reply: "ok"})
	_, err := svc.Chat(ctx, "k", "hello")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "k"))

	msgs, err := svc.Transcript(ctx, "k")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
