package assistant

import (
	"context"
	"errors"
	"time"

	"statutesync/models"
	ai "statutesync/services/intelligence"

	"go.uber.org/zap"
)

const (
	Greeting   = "Hello! I am Lexi, your AI legal assistant. How can I help you navigate legal documents or terms today?"
	ErrorReply = "I encountered an error processing your request. Please try again."
	EmptyReply = "I'm sorry, I couldn't process that legal query."
)

var ErrEmptyMessage = errors.New("message must not be empty")

type AssistantService interface {
	Chat(ctx context.Context, sessionKey, message string) (*ChatReply, error)
	Transcript(ctx context.Context, sessionKey string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, sessionKey string) error
}

// ChatReply is the assistant's answer together with the updated transcript.
type ChatReply struct {
	Reply    string               `json:"reply"`
	Messages []models.ChatMessage `json:"messages"`
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Advisor ai.Advisor
	Store   ai.ContextStore
	Timeout time.Duration
	Logger  *zap.Logger
}
