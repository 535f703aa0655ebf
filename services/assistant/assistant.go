package assistant

import (
	"context"
	"fmt"
	"strings"

	"statutesync/models"

	"go.uber.org/zap"
)

// Chat appends message to the session transcript and answers it. Advisor failures become ErrorReply
// and never reach the caller.
func (s *DefaultAssistantService) Chat(ctx context.Context, sessionKey, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	messages, err := s.Transcript(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	messages = append(messages, models.ChatMessage{Role: models.ChatRoleUser, Content: message})

	reply := s.advise(ctx, message)
	messages = append(messages, models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply})

	if err := s.Store.Set(ctx, sessionKey, &models.ChatContext{Messages: messages}); err != nil {
		return nil, fmt.Errorf("save transcript: %w", err)
	}
	return &ChatReply{Reply: reply, Messages: messages}, nil
}

func (s *DefaultAssistantService) advise(ctx context.Context, message string) string {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	reply, err := s.Advisor.Advise(ctx, message)
	if err != nil {
		s.logger().Error("Advisor failed", zap.Error(err))
		return ErrorReply
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply
	}
	return reply
}

// Transcript returns the stored conversation, opening with the greeting.
func (s *DefaultAssistantService) Transcript(ctx context.Context, sessionKey string) ([]models.ChatMessage, error) {
	chat, err := s.Store.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	if len(chat.Messages) == 0 {
		return []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: Greeting}}, nil
	}
	return chat.Messages, nil
}

func (s *DefaultAssistantService) Clear(ctx context.Context, sessionKey string) error {
	return s.Store.Clear(ctx, sessionKey)
}

func (s *DefaultAssistantService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
