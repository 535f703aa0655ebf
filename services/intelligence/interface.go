package ai

import (
	"context"
	"errors"
	"strings"

	"statutesync/models"
)

// ErrUnavailable wraps every failure of the AI backend.
var ErrUnavailable = errors.New("ai backend unavailable")

// Verifier judges whether an uploaded document or media file is authentic.
type Verifier interface {
	Verify(ctx context.Context, payload []byte, mimeType, instruction string) (*models.Verdict, error)
}

// Advisor answers a free-text legal question.
type Advisor interface {
	Advise(ctx context.Context, query string) (string, error)
}

// AIService is the full AI collaborator.
type AIService interface {
	Verifier
	Advisor
	Name() string
}

// SupportedMIME reports whether a file of this type can be sent for verification.
func SupportedMIME(mimeType string) bool {
	base, _, _ := strings.Cut(mimeType, ";")
	base = strings.TrimSpace(strings.ToLower(base))
	return base == "application/pdf" ||
		strings.HasPrefix(base, "image/") ||
		strings.HasPrefix(base, "video/")
}

func clampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
