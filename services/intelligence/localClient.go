package ai

import (
	"context"
	"fmt"
	"strings"

	"statutesync/models"
)

const localDisclaimer = "Disclaimer: I am an AI assistant and this is not professional legal advice."

// LocalClient answers without a model. Verdicts depend only on the payload size and MIME type.
type LocalClient struct{}

func NewLocalClient() *LocalClient { return &LocalClient{} }

func (LocalClient) Name() string { return "local" }

func (LocalClient) Verify(ctx context.Context, payload []byte, mimeType, _ string) (*models.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	flags := []string{}
	if len(payload) == 0 {
		flags = append(flags, "Empty file")
	}
	if !SupportedMIME(mimeType) {
		flags = append(flags, fmt.Sprintf("Unsupported file type %q", mimeType))
	}

	if len(flags) > 0 {
		return &models.Verdict{
			IsAuthentic: false,
			Confidence:  0.2,
			Analysis:    "The file could not be analyzed: " + strings.Join(flags, "; ") + ".",
			Flags:       flags,
		}, nil
	}
	return &models.Verdict{
		IsAuthentic: true,
		Confidence:  0.85,
		Analysis:    fmt.Sprintf("No structural anomalies found in %d bytes of %s content.", len(payload), mimeType),
		Flags:       flags,
	}, nil
}

func (LocalClient) Advise(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}
	return fmt.Sprintf("Here is a general overview regarding %q. Review the relevant statutes and any contract terms that apply, and consider consulting a licensed professional.\n\n%s",
		query, localDisclaimer), nil
}
