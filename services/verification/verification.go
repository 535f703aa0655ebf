package verification

import (
	"context"
	"fmt"

	"statutesync/models"
	ai "statutesync/services/intelligence"

	"go.uber.org/zap"
)

// VerifyFile asks the verifier for a verdict and records it. Nothing is recorded when the verifier fails.
func (s *DefaultVerificationService) VerifyFile(ctx context.Context, upload Upload) (*models.VerificationResult, error) {
	if len(upload.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if !ai.SupportedMIME(upload.MIMEType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, upload.MIMEType)
	}

	// The timeout bounds the verifier only; the verdict is saved under the caller's context.
	aiCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	verdict, err := s.Verifier.Verify(aiCtx, upload.Data, upload.MIMEType, Instruction)
	if err != nil {
		s.logger().Error("Verification failed",
			zap.String("file", upload.FileName), zap.String("mime", upload.MIMEType), zap.Error(err))
		return nil, fmt.Errorf("verify %s: %w", upload.FileName, err)
	}

	result, err := s.Repo.Add(ctx, models.NewVerification{FileName: upload.FileName, Verdict: *verdict})
	if err != nil {
		return nil, fmt.Errorf("record verification: %w", err)
	}
	s.logger().Info("Verification recorded",
		zap.String("id", result.ID), zap.Bool("authentic", result.IsAuthentic), zap.Float64("confidence", result.Confidence))
	return result, nil
}

func (s *DefaultVerificationService) ListResults(ctx context.Context) ([]models.VerificationResult, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultVerificationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
