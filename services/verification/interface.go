package verification

import (
	"context"
	"errors"
	"time"

	verificationRepo "statutesync/database/repository/verification"
	"statutesync/models"
	ai "statutesync/services/intelligence"

	"go.uber.org/zap"
)

// Instruction accompanies every upload sent to the verifier.
const Instruction = "Analyze for authenticity."

var (
	ErrEmptyFile        = errors.New("uploaded file is empty")
	ErrUnsupportedMedia = errors.New("unsupported file type")
)

type VerificationService interface {
	VerifyFile(ctx context.Context, upload Upload) (*models.VerificationResult, error)
	ListResults(ctx context.Context) ([]models.VerificationResult, error)
}

// Upload is a file received for verification.
type Upload struct {
	FileName string
	MIMEType string
	Data     []byte
}

// DefaultVerificationService is the production implementation.
type DefaultVerificationService struct {
	Repo     verificationRepo.VerificationRepository
	Verifier ai.Verifier
	Timeout  time.Duration
	Logger   *zap.Logger
}
