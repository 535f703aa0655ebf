package repository

import (
	"context"
	"errors"
	"fmt"

	"statutesync/database/engine"
	bookingRepo "statutesync/database/repository/booking"
	documentRepo "statutesync/database/repository/document"
	professionalRepo "statutesync/database/repository/professional"
	sessionRepo "statutesync/database/repository/session"
	"statutesync/database/repository/snapshot"
	verificationRepo "statutesync/database/repository/verification"
	"statutesync/models"

	"go.uber.org/zap"
)

// Re-export the repository interfaces.
type DocumentRepository = documentRepo.DocumentRepository
type ProfessionalRepository = professionalRepo.ProfessionalRepository
type VerificationRepository = verificationRepo.VerificationRepository
type BookingRepository = bookingRepo.BookingRepository
type SessionRepository = sessionRepo.SessionRepository

type Options = snapshot.Options

// Re-export the storage errors so callers need not import snapshot.
var (
	ErrNotFound       = snapshot.ErrNotFound
	ErrConflict       = snapshot.ErrConflict
	ErrStorageCorrupt = snapshot.ErrStorageCorrupt
)

var ErrUnknownFamily = errors.New("unknown record family")

// Store is the single point of access to all persisted application state.
type Store struct {
	Documents     DocumentRepository
	Professionals ProfessionalRepository
	Verifications VerificationRepository
	Bookings      BookingRepository
	Session       SessionRepository

	logger *zap.Logger
}

// NewStore builds every family repository over the same engine.
func NewStore(eng engine.Engine, opts Options, issuer sessionRepo.TokenIssuer) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		Documents:     documentRepo.NewDocumentRepo(eng, opts),
		Professionals: professionalRepo.NewProfessionalRepo(eng, opts),
		Verifications: verificationRepo.NewVerificationRepo(eng, opts),
		Bookings:      bookingRepo.NewBookingRepo(eng, opts),
		Session:       sessionRepo.NewSessionRepo(eng, opts, issuer),
		logger:        logger,
	}
}

type seeder interface {
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

func (s *Store) families() map[models.Family]seeder {
	return map[models.Family]seeder{
		models.FamilyDocuments:     s.Documents,
		models.FamilyProfessionals: s.Professionals,
		models.FamilyVerifications: s.Verifications,
		models.FamilyBookings:      s.Bookings,
	}
}

// Seed writes the default snapshot of every family that has never been written.
// It is meant to run once at process start.
func (s *Store) Seed(ctx context.Context) error {
	for family, repo := range s.families() {
		wrote, err := repo.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", family, err)
		}
		if wrote {
			s.logger.Info("Seeded record family", zap.String("family", string(family)))
		}
	}
	return nil
}

// Reset restores one family to its default snapshot.
func (s *Store) Reset(ctx context.Context, family models.Family) error {
	repo, ok := s.families()[family]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return repo.Reset(ctx)
}
