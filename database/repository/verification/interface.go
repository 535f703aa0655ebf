package verificationRepo

import (
	"context"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"
)

const verificationsKey = "statutesync_verifications"

// VerificationRepository is an append-only log; entries are never updated or removed.
type VerificationRepository interface {
	List(ctx context.Context) ([]models.VerificationResult, error)
	Add(ctx context.Context, v models.NewVerification) (*models.VerificationResult, error)
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

type snapshotVerificationRepo struct {
	coll *snapshot.Collection[models.VerificationResult]
	opts snapshot.Options
}

func NewVerificationRepo(eng engine.Engine, opts snapshot.Options) VerificationRepository {
	return &snapshotVerificationRepo{
		coll: &snapshot.Collection[models.VerificationResult]{
			Engine: eng,
			Key:    verificationsKey,
			Policy: opts.Policy,
			Logger: opts.Logger,
		},
		opts: opts,
	}
}
