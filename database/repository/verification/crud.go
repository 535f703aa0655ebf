package verificationRepo

import (
	"context"

	"statutesync/models"

	"github.com/google/uuid"
)

func (r *snapshotVerificationRepo) List(ctx context.Context) ([]models.VerificationResult, error) {
	snap, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Add stamps the verdict with an id and the current time and prepends it to the log.
func (r *snapshotVerificationRepo) Add(ctx context.Context, in models.NewVerification) (*models.VerificationResult, error) {
	flags := in.Verdict.Flags
	if flags == nil {
		flags = []string{}
	}
	result := models.VerificationResult{
		ID:          uuid.New().String(),
		Timestamp:   r.opts.Clock().UnixMilli(),
		FileName:    in.FileName,
		IsAuthentic: in.Verdict.IsAuthentic,
		Confidence:  in.Verdict.Confidence,
		Analysis:    in.Verdict.Analysis,
		Flags:       flags,
	}
	if err := r.coll.Prepend(ctx, result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *snapshotVerificationRepo) Seed(ctx context.Context) (bool, error) {
	return r.coll.Seed(ctx)
}

func (r *snapshotVerificationRepo) Reset(ctx context.Context) error {
	return r.coll.Reset(ctx)
}
