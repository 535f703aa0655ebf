package professionalRepo

import (
	"context"

	"statutesync/models"

	"github.com/google/uuid"
)

func (r *snapshotProfessionalRepo) List(ctx context.Context) ([]models.LegalProfessional, error) {
	snap, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

func (r *snapshotProfessionalRepo) GetByID(ctx context.Context, id string) (*models.LegalProfessional, error) {
	pro, err := r.coll.Find(ctx, func(p models.LegalProfessional) bool { return p.ID == id })
	if err != nil {
		return nil, err
	}
	return &pro, nil
}

// Add lists a new professional with a fresh id, a 5.0 rating and online status.
func (r *snapshotProfessionalRepo) Add(ctx context.Context, in models.NewProfessional) (*models.LegalProfessional, error) {
	pro := models.LegalProfessional{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Specialty:   in.Specialty,
		Rating:      newProfessionalRating,
		Experience:  in.Experience,
		Avatar:      in.Avatar,
		Online:      newProfessionalOnline,
		Bio:         in.Bio,
		Education:   in.Education,
		CasesSolved: in.CasesSolved,
		Languages:   in.Languages,
	}
	if err := r.coll.Prepend(ctx, pro); err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *snapshotProfessionalRepo) Remove(ctx context.Context, id string) error {
	return r.coll.RemoveWhere(ctx, func(p models.LegalProfessional) bool { return p.ID == id })
}

func (r *snapshotProfessionalRepo) Seed(ctx context.Context) (bool, error) {
	return r.coll.Seed(ctx)
}

func (r *snapshotProfessionalRepo) Reset(ctx context.Context) error {
	return r.coll.Reset(ctx)
}
