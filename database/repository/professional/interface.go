package professionalRepo

import (
	"context"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"
)

const professionalsKey = "statutesync_pros"

// Every newly listed professional starts with these values regardless of input.
const (
	newProfessionalRating = 5.0
	newProfessionalOnline = true
)

type ProfessionalRepository interface {
	List(ctx context.Context) ([]models.LegalProfessional, error)
	GetByID(ctx context.Context, id string) (*models.LegalProfessional, error)
	Add(ctx context.Context, pro models.NewProfessional) (*models.LegalProfessional, error)
	Remove(ctx context.Context, id string) error
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

type snapshotProfessionalRepo struct {
	coll *snapshot.Collection[models.LegalProfessional]
}

// NewProfessionalRepo returns a ProfessionalRepository persisting the marketplace listing.
func NewProfessionalRepo(eng engine.Engine, opts snapshot.Options) ProfessionalRepository {
	return &snapshotProfessionalRepo{
		coll: &snapshot.Collection[models.LegalProfessional]{
			Engine:   eng,
			Key:      professionalsKey,
			Defaults: DefaultProfessionals,
			Policy:   opts.Policy,
			Logger:   opts.Logger,
		},
	}
}
