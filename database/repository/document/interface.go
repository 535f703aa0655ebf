package documentRepo

import (
	"context"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"
)

const documentsKey = "statutesync_documents"

type DocumentRepository interface {
	List(ctx context.Context) ([]models.LegalDocument, error)
	GetByID(ctx context.Context, id string) (*models.LegalDocument, error)
	Add(ctx context.Context, doc models.NewDocument) (*models.LegalDocument, error)
	Remove(ctx context.Context, id string) error
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

type snapshotDocumentRepo struct {
	coll *snapshot.Collection[models.LegalDocument]
}

// NewDocumentRepo returns a DocumentRepository persisting the library under the documents key.
func NewDocumentRepo(eng engine.Engine, opts snapshot.Options) DocumentRepository {
	return &snapshotDocumentRepo{
		coll: &snapshot.Collection[models.LegalDocument]{
			Engine:   eng,
			Key:      documentsKey,
			Defaults: DefaultDocuments,
			Policy:   opts.Policy,
			Logger:   opts.Logger,
		},
	}
}
