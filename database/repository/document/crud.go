package documentRepo

import (
	"context"

	"statutesync/models"

	"github.com/google/uuid"
)

// List returns the library snapshot.
func (r *snapshotDocumentRepo) List(ctx context.Context) ([]models.LegalDocument, error) {
	snap, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// GetByID returns one document or snapshot.ErrNotFound.
func (r *snapshotDocumentRepo) GetByID(ctx context.Context, id string) (*models.LegalDocument, error) {
	doc, err := r.coll.Find(ctx, func(d models.LegalDocument) bool { return d.ID == id })
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Add assigns a fresh id and puts the document at the head of the library.
func (r *snapshotDocumentRepo) Add(ctx context.Context, in models.NewDocument) (*models.LegalDocument, error) {
	doc := models.LegalDocument{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Format:      in.Format,
		DownloadURL: in.DownloadURL,
	}
	if err := r.coll.Prepend(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Remove drops the document with the given id. Unknown ids are ignored.
func (r *snapshotDocumentRepo) Remove(ctx context.Context, id string) error {
	return r.coll.RemoveWhere(ctx, func(d models.LegalDocument) bool { return d.ID == id })
}

func (r *snapshotDocumentRepo) Seed(ctx context.Context) (bool, error) {
	return r.coll.Seed(ctx)
}

func (r *snapshotDocumentRepo) Reset(ctx context.Context) error {
	return r.coll.Reset(ctx)
}
