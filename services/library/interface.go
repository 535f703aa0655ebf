package library

import (
	"context"

	documentRepo "statutesync/database/repository/document"
	"statutesync/models"
)

type LibraryService interface {
	Search(ctx context.Context, query string) ([]models.LegalDocument, error)
	GetDocument(ctx context.Context, id string) (*models.LegalDocument, error)
	AddDocument(ctx context.Context, doc models.NewDocument) (*models.LegalDocument, error)
	RemoveDocument(ctx context.Context, id string) error
}

// DefaultLibraryService is the production implementation.
type DefaultLibraryService struct {
	Repo documentRepo.DocumentRepository
}
