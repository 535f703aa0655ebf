package library

import (
	"context"
	"strings"

	"statutesync/models"
)

const (
	defaultCategory    = "Corporate"
	defaultDownloadURL = "#"
)

// Search returns the documents whose title or category contains query, ignoring case.
// An empty query returns the whole library.
func (s *DefaultLibraryService) Search(ctx context.Context, query string) ([]models.LegalDocument, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return docs, nil
	}

	filtered := make([]models.LegalDocument, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Category), q) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *DefaultLibraryService) GetDocument(ctx context.Context, id string) (*models.LegalDocument, error) {
	return s.Repo.GetByID(ctx, id)
}

// AddDocument fills the form defaults for omitted fields and stores the document.
func (s *DefaultLibraryService) AddDocument(ctx context.Context, doc models.NewDocument) (*models.LegalDocument, error) {
	if doc.Category == "" {
		doc.Category = defaultCategory
	}
	if doc.Format == "" {
		doc.Format = models.FormatPDF
	}
	if doc.DownloadURL == "" {
		doc.DownloadURL = defaultDownloadURL
	}
	return s.Repo.Add(ctx, doc)
}

func (s *DefaultLibraryService) RemoveDocument(ctx context.Context, id string) error {
	return s.Repo.Remove(ctx, id)
}
