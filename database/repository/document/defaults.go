package documentRepo

import "statutesync/models"

// DefaultDocuments is the library a fresh store is seeded with.
func DefaultDocuments() []models.LegalDocument {
	return []models.LegalDocument{
		{ID: "1", Title: "Standard NDA", Category: "Corporate", Description: "Mutual non-disclosure agreement for business partnerships.", Format: models.FormatPDF, DownloadURL: "#"},
		{ID: "2", Title: "Employment Contract", Category: "HR", Description: "Full-time employment agreement with standard benefits clauses.", Format: models.FormatDOCX, DownloadURL: "#"},
		{ID: "3", Title: "Service Agreement", Category: "Commercial", Description: "Terms of service for freelance or consulting work.", Format: models.FormatPDF, DownloadURL: "#"},
	}
}
