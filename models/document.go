package models

// DocumentFormat is the file format of a library template.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "PDF"
	FormatDOCX DocumentFormat = "DOCX"
)

// LegalDocument is a downloadable template in the document library.
type LegalDocument struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Format      DocumentFormat `json:"format"`
	DownloadURL string         `json:"downloadUrl"`
}

// NewDocument carries the caller-supplied fields of a document; the id is assigned on insert.
type NewDocument struct {
	Title       string         `json:"title" binding:"required"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Format      DocumentFormat `json:"format" binding:"omitempty,oneof=PDF DOCX"`
	DownloadURL string         `json:"downloadUrl"`
}
