package models

// LegalProfessional is a bookable lawyer listed in the marketplace.
type LegalProfessional struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialty   string   `json:"specialty"`
	Rating      float64  `json:"rating"`
	Experience  string   `json:"experience"` // free text, e.g. "12 yrs"
	Avatar      string   `json:"avatar"`
	Online      bool     `json:"online"`
	Bio         string   `json:"bio,omitempty"`
	Education   []string `json:"education,omitempty"`
	CasesSolved int      `json:"casesSolved,omitempty"`
	Languages   []string `json:"languages,omitempty"`
}

// NewProfessional carries the admin-supplied fields of a professional.
// Rating and online status are fixed on insert and cannot be supplied.
type NewProfessional struct {
	Name        string   `json:"name" binding:"required"`
	Specialty   string   `json:"specialty"`
	Experience  string   `json:"experience"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Education   []string `json:"education"`
	CasesSolved int      `json:"casesSolved"`
	Languages   []string `json:"languages"`
}
