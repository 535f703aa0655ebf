package professionalRepo

import "statutesync/models"

// DefaultProfessionals is the marketplace listing a fresh store is seeded with.
func DefaultProfessionals() []models.LegalProfessional {
	return []models.LegalProfessional{
		{
			ID:         "p1",
			Name:       "Sarah Jenkins",
			Specialty:  "Criminal Law & Forensics",
			Rating:     4.9,
			Experience: "12 yrs",
			Avatar:     "https://picsum.photos/seed/p1/200",
			Online:     true,
			Bio:        "Expert in forensic analysis and digital crime detection.",
			Education:  []string{"Harvard Law", "MSc Cybersecurity"},
			Languages:  []string{"English", "French"},
		},
		{
			ID:         "p2",
			Name:       "Dr. Marcus Thorne",
			Specialty:  "Digital Fraud Specialist",
			Rating:     4.8,
			Experience: "15 yrs",
			Avatar:     "https://picsum.photos/seed/p2/200",
			Online:     false,
			Bio:        "Pioneering researcher in AI fraud prevention.",
			Education:  []string{"Oxford University"},
			Languages:  []string{"English", "German"},
		},
	}
}
