package models

// Family names one persisted record family.
type Family string

const (
	FamilyDocuments     Family = "documents"
	FamilyProfessionals Family = "professionals"
	FamilyVerifications Family = "verifications"
	FamilyBookings      Family = "bookings"
)

// AdminStats summarises the record families for the admin dashboard.
type AdminStats struct {
	Documents            int `json:"documents"`
	Professionals        int `json:"professionals"`
	OnlineProfessionals  int `json:"onlineProfessionals"`
	Verifications        int `json:"verifications"`
	FlaggedVerifications int `json:"flaggedVerifications"`
	Bookings             int `json:"bookings"`
	PendingBookings      int `json:"pendingBookings"`
}

// History groups the activity log shown to the signed-in user.
type History struct {
	Verifications []VerificationResult `json:"verifications"`
	Bookings      []Booking            `json:"bookings"`
}
