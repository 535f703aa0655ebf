package marketplace

import (
	"context"

	bookingRepo "statutesync/database/repository/booking"
	professionalRepo "statutesync/database/repository/professional"
	"statutesync/models"
)

type MarketplaceService interface {
	ListProfessionals(ctx context.Context, query string) ([]models.LegalProfessional, error)
	GetProfessional(ctx context.Context, id string) (*models.LegalProfessional, error)
	AddProfessional(ctx context.Context, pro models.NewProfessional) (*models.LegalProfessional, error)
	RemoveProfessional(ctx context.Context, id string) error

	BookProfessional(ctx context.Context, proID string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// DefaultMarketplaceService is the production implementation.
type DefaultMarketplaceService struct {
	Professionals professionalRepo.ProfessionalRepository
	Bookings      bookingRepo.BookingRepository
}
