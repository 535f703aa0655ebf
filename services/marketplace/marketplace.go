package marketplace

import (
	"context"
	"fmt"
	"strings"

	"statutesync/models"
)

// Defaults of the onboarding form for fields the admin leaves blank.
const (
	defaultSpecialty  = "Corporate Law"
	defaultExperience = "5 yrs"
	defaultLanguage   = "English"
	avatarBase        = "https://i.pravatar.cc/150?u="
)

// ListProfessionals filters by name or specialty, ignoring case. An empty query lists everyone.
func (s *DefaultMarketplaceService) ListProfessionals(ctx context.Context, query string) ([]models.LegalProfessional, error) {
	pros, err := s.Professionals.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return pros, nil
	}

	filtered := make([]models.LegalProfessional, 0, len(pros))
	for _, p := range pros {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Specialty), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *DefaultMarketplaceService) GetProfessional(ctx context.Context, id string) (*models.LegalProfessional, error) {
	return s.Professionals.GetByID(ctx, id)
}

func (s *DefaultMarketplaceService) AddProfessional(ctx context.Context, pro models.NewProfessional) (*models.LegalProfessional, error) {
	if pro.Specialty == "" {
		pro.Specialty = defaultSpecialty
	}
	if pro.Experience == "" {
		pro.Experience = defaultExperience
	}
	if pro.Avatar == "" {
		pro.Avatar = avatarBase + strings.ReplaceAll(strings.ToLower(pro.Name), " ", "-")
	}
	if len(pro.Languages) == 0 {
		pro.Languages = []string{defaultLanguage}
	}
	return s.Professionals.Add(ctx, pro)
}

func (s *DefaultMarketplaceService) RemoveProfessional(ctx context.Context, id string) error {
	return s.Professionals.Remove(ctx, id)
}

// BookProfessional creates a PENDING booking carrying the professional's current id and name.
func (s *DefaultMarketplaceService) BookProfessional(ctx context.Context, proID string) (*models.Booking, error) {
	pro, err := s.Professionals.GetByID(ctx, proID)
	if err != nil {
		return nil, fmt.Errorf("book professional %s: %w", proID, err)
	}
	return s.Bookings.Create(ctx, pro.ID, pro.Name)
}

func (s *DefaultMarketplaceService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.List(ctx)
}
