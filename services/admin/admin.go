package admin

import (
	"context"

	"statutesync/models"
)

// Stats counts every record family for the dashboard.
func (a *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	docs, err := a.Store.Documents.List(ctx)
	if err != nil {
		return nil, err
	}
	pros, err := a.Store.Professionals.List(ctx)
	if err != nil {
		return nil, err
	}
	verifications, err := a.Store.Verifications.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := a.Store.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.AdminStats{
		Documents:     len(docs),
		Professionals: len(pros),
		Verifications: len(verifications),
		Bookings:      len(bookings),
	}
	for _, p := range pros {
		if p.Online {
			stats.OnlineProfessionals++
		}
	}
	for _, v := range verifications {
		if !v.IsAuthentic || len(v.Flags) > 0 {
			stats.FlaggedVerifications++
		}
	}
	for _, b := range bookings {
		if b.Status == models.BookingPending {
			stats.PendingBookings++
		}
	}
	return stats, nil
}

// History returns the verification log and bookings, newest first.
func (a *DefaultAdminService) History(ctx context.Context) (*models.History, error) {
	verifications, err := a.Store.Verifications.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := a.Store.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.History{Verifications: verifications, Bookings: bookings}, nil
}

func (a *DefaultAdminService) ResetFamily(ctx context.Context, family models.Family) error {
	return a.Store.Reset(ctx, family)
}
