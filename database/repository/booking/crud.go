package bookingRepo

import (
	"context"

	"statutesync/models"

	"github.com/google/uuid"
)

func (r *snapshotBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	snap, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Create records a PENDING booking. proID and proName are stored as given.
func (r *snapshotBookingRepo) Create(ctx context.Context, proID, proName string) (*models.Booking, error) {
	booking := models.Booking{
		ID:      uuid.New().String(),
		ProID:   proID,
		ProName: proName,
		Date:    r.opts.Clock().UnixMilli(),
		Status:  models.BookingPending,
	}
	if err := r.coll.Prepend(ctx, booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *snapshotBookingRepo) Seed(ctx context.Context) (bool, error) {
	return r.coll.Seed(ctx)
}

func (r *snapshotBookingRepo) Reset(ctx context.Context) error {
	return r.coll.Reset(ctx)
}
