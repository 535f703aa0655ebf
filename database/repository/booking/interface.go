package bookingRepo

import (
	"context"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"
)

const bookingsKey = "statutesync_bookings"

// BookingRepository is append-only; bookings are created PENDING and never transition.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, proID, proName string) (*models.Booking, error)
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

type snapshotBookingRepo struct {
	coll *snapshot.Collection[models.Booking]
	opts snapshot.Options
}

func NewBookingRepo(eng engine.Engine, opts snapshot.Options) BookingRepository {
	return &snapshotBookingRepo{
		coll: &snapshot.Collection[models.Booking]{
			Engine: eng,
			Key:    bookingsKey,
			Policy: opts.Policy,
			Logger: opts.Logger,
		},
		opts: opts,
	}
}
