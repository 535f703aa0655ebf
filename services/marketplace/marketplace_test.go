package marketplace

import (
	"context"
	"testing"

	"statutesync/database/engine"
	bookingRepo "statutesync/database/repository/booking"
	professionalRepo "statutesync/database/repository/professional"
	"statutesync/database/repository/snapshot"
	"statutesync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarketplace() *DefaultMarketplaceService {
	eng := engine.NewMemory()
	return &DefaultMarketplaceService{
		Professionals: professionalRepo.NewProfessionalRepo(eng, snapshot.Options{}),
		Bookings:      bookingRepo.NewBookingRepo(eng, snapshot.Options{}),
	}
}

func TestBookProfessionalCopiesNameAndID(t *testing.T) {
	ctx := context.Background()
	svc := newMarketplace()

	booking, err := svc.BookProfessional(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", booking.ProID)
	assert.Equal(t, "Dr. Marcus Thorne", booking.ProName)
	assert.Equal(t, models.BookingPending, booking.Status)

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Booking{*booking}, bookings)
}

func TestBookUnknownProfessional(t *testing.T) {
	ctx := context.Background()
	svc := newMarketplace()

	_, err := svc.BookProfessional(ctx, "ghost")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestAddProfessionalDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newMarketplace()

	pro, err := svc.AddProfessional(ctx, models.NewProfessional{Name: "Jane Roe"})
	require.NoError(t, err)
	assert.Equal(t, "Corporate Law", pro.Specialty)
	assert.Equal(t, "5 yrs", pro.Experience)
	assert.Equal(t, []string{"English"}, pro.Languages)
	assert.Equal(t, 5.0, pro.Rating)
	assert.True(t, pro.Online)

	found, err := svc.ListProfessionals(ctx, "roe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, pro.ID, found[0].ID)

	all, err := svc.ListProfessionals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, pro.ID, all[0].ID)
}
