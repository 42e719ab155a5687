package booking

import (
	"context"
	"testing"
	"time"

	"azura/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(repo *fakeBookingRepo, userID string) *models.Booking {
	b := &models.Booking{
		ID:            "bkg-1",
		BookingNumber: "AZ-12345678",
		UserID:        userID,
		Type:          models.TypeRestaurant,
		BookingDate:   time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC),
		Location:      "Marbella",
		GuestsCount:   2,
		Status:        models.StatusConfirmed,
	}
	repo.bookings[b.ID] = b
	return b
}

func TestCancelBooking_Success(t *testing.T) {
	svc, repo, _, _, notifier, _ := newTestService()
	seedBooking(repo, "user-1")

	result := svc.CancelBooking(context.Background(), "bkg-1", "user-1", "changement de programme")

	require.True(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.Equal(t, models.StatusCancelled, result.Booking.Status)
	assert.Contains(t, result.Message, "AZ-12345678")
	assert.Equal(t, models.StatusCancelled, repo.bookings["bkg-1"].Status)
	assert.Equal(t, "changement de programme", repo.bookings["bkg-1"].Details["cancellation_reason"])
	require.Len(t, notifier.cancelled, 1)
}

func TestCancelBooking_WrongOwnerReportsNotFound(t *testing.T) {
	svc, repo, _, _, notifier, _ := newTestService()
	seedBooking(repo, "alice")

	result := svc.CancelBooking(context.Background(), "bkg-1", "bob", "")

	assert.False(t, result.Success)
	assert.Equal(t, CodeNotFound, result.Error)
	// The other user's booking is untouched.
	assert.Equal(t, models.StatusConfirmed, repo.bookings["bkg-1"].Status)
	assert.Empty(t, notifier.cancelled)
}

func TestCancelBooking_UnknownID(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	result := svc.CancelBooking(context.Background(), "nope", "user-1", "")

	assert.False(t, result.Success)
	assert.Equal(t, CodeNotFound, result.Error)
}

func TestCancelBooking_RepeatCancelIsIdempotent(t *testing.T) {
	svc, repo, _, _, notifier, _ := newTestService()
	seedBooking(repo, "user-1")

	first := svc.CancelBooking(context.Background(), "bkg-1", "user-1", "première raison")
	second := svc.CancelBooking(context.Background(), "bkg-1", "user-1", "autre raison")

	require.True(t, first.Success)
	require.True(t, second.Success)
	// The first recorded reason wins and no second notification goes out.
	assert.Equal(t, "première raison", repo.bookings["bkg-1"].Details["cancellation_reason"])
	assert.Len(t, notifier.cancelled, 1)
}
