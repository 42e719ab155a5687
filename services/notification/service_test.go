package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"azura/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created   []*models.Notification
	createErr error
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:            "bkg-1",
		BookingNumber: "AZ-9F2C41AB",
		UserID:        "user-1",
		Type:          models.TypeRestaurant,
		BookingDate:   time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC),
		Location:      "Marbella",
	}
}

func TestNotifyBookingConfirmed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.NotifyBookingConfirmed(context.Background(), testBooking())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, models.NotificationBookingConfirmation, n.Type)
	assert.Equal(t, "user-1", n.UserID)
	assert.Contains(t, n.Message, "AZ-9F2C41AB")
	assert.Equal(t, "/bookings/bkg-1", n.Link)
}

func TestNotifyBookingCancelled(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.NotifyBookingCancelled(context.Background(), testBooking())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, models.NotificationBookingCancellation, n.Type)
	assert.Contains(t, n.Message, "14/06/2025")
}

func TestNotify_PersistFailureSurfaces(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("write failed")}
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.NotifyBookingConfirmed(context.Background(), testBooking())

	assert.Error(t, err)
}
