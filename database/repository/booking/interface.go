package bookingRepo

import (
	"context"

	"azura/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// CancelOwned flips a confirmed booking owned by userID to cancelled,
	// recording cancellation metadata in the details map. It returns the
	// updated booking, or nil when no confirmed booking matched.
	CancelOwned(ctx context.Context, id, userID, reason string) (*models.Booking, error)
}
