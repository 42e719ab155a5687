package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "azura/database/repository/notification"
	"azura/models"
	"azura/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService persists booking notifications and, when an FCM client
// is configured, pushes them to the user's device. The notification row and
// the booking form one logical unit of work: callers write the booking
// first, then call this service before returning.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
	FCM  *messaging.Client
	// FCMToken resolves the push token for a user. Optional, like FCM.
	FCMToken func(ctx context.Context, userID string) (string, error)
}

func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: booking.UserID,
		Type:   models.NotificationBookingConfirmation,
		Title:  "Réservation confirmée",
		Message: fmt.Sprintf("Votre réservation %s (%s, %s) est confirmée.",
			booking.BookingNumber, booking.Type, booking.Location),
		Link:      "/bookings/" + booking.ID,
		CreatedAt: time.Now().UTC(),
	}
	return s.deliver(ctx, n)
}

func (s *DefaultNotificationService) NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: booking.UserID,
		Type:   models.NotificationBookingCancellation,
		Title:  "Réservation annulée",
		Message: fmt.Sprintf("Votre réservation %s du %s a été annulée.",
			booking.BookingNumber, booking.BookingDate.Format("02/01/2006")),
		Link:      "/bookings/" + booking.ID,
		CreatedAt: time.Now().UTC(),
	}
	return s.deliver(ctx, n)
}

// deliver writes the notification row, then attempts the push. The row is
// the contract; push delivery is opportunistic and only logged on failure.
func (s *DefaultNotificationService) deliver(ctx context.Context, n *models.Notification) error {
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to persist %s notification: %w", n.Type, err)
	}

	s.push(ctx, n)
	return nil
}

func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) {
	if s.FCM == nil || s.FCMToken == nil {
		return
	}
	logger := utils.GetLogger()

	token, err := s.FCMToken(ctx, n.UserID)
	if err != nil || token == "" {
		logger.Debug("notification: no push token for user", zap.String("userID", n.UserID))
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type": n.Type,
			"link": n.Link,
		},
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		logger.Warn("notification: push delivery failed",
			zap.String("userID", n.UserID), zap.Error(err))
	}
}
