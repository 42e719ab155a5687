package booking

import (
	"context"

	"azura/models"
	"azura/utils"

	"go.uber.org/zap"
)

// CancelBooking transitions a confirmed booking owned by userID to
// cancelled. The status-guarded update makes re-cancellation a no-op: the
// first recorded reason wins and no second notification is emitted. A
// booking owned by someone else reports not-found, never a permission error.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID, reason string) models.BookingResult {
	logger := utils.GetLogger()

	cancelled, err := s.Repo.CancelOwned(ctx, bookingID, userID, reason)
	if err != nil {
		logger.Error("cancelBooking: update failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return failure(CodePersistenceError,
			"L'annulation n'a pas pu être enregistrée. Réessayez dans quelques instants.")
	}

	if cancelled == nil {
		// No confirmed booking matched: either it doesn't exist for this
		// user, or it is already cancelled (idempotent no-op).
		existing, err := s.Repo.GetByIDForUser(ctx, bookingID, userID)
		if err != nil {
			logger.Error("cancelBooking: lookup after no-match failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			return failure(CodePersistenceError,
				"L'annulation n'a pas pu être enregistrée. Réessayez dans quelques instants.")
		}
		if existing != nil && existing.Status == models.StatusCancelled {
			return models.BookingResult{
				Success: true,
				Booking: existing,
				Message: ComposeCancellation(existing),
			}
		}
		return failure(CodeNotFound, "Je ne trouve pas cette réservation.")
	}

	if err := s.Notifier.NotifyBookingCancelled(ctx, cancelled); err != nil {
		logger.Error("cancelBooking: cancellation notification write failed",
			zap.String("bookingNumber", cancelled.BookingNumber), zap.Error(err))
	}

	return models.BookingResult{
		Success: true,
		Booking: cancelled,
		Message: ComposeCancellation(cancelled),
	}
}
