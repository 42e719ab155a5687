package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"azura/models"
	"azura/services/availability"
	"azura/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateBookingNumber produces the human-readable booking number handed to
// the client, e.g. "AZ-9F2C41AB". Uniqueness is enforced by the collection
// index.
func GenerateBookingNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "AZ-" + strings.ToUpper(raw[:8])
}

// CreateBooking runs the reservation write pipeline: availability gate,
// booking insert, best-effort notification and audit writes, fire-and-forget
// voice confirmation. Only the booking insert itself can fail the request.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, input BookingInput) models.BookingResult {
	logger := utils.GetLogger()

	// 1. Availability gate. Nothing is written when the slot is taken.
	avail, err := s.Availability.CheckAvailability(ctx, input.Type, input.Location, input.BookingDate)
	if err != nil {
		if errors.Is(err, availability.ErrServiceUnavailable) {
			return failure(CodeServiceUnavailable,
				"Je n'arrive pas à vérifier les disponibilités pour le moment. Réessayez dans quelques instants.")
		}
		logger.Error("createBooking: availability check failed", zap.Error(err))
		return failure(CodeServiceUnavailable,
			"Je n'arrive pas à vérifier les disponibilités pour le moment. Réessayez dans quelques instants.")
	}
	if !avail.Available {
		message := "Ce créneau n'est plus disponible."
		if len(avail.Alternatives) >= 2 {
			message = fmt.Sprintf("Ce créneau n'est plus disponible. Je peux vous proposer %s ou %s.",
				formatSlotTime(avail.Alternatives[0]), formatSlotTime(avail.Alternatives[1]))
		}
		result := failure(CodeNoAvailability, message)
		result.Alternatives = avail.Alternatives
		return result
	}

	// 2. The booking insert is the one hard failure point.
	booking := &models.Booking{
		ID:              uuid.New().String(),
		BookingNumber:   GenerateBookingNumber(),
		UserID:          userID,
		Type:            input.Type,
		SubType:         input.SubType,
		BookingDate:     input.BookingDate,
		Location:        input.Location,
		GuestsCount:     input.GuestsCount,
		SpecialRequests: input.SpecialRequests,
		Price:           input.Price,
		Status:          models.StatusConfirmed,
		Details:         input.Details,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		logger.Error("createBooking: booking insert failed",
			zap.String("userID", userID), zap.Error(err))
		return failure(CodePersistenceError,
			"La réservation n'a pas pu être enregistrée. Aucun montant n'a été engagé, vous pouvez réessayer.")
	}

	// 3. Notification write is best-effort: a committed reservation is never
	// rolled back over a missing notification, but the inconsistency is
	// logged for follow-up.
	if err := s.Notifier.NotifyBookingConfirmed(ctx, booking); err != nil {
		logger.Error("createBooking: confirmation notification write failed, booking kept",
			zap.String("bookingNumber", booking.BookingNumber), zap.Error(err))
	}

	// 4. Audit record, same tolerance.
	entry := &models.ActivityLog{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: "booking",
		ActivityData: map[string]any{
			"bookingId":     booking.ID,
			"bookingNumber": booking.BookingNumber,
			"type":          booking.Type,
			"location":      booking.Location,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ActivityRepo.Append(ctx, entry); err != nil {
		logger.Error("createBooking: activity log write failed, booking kept",
			zap.String("bookingNumber", booking.BookingNumber), zap.Error(err))
	}

	// 5. Voice confirmation is fire-and-forget: enqueue only, never await,
	// never surface.
	if err := s.Voice.DispatchConfirmation(*booking); err != nil {
		logger.Error("createBooking: voice confirmation dispatch failed",
			zap.String("bookingNumber", booking.BookingNumber), zap.Error(err))
	}

	return models.BookingResult{
		Success: true,
		Booking: booking,
		Message: ComposeConfirmation(booking),
	}
}
