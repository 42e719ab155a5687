package booking

import (
	"context"
	"time"

	activityRepo "azura/database/repository/activity"
	bookingRepo "azura/database/repository/booking"
	"azura/models"
	"azura/services/availability"
	"azura/services/intent"
)

// MinBookingConfidence is the gate below which the engine asks a clarifying
// question instead of booking speculatively.
const MinBookingConfidence = 0.7

// BookingInput carries the resolved reservation parameters into the writer.
type BookingInput struct {
	Type            string
	SubType         string
	Location        string
	BookingDate     time.Time
	GuestsCount     int
	SpecialRequests string
	Price           float64
	Details         map[string]any
}

// AvailabilityChecker is the slice of the availability service the writer
// needs. When the slot is taken, implementations are expected to propose two
// alternatives; the writer tolerates fewer.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, bookingType, location string, date time.Time) (availability.Result, error)
}

// Notifier persists and delivers booking notifications.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error
}

// VoiceDispatcher hands a booking to the background voice-confirmation
// pipeline. Dispatch must never block on synthesis.
type VoiceDispatcher interface {
	DispatchConfirmation(booking models.Booking) error
}

// BookingService is the engine surface exposed to the chat layer.
type BookingService interface {
	ProcessBookingFromChat(ctx context.Context, userID, message string, chatContext map[string]any) models.BookingResult
	CreateBooking(ctx context.Context, userID string, input BookingInput) models.BookingResult
	CancelBooking(ctx context.Context, bookingID, userID, reason string) models.BookingResult
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService. All collaborators are
// injected so tests can substitute fakes.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ActivityRepo activityRepo.ActivityRepository
	Availability AvailabilityChecker
	Notifier     Notifier
	Voice        VoiceDispatcher
	Intent       *intent.Extractor
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}
