package booking

import (
	"context"

	"azura/models"
)

// ProcessBookingFromChat is the single entry point the chat layer calls. It
// chains intent extraction, the availability gate and the reservation write,
// and reports the uniform BookingResult shape back.
func (s *DefaultBookingService) ProcessBookingFromChat(ctx context.Context, userID, message string, chatContext map[string]any) models.BookingResult {
	extracted := s.Intent.ExtractIntent(message)

	if !extracted.IsBookingRequest || extracted.Confidence < MinBookingConfidence {
		return models.BookingResult{
			Success:       false,
			NeedsMoreInfo: true,
			Error:         CodeInsufficientConfidence,
			Message:       clarifyingQuestion(),
		}
	}

	details := map[string]any{
		"source":           "chat",
		"original_message": message,
	}
	for k, v := range chatContext {
		details[k] = v
	}

	result := s.CreateBooking(ctx, userID, BookingInput{
		Type:        extracted.Type,
		SubType:     extracted.SubType,
		Location:    extracted.Location,
		BookingDate: extracted.BookingDate,
		GuestsCount: extracted.GuestsCount,
		Details:     details,
	})
	if result.Success {
		result.VoiceConfirmation = true
	}
	return result
}

func clarifyingQuestion() string {
	return "Je peux réserver pour vous un restaurant, un yacht, une villa, un spa ou des places pour un événement. " +
		"Que souhaitez-vous réserver, pour quelle date et pour combien de personnes ?"
}
