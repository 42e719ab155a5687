package booking

import (
	"fmt"
	"strings"
	"time"

	"azura/models"
)

// ComposeConfirmation turns a persisted booking into the chat confirmation
// message. Pure formatting: same booking, same string.
func ComposeConfirmation(b *models.Booking) string {
	var sb strings.Builder

	sb.WriteString("✅ Réservation confirmée !\n\n")
	sb.WriteString(fmt.Sprintf("📋 Numéro : %s\n", b.BookingNumber))
	sb.WriteString(fmt.Sprintf("📅 Date : %s à %s\n", formatSlotDate(b.BookingDate), formatSlotTime(b.BookingDate)))
	sb.WriteString(fmt.Sprintf("%s Type : %s\n", typeEmoji(b.Type), typeLabel(b)))
	sb.WriteString(fmt.Sprintf("📍 Lieu : %s\n", b.Location))
	if b.GuestsCount > 0 {
		sb.WriteString(fmt.Sprintf("👥 %d personne(s)\n", b.GuestsCount))
	}
	if b.Price > 0 {
		sb.WriteString(fmt.Sprintf("💶 Prix : %.2f €\n", b.Price))
	}
	sb.WriteString("\nSouhaitez-vous recevoir les détails par WhatsApp ?")

	return sb.String()
}

// ComposeVoiceConfirmation produces the short spoken-style sentence handed to
// the voice synthesizer. No markdown, no emoji; one of four phrasings keyed
// by booking type.
func ComposeVoiceConfirmation(b *models.Booking) string {
	date := formatSlotDate(b.BookingDate)
	hour := formatSlotTime(b.BookingDate)

	switch b.Type {
	case models.TypeRestaurant:
		return fmt.Sprintf(
			"Votre table pour %d personnes est confirmée le %s à %s à %s. Votre numéro de réservation est le %s.",
			b.GuestsCount, date, hour, b.Location, b.BookingNumber)
	case models.TypeEvent:
		return fmt.Sprintf(
			"Vos places sont confirmées pour le %s à %s à %s. Votre numéro de réservation est le %s.",
			date, hour, b.Location, b.BookingNumber)
	case models.TypeService:
		return fmt.Sprintf(
			"Votre prestation est confirmée le %s à %s à %s. Votre numéro de réservation est le %s.",
			date, hour, b.Location, b.BookingNumber)
	default:
		return fmt.Sprintf(
			"Votre réservation est confirmée le %s à %s. Votre numéro de réservation est le %s.",
			date, hour, b.BookingNumber)
	}
}

// ComposeCancellation is the chat message for a cancelled booking.
func ComposeCancellation(b *models.Booking) string {
	return fmt.Sprintf(
		"Votre réservation %s du %s a bien été annulée. N'hésitez pas si vous souhaitez réserver autre chose.",
		b.BookingNumber, formatSlotDate(b.BookingDate))
}

func typeLabel(b *models.Booking) string {
	if b.SubType != "" {
		return fmt.Sprintf("%s (%s)", frenchType(b.Type), b.SubType)
	}
	return frenchType(b.Type)
}

func frenchType(bookingType string) string {
	switch bookingType {
	case models.TypeRestaurant:
		return "restaurant"
	case models.TypeService:
		return "prestation"
	case models.TypeAccommodation:
		return "hébergement"
	case models.TypeEvent:
		return "événement"
	default:
		return bookingType
	}
}

func typeEmoji(bookingType string) string {
	switch bookingType {
	case models.TypeRestaurant:
		return "🍽️"
	case models.TypeService:
		return "🛥️"
	case models.TypeAccommodation:
		return "🏡"
	case models.TypeEvent:
		return "🎉"
	default:
		return "📌"
	}
}

func formatSlotDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatSlotTime(t time.Time) string {
	return t.Format("15h04")
}
