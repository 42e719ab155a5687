package booking

import (
	"testing"
	"time"

	"azura/models"

	"github.com/stretchr/testify/assert"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:            "bkg-1",
		BookingNumber: "AZ-9F2C41AB",
		UserID:        "user-1",
		Type:          models.TypeRestaurant,
		SubType:       "japonais",
		BookingDate:   time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC),
		Location:      "Puerto Banús",
		GuestsCount:   4,
		Status:        models.StatusConfirmed,
	}
}

func TestComposeConfirmation(t *testing.T) {
	msg := ComposeConfirmation(sampleBooking())

	assert.Contains(t, msg, "AZ-9F2C41AB")
	assert.Contains(t, msg, "14/06/2025 à 20h00")
	assert.Contains(t, msg, "restaurant (japonais)")
	assert.Contains(t, msg, "Puerto Banús")
	assert.Contains(t, msg, "4 personne(s)")
	assert.Contains(t, msg, "WhatsApp")
	// No price line when the price is unknown.
	assert.NotContains(t, msg, "Prix")
}

func TestComposeConfirmation_WithPrice(t *testing.T) {
	b := sampleBooking()
	b.Price = 350

	msg := ComposeConfirmation(b)

	assert.Contains(t, msg, "350.00 €")
}

func TestComposeVoiceConfirmation_ByType(t *testing.T) {
	restaurant := ComposeVoiceConfirmation(sampleBooking())
	assert.Contains(t, restaurant, "Votre table pour 4 personnes")
	assert.Contains(t, restaurant, "AZ-9F2C41AB")
	assert.NotContains(t, restaurant, "✅")

	service := sampleBooking()
	service.Type = models.TypeService
	assert.Contains(t, ComposeVoiceConfirmation(service), "Votre prestation")

	event := sampleBooking()
	event.Type = models.TypeEvent
	assert.Contains(t, ComposeVoiceConfirmation(event), "Vos places")

	stay := sampleBooking()
	stay.Type = models.TypeAccommodation
	assert.Contains(t, ComposeVoiceConfirmation(stay), "Votre réservation est confirmée")
}

func TestComposeVoiceConfirmation_IsDeterministic(t *testing.T) {
	b := sampleBooking()
	assert.Equal(t, ComposeVoiceConfirmation(b), ComposeVoiceConfirmation(b))
}

func TestComposeCancellation(t *testing.T) {
	msg := ComposeCancellation(sampleBooking())

	assert.Contains(t, msg, "AZ-9F2C41AB")
	assert.Contains(t, msg, "14/06/2025")
	assert.Contains(t, msg, "annulée")
}
