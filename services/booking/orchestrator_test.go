package booking

import (
	"context"
	"testing"
	"time"

	"azura/models"
	"azura/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBookingFromChat_LowConfidenceAsksForDetails(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	result := svc.ProcessBookingFromChat(context.Background(), "user-1", "Bonjour, comment ça va ?", nil)

	assert.False(t, result.Success)
	assert.True(t, result.NeedsMoreInfo)
	assert.Equal(t, CodeInsufficientConfidence, result.Error)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, repo.bookings)
}

func TestProcessBookingFromChat_BooksResolvedIntent(t *testing.T) {
	svc, repo, _, _, _, dispatcher := newTestService()

	result := svc.ProcessBookingFromChat(context.Background(), "user-1",
		"Réserver une table japonaise ce soir", map[string]any{"pending_booking": true})

	require.True(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.True(t, result.VoiceConfirmation)
	assert.Equal(t, models.TypeRestaurant, result.Booking.Type)
	assert.Equal(t, "japonais", result.Booking.SubType)
	assert.Equal(t, time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC), result.Booking.BookingDate)
	assert.Equal(t, 2, result.Booking.GuestsCount)

	stored := repo.bookings[result.Booking.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "chat", stored.Details["source"])
	assert.Equal(t, "Réserver une table japonaise ce soir", stored.Details["original_message"])
	assert.Equal(t, true, stored.Details["pending_booking"])

	require.Len(t, dispatcher.dispatched, 1)
}

func TestProcessBookingFromChat_NoAvailabilityPassesAlternatives(t *testing.T) {
	svc, repo, _, checker, _, _ := newTestService()
	slot := time.Date(2025, 6, 11, 20, 0, 0, 0, time.UTC)
	checker.result = availability.Result{
		Available:    false,
		Alternatives: []time.Time{slot.Add(time.Hour), slot.Add(2 * time.Hour)},
	}

	result := svc.ProcessBookingFromChat(context.Background(), "user-1",
		"Yacht pour 8 personnes demain à Puerto Banús", nil)

	assert.False(t, result.Success)
	assert.False(t, result.VoiceConfirmation)
	assert.Equal(t, CodeNoAvailability, result.Error)
	assert.Len(t, result.Alternatives, 2)
	assert.Empty(t, repo.bookings)
}
