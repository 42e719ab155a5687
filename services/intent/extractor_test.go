package intent

import (
	"testing"
	"time"

	"azura/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday evening, so relative phrases resolve deterministically.
var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	return NewExtractorWithClock("Marbella", func() time.Time { return testNow })
}

func TestExtractIntent_JapaneseTableTonight(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Réserver une table japonaise ce soir")

	require.True(t, intent.IsBookingRequest)
	assert.Equal(t, models.TypeRestaurant, intent.Type)
	assert.Equal(t, "japonais", intent.SubType)
	assert.Equal(t, "Marbella", intent.Location)
	assert.Equal(t, time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC), intent.BookingDate)
	assert.Equal(t, 2, intent.GuestsCount)
	assert.InDelta(t, ConfidenceResolved, intent.Confidence, 0.001)
}

func TestExtractIntent_YachtTomorrowPuertoBanus(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Yacht pour 8 personnes demain à Puerto Banús")

	require.True(t, intent.IsBookingRequest)
	assert.Equal(t, models.TypeService, intent.Type)
	assert.Equal(t, "yacht", intent.SubType)
	assert.Equal(t, "Puerto Banús", intent.Location)
	assert.Equal(t, 8, intent.GuestsCount)
	assert.Equal(t, time.Date(2025, 6, 11, 20, 0, 0, 0, time.UTC), intent.BookingDate)
}

func TestExtractIntent_NonBookingMessage(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Bonjour, comment allez-vous ?")

	assert.False(t, intent.IsBookingRequest)
	assert.Empty(t, intent.Type)
	assert.InDelta(t, ConfidenceUnresolved, intent.Confidence, 0.001)
}

func TestExtractIntent_DefaultsToTomorrowEvening(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Réserver un restaurant italien")

	assert.Equal(t, "italien", intent.SubType)
	assert.Equal(t, time.Date(2025, 6, 11, 20, 0, 0, 0, time.UTC), intent.BookingDate)
	assert.Equal(t, 2, intent.GuestsCount)
}

func TestExtractIntent_DayAfterTomorrowBeatsTomorrow(t *testing.T) {
	e := newTestExtractor()

	// "après-demain" contains "demain" and must not resolve to tomorrow.
	intent := e.ExtractIntent("Une table après-demain")

	assert.Equal(t, time.Date(2025, 6, 12, 20, 0, 0, 0, time.UTC), intent.BookingDate)
}

func TestExtractIntent_WeekendResolvesToSaturdayEvening(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Dîner ce week-end")

	// Tuesday the 10th rolls forward to Saturday the 14th, 19:00.
	assert.Equal(t, time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC), intent.BookingDate)
}

func TestExtractIntent_WeekendOnSaturdayRollsToNext(t *testing.T) {
	saturday := time.Date(2025, 6, 14, 11, 0, 0, 0, time.UTC)
	e := NewExtractorWithClock("Marbella", func() time.Time { return saturday })

	intent := e.ExtractIntent("Un restaurant ce weekend")

	assert.Equal(t, time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC), intent.BookingDate)
}

func TestExtractIntent_EnglishPhrasing(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Book a sushi dinner tonight for 4 people in Golden Mile")

	require.True(t, intent.IsBookingRequest)
	assert.Equal(t, models.TypeRestaurant, intent.Type)
	assert.Equal(t, "japonais", intent.SubType)
	assert.Equal(t, "Golden Mile", intent.Location)
	assert.Equal(t, 4, intent.GuestsCount)
	assert.Equal(t, time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC), intent.BookingDate)
}

func TestExtractIntent_AccommodationAndEvents(t *testing.T) {
	e := newTestExtractor()

	villa := e.ExtractIntent("Je cherche une villa à Benahavis pour ce week-end")
	assert.Equal(t, models.TypeAccommodation, villa.Type)
	assert.Equal(t, "villa", villa.SubType)
	assert.Equal(t, "Benahavís", villa.Location)

	event := e.ExtractIntent("Des places pour le concert demain")
	assert.Equal(t, models.TypeEvent, event.Type)
	assert.Empty(t, event.SubType)
}

func TestExtractIntent_ZoneCanonicalization(t *testing.T) {
	e := newTestExtractor()

	intent := e.ExtractIntent("Un spa à san pedro demain")

	assert.Equal(t, models.TypeService, intent.Type)
	assert.Equal(t, "spa", intent.SubType)
	assert.Equal(t, "San Pedro de Alcántara", intent.Location)
}

func TestResolveGuests(t *testing.T) {
	cases := []struct {
		message string
		want    int
	}{
		{"table pour 6 personnes", 6},
		{"dinner for 12 guests", 12},
		{"une table pour 3 pers demain", 3},
		{"réserver un restaurant", 2},
		{"table pour 0 personnes", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resolveGuests(tc.message), "message: %s", tc.message)
	}
}
