package intent

import (
	"regexp"
	"strings"
	"time"

	"azura/models"
)

// Confidence levels reported by the extractor. A resolved type means most of
// the message matched known vocabulary.
const (
	ConfidenceResolved   = 0.85
	ConfidenceUnresolved = 0.3
)

// Business-rule defaults. These are deliberate product decisions, not parsing
// fallbacks: the confirmation copy depends on them staying exactly as is.
const (
	defaultGuests      = 2
	defaultHour        = 20
	weekendBookingHour = 19
)

// Extractor turns a raw chat message into a structured BookingIntent. It is a
// pure classifier: same message, same keyword tables, same clock, same result.
type Extractor struct {
	homeCity string
	now      func() time.Time
}

func NewExtractor(homeCity string) *Extractor {
	return &Extractor{homeCity: homeCity, now: time.Now}
}

// NewExtractorWithClock pins the clock, for deterministic date resolution.
func NewExtractorWithClock(homeCity string, now func() time.Time) *Extractor {
	return &Extractor{homeCity: homeCity, now: now}
}

// typeRule is one entry of the ordered classifier: first match wins, so rule
// order carries the tie-break semantics.
type typeRule struct {
	bookingType string
	subType     string
	keywords    []string
}

// Restaurant cues come first, then services, accommodation, events. Within
// restaurants the generic table/meal words are checked before cuisines so a
// cuisine word only refines the sub-type.
var restaurantCues = []string{
	"restaurant", "table", "dîner", "diner", "dinner", "déjeuner", "dejeuner", "lunch", "manger", "brunch",
}

var cuisineRules = []typeRule{
	{subType: "japonais", keywords: []string{"japonais", "japanese", "sushi", "teppanyaki"}},
	{subType: "italien", keywords: []string{"italien", "italian", "pizza", "pasta", "trattoria"}},
	{subType: "français", keywords: []string{"français", "francais", "french", "bistrot"}},
	{subType: "chinois", keywords: []string{"chinois", "chinese", "dim sum"}},
	{subType: "indien", keywords: []string{"indien", "indian", "curry"}},
	{subType: "thaï", keywords: []string{"thaï", "thai"}},
	{subType: "mexicain", keywords: []string{"mexicain", "mexican", "tacos"}},
	{subType: "fruits de mer", keywords: []string{"fruits de mer", "seafood", "poisson", "marisquería", "marisqueria"}},
	{subType: "grillades", keywords: []string{"steak", "grill", "viande", "asador"}},
}

var serviceRules = []typeRule{
	{bookingType: models.TypeService, subType: "yacht", keywords: []string{"yacht", "bateau", "boat", "catamaran"}},
	{bookingType: models.TypeService, subType: "spa", keywords: []string{"spa", "massage", "hammam", "soin"}},
	{bookingType: models.TypeService, subType: "chauffeur", keywords: []string{"chauffeur", "transport", "transfert", "driver", "limousine"}},
	{bookingType: models.TypeService, subType: "chef_prive", keywords: []string{"chef privé", "chef prive", "private chef", "chef à domicile", "chef a domicile"}},
}

var accommodationRules = []typeRule{
	{bookingType: models.TypeAccommodation, subType: "villa", keywords: []string{"villa"}},
	{bookingType: models.TypeAccommodation, subType: "hotel", keywords: []string{"hôtel", "hotel", "suite", "penthouse"}},
}

var eventCues = []string{
	"événement", "evenement", "event", "soirée", "soiree", "party", "concert", "fête", "fete", "anniversaire", "célébration", "celebration",
}

// Known zones scanned for a location mention, checked in order. Values are
// the canonical display names used in confirmations.
var knownZones = []struct {
	match string
	name  string
}{
	{"puerto banús", "Puerto Banús"},
	{"puerto banus", "Puerto Banús"},
	{"golden mile", "Golden Mile"},
	{"nueva andalucía", "Nueva Andalucía"},
	{"nueva andalucia", "Nueva Andalucía"},
	{"san pedro", "San Pedro de Alcántara"},
	{"estepona", "Estepona"},
	{"benahavís", "Benahavís"},
	{"benahavis", "Benahavís"},
	{"marbella", "Marbella"},
}

var guestsRe = regexp.MustCompile(`(\d+)\s*(?:personnes?|people|guests?|invit[ée]s?|pers\b|persons?)`)

// ExtractIntent parses a raw message into a structured BookingIntent.
func (e *Extractor) ExtractIntent(message string) models.BookingIntent {
	lower := strings.ToLower(message)

	bookingType, subType := classify(lower)

	intent := models.BookingIntent{
		Type:             bookingType,
		SubType:          subType,
		Location:         e.resolveLocation(lower),
		BookingDate:      e.resolveDate(lower),
		GuestsCount:      resolveGuests(lower),
		IsBookingRequest: bookingType != "",
		Confidence:       ConfidenceUnresolved,
	}
	if intent.IsBookingRequest {
		intent.Confidence = ConfidenceResolved
	}
	return intent
}

func classify(lower string) (string, string) {
	// Restaurant: generic table/meal cues, or a cuisine word on its own.
	cuisine := ""
	for _, rule := range cuisineRules {
		if containsAny(lower, rule.keywords) {
			cuisine = rule.subType
			break
		}
	}
	if cuisine != "" || containsAny(lower, restaurantCues) {
		return models.TypeRestaurant, cuisine
	}

	for _, rule := range serviceRules {
		if containsAny(lower, rule.keywords) {
			return rule.bookingType, rule.subType
		}
	}

	for _, rule := range accommodationRules {
		if containsAny(lower, rule.keywords) {
			return rule.bookingType, rule.subType
		}
	}

	if containsAny(lower, eventCues) {
		return models.TypeEvent, ""
	}

	return "", ""
}

func (e *Extractor) resolveLocation(lower string) string {
	for _, zone := range knownZones {
		if strings.Contains(lower, zone.match) {
			return zone.name
		}
	}
	return e.homeCity
}

// resolveDate maps a small set of relative-time phrases onto concrete
// timestamps. No phrase means tomorrow evening, by design.
func (e *Extractor) resolveDate(lower string) time.Time {
	now := e.now()

	switch {
	case strings.Contains(lower, "ce soir"), strings.Contains(lower, "tonight"):
		return dayAt(now, 0, defaultHour)
	// après-demain contains "demain", so it must be checked first.
	case strings.Contains(lower, "après-demain"), strings.Contains(lower, "apres-demain"),
		strings.Contains(lower, "après demain"), strings.Contains(lower, "apres demain"),
		strings.Contains(lower, "day after tomorrow"):
		return dayAt(now, 2, defaultHour)
	case strings.Contains(lower, "demain"), strings.Contains(lower, "tomorrow"):
		return dayAt(now, 1, defaultHour)
	case strings.Contains(lower, "ce week-end"), strings.Contains(lower, "ce weekend"),
		strings.Contains(lower, "this weekend"):
		return dayAt(now, daysUntilSaturday(now), weekendBookingHour)
	default:
		return dayAt(now, 1, defaultHour)
	}
}

func resolveGuests(lower string) int {
	m := guestsRe.FindStringSubmatch(lower)
	if m == nil {
		return defaultGuests
	}
	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return defaultGuests
	}
	return n
}

func dayAt(now time.Time, daysAhead, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+daysAhead, hour, 0, 0, 0, now.Location())
}

// daysUntilSaturday returns the offset to the coming Saturday; on a Saturday
// it rolls to the following one.
func daysUntilSaturday(now time.Time) int {
	offset := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return offset
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
