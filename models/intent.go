package models

import "time"

// Booking types recognised by the intent extractor.
const (
	TypeRestaurant    = "restaurant"
	TypeService       = "service"
	TypeAccommodation = "accommodation"
	TypeEvent         = "event"
)

// BookingIntent is the structured interpretation of a free-form reservation
// request. It is derived from the message, never persisted.
type BookingIntent struct {
	Type             string    `json:"type,omitempty"`
	SubType          string    `json:"subType,omitempty"`
	Location         string    `json:"location"`
	BookingDate      time.Time `json:"bookingDate"`
	GuestsCount      int       `json:"guestsCount"`
	IsBookingRequest bool      `json:"isBookingRequest"`
	Confidence       float64   `json:"confidence"`
}
