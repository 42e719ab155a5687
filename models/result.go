package models

import "time"

// BookingResult is the uniform shape the booking engine reports back to the
// chat layer. Exactly one of the Success / NeedsMoreInfo / Error branches is
// meaningful.
type BookingResult struct {
	Success           bool        `json:"success"`
	NeedsMoreInfo     bool        `json:"needsMoreInfo,omitempty"`
	Booking           *Booking    `json:"booking,omitempty"`
	Message           string      `json:"message,omitempty"`
	VoiceConfirmation bool        `json:"voice_confirmation,omitempty"`
	Error             string      `json:"error,omitempty"`
	Alternatives      []time.Time `json:"alternatives,omitempty"`
}
