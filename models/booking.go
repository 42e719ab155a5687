package models

import "time"

// Booking statuses. A booking is only ever created confirmed and may
// transition to cancelled, never back.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents a confirmed reservation record.
type Booking struct {
	ID              string         `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	BookingNumber   string         `bson:"booking_number" json:"booking_number"` // Human-readable number, unique, generated at creation
	UserID          string         `bson:"user_id" json:"user_id"`               // Owning user
	Type            string         `bson:"type" json:"type"`                     // restaurant, service, accommodation, event
	SubType         string         `bson:"sub_type,omitempty" json:"sub_type,omitempty"`
	EstablishmentID string         `bson:"establishment_id,omitempty" json:"establishment_id,omitempty"`
	EventID         string         `bson:"event_id,omitempty" json:"event_id,omitempty"`
	ServiceID       string         `bson:"service_id,omitempty" json:"service_id,omitempty"`
	BookingDate     time.Time      `bson:"booking_date" json:"booking_date"`
	Location        string         `bson:"location" json:"location"`
	GuestsCount     int            `bson:"guests_count" json:"guests_count"`
	SpecialRequests string         `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	Price           float64        `bson:"price,omitempty" json:"price,omitempty"`
	Status          string         `bson:"status" json:"status"`
	Details         map[string]any `bson:"details,omitempty" json:"details,omitempty"` // source message, cancellation metadata, etc.
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
}
