package models

import "time"

// Notification types emitted by the booking engine.
const (
	NotificationBookingConfirmation = "booking_confirmation"
	NotificationBookingCancellation = "booking_cancellation"
)

type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
