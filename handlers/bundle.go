// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoint
	ChatMessageHandler gin.HandlerFunc

	// Booking endpoints
	CancelBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
}
