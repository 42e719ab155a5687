// File: handlers/booking.go
package handlers

import (
	"net/http"

	notificationRepo "azura/database/repository/notification"
	"azura/services/booking"
	"azura/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation read and cancel endpoints.
type BookingHandler struct {
	Service          booking.BookingService
	NotificationRepo notificationRepo.NotificationRepository
	Logger           *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, notifRepo notificationRepo.NotificationRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, NotificationRepo: notifRepo, Logger: logger}
}

// CancelBookingHandler cancels a booking owned by the calling user.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "missing booking id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a bare POST cancels with no reason.
	_ = c.ShouldBindJSON(&req)

	result := h.Service.CancelBooking(c.Request.Context(), bookingID, userID, req.Reason)
	if !result.Success {
		switch result.Error {
		case booking.CodeNotFound:
			utils.JSONError(c, http.StatusNotFound, result.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, result.Message, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"booking": result.Booking,
	})
}

// ListBookingsHandler returns the calling user's bookings, newest first.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.Service.ListBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("bookingHandler: failed to list bookings", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListNotificationsHandler returns the calling user's notifications.
func (h *BookingHandler) ListNotificationsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.NotificationRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("bookingHandler: failed to list notifications", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch notifications", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
