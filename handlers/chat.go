// File: handlers/chat.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"azura/models"
	"azura/services/booking"
	"azura/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReplyGenerator phrases conversational replies. The handler works without
// one; the deterministic engine messages are always the fallback.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, userMessage string) (string, error)
}

// ContextStore is the per-user conversation state cache, implemented by
// chat.RedisContextStore.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.ChatContext, error)
	Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, userID string) error
}

// ChatHandler is the entry point for concierge chat messages.
type ChatHandler struct {
	Booking  booking.BookingService
	Replies  ReplyGenerator
	CtxStore ContextStore
	Logger   *zap.Logger
}

func NewChatHandler(bookingSvc booking.BookingService, replies ReplyGenerator, ctxStore ContextStore, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Booking: bookingSvc, Replies: replies, CtxStore: ctxStore, Logger: logger}
}

// HandleChatMessage runs a free-form message through the booking engine and
// returns the concierge reply plus any booking outcome.
func (h *ChatHandler) HandleChatMessage(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing user identity")
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	ctx := c.Request.Context()

	chatCtx := h.loadContext(ctx, userID)
	details := map[string]any{}
	if chatCtx.PendingBooking {
		details["pending_booking"] = true
		details["previous_message"] = chatCtx.LastMessage
	}

	result := h.Booking.ProcessBookingFromChat(ctx, userID, req.Text, details)

	resp := models.ChatResponse{
		Reply:             result.Message,
		Booking:           result.Booking,
		NeedsMoreInfo:     result.NeedsMoreInfo,
		VoiceConfirmation: result.VoiceConfirmation,
		Alternatives:      formatAlternatives(result.Alternatives),
	}

	if result.NeedsMoreInfo && h.Replies != nil {
		if phrased, err := h.Replies.GenerateReply(ctx, req.Text); err == nil && phrased != "" {
			resp.Reply = phrased + "\n\n" + result.Message
		} else if err != nil {
			h.Logger.Warn("chatHandler: reply generation failed", zap.Error(err))
		}
	}

	h.storeContext(ctx, userID, chatCtx, req.Text, result)

	c.JSON(http.StatusOK, resp)
}

func formatAlternatives(slots []time.Time) []string {
	if len(slots) == 0 {
		return nil
	}
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.Format("02/01/2006 à 15h04"))
	}
	return out
}

func (h *ChatHandler) loadContext(ctx context.Context, userID string) *models.ChatContext {
	if h.CtxStore == nil {
		return &models.ChatContext{}
	}
	chatCtx, err := h.CtxStore.Get(ctx, userID)
	if err != nil {
		h.Logger.Warn("chatHandler: failed to load chat context", zap.String("userID", userID), zap.Error(err))
		return &models.ChatContext{}
	}
	return chatCtx
}

func (h *ChatHandler) storeContext(ctx context.Context, userID string, chatCtx *models.ChatContext, message string, result models.BookingResult) {
	if h.CtxStore == nil {
		return
	}

	// A confirmed booking closes the conversation unit: drop the pending
	// context so the next request starts clean.
	if result.Success {
		if err := h.CtxStore.Clear(ctx, userID); err != nil {
			h.Logger.Warn("chatHandler: failed to clear chat context", zap.String("userID", userID), zap.Error(err))
		}
		return
	}

	chatCtx.LastMessage = message
	chatCtx.MessagesHandled++
	chatCtx.PendingBooking = result.NeedsMoreInfo
	if err := h.CtxStore.Set(ctx, userID, chatCtx); err != nil {
		h.Logger.Warn("chatHandler: failed to store chat context", zap.String("userID", userID), zap.Error(err))
	}
}
