package models

// ChatRequest is the payload coming from the frontend into /api/chat/message.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply             string   `json:"reply"`
	Booking           *Booking `json:"booking,omitempty"`
	NeedsMoreInfo     bool     `json:"needsMoreInfo,omitempty"`
	VoiceConfirmation bool     `json:"voice_confirmation,omitempty"`
	Alternatives      []string `json:"alternatives,omitempty"`
}

// ChatContext is the per-user conversation state cached between messages.
// It only accumulates while a booking is being clarified; a completed
// booking clears it.
type ChatContext struct {
	LastMessage     string `json:"lastMessage,omitempty"`
	PendingBooking  bool   `json:"pendingBooking,omitempty"`
	MessagesHandled int    `json:"messagesHandled"`
}
