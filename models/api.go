package models

// ChatRequest is one inbound turn of the conversational planner.
type ChatRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	UserID       string `json:"user_id" binding:"required"`
	Message      string `json:"message" binding:"required"`
	AllowBooking bool   `json:"allow_booking"` // whether booking actions are allowed this session
}

// ChatResponse is the structured output of one turn.
type ChatResponse struct {
	SessionID                 string        `json:"session_id"`
	UserID                    string        `json:"user_id"`
	AssistantMessage          string        `json:"assistant_message"`
	Plan                      *VacationPlan `json:"plan,omitempty"`
	AskForBookingConfirmation bool          `json:"ask_for_booking_confirmation"`
}

// BookRequest books the latest plan attached to the session.
type BookRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	UserID       string `json:"user_id" binding:"required"`
	PaymentToken string `json:"payment_token" binding:"required"` // opaque token, never raw card data
}

// BookResponse wraps the synthesized confirmation.
type BookResponse struct {
	SessionID    string              `json:"session_id"`
	UserID       string              `json:"user_id"`
	Confirmation BookingConfirmation `json:"confirmation"`
}

// PreferencesResponse wraps a preferences read or update result.
type PreferencesResponse struct {
	Preferences UserPreferences `json:"preferences"`
}
