package models

import "time"

// SessionState links a conversation session to its most recently attached
// plan. The last-plan reference is rebound on every new plan, never appended.
type SessionState struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	LastPlanID string `json:"last_plan_id,omitempty"`
}

// BookingRequest asks to book a stored plan. The payment token is opaque and
// never inspected; raw payment data is never accepted.
type BookingRequest struct {
	UserID       string `json:"user_id"`
	SessionID    string `json:"session_id"`
	PaymentToken string `json:"payment_token"`
	PlanID       string `json:"plan_id"`
}

// BookingConfirmation is the simulated, immutable record that a plan was
// "booked". Confirmation codes are synthesized, not issued by any provider.
type BookingConfirmation struct {
	BookingID              string    `json:"booking_id"`
	UserID                 string    `json:"user_id"`
	SessionID              string    `json:"session_id"`
	PlanID                 string    `json:"plan_id"`
	FlightConfirmationCode string    `json:"flight_confirmation_code"`
	HotelConfirmationCode  string    `json:"hotel_confirmation_code"`
	TotalCharged           float64   `json:"total_charged"`
	Currency               string    `json:"currency"`
	CreatedAt              time.Time `json:"created_at"`
}
