package models

// Plan lifecycle states. Cancelled is reserved for future use.
const (
	PlanStatusPlanned   = "planned"
	PlanStatusBooked    = "booked"
	PlanStatusCancelled = "cancelled"
)

// DayPlan is one calendar day inside a vacation plan.
type DayPlan struct {
	Date      Date   `json:"date"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
	Notes     string `json:"notes,omitempty"`
}

// VacationPlan is a fully assembled itinerary for one user and date span.
// It is immutable once built; any revision produces a new plan.
type VacationPlan struct {
	UserID             string       `json:"user_id"`
	DestinationCity    string       `json:"destination_city"`
	StartDate          Date         `json:"start_date"`
	EndDate            Date         `json:"end_date"`
	Flight             FlightOption `json:"flight"`
	Hotel              HotelOption  `json:"hotel"`
	DailyPlans         []DayPlan    `json:"daily_plans"`
	EstimatedTotalCost float64      `json:"estimated_total_cost"`
	Currency           string       `json:"currency"`
	Status             string       `json:"status"` // planned | booked | cancelled
}
