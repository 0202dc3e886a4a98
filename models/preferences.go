package models

// UserPreferences holds the per-user defaults consulted by every planning
// turn. Created lazily with defaults on first access, never deleted.
type UserPreferences struct {
	UserID              string   `json:"user_id"`
	HomeCity            string   `json:"home_city"`                    // home city or airport code, e.g. "SIN"
	DefaultCurrency     string   `json:"default_currency"`             // ISO currency code
	MaxBudgetTotal      *float64 `json:"max_budget_total,omitempty"`   // ceiling for the whole trip
	MaxBudgetPerDay     *float64 `json:"max_budget_per_day,omitempty"` // ceiling per day
	Interests           []string `json:"interests"`                    // e.g. "food", "museums", "nature"
	TravelStyle         string   `json:"travel_style"`                 // "relaxed", "packed", "balanced"
	PreferredAirlines   []string `json:"preferred_airlines"`
	PreferredHotelTypes []string `json:"preferred_hotel_types"` // "budget", "midrange", "luxury"
}

// MaxBudget returns the effective flight budget ceiling: the total ceiling if
// set, otherwise the per-day ceiling, otherwise nil (no ceiling).
func (p UserPreferences) MaxBudget() *float64 {
	if p.MaxBudgetTotal != nil {
		return p.MaxBudgetTotal
	}
	return p.MaxBudgetPerDay
}

// PreferencesUpdate is a partial update: nil fields are left untouched.
type PreferencesUpdate struct {
	HomeCity            *string   `json:"home_city,omitempty"`
	DefaultCurrency     *string   `json:"default_currency,omitempty"`
	MaxBudgetTotal      *float64  `json:"max_budget_total,omitempty"`
	MaxBudgetPerDay     *float64  `json:"max_budget_per_day,omitempty"`
	Interests           *[]string `json:"interests,omitempty"`
	TravelStyle         *string   `json:"travel_style,omitempty"`
	PreferredAirlines   *[]string `json:"preferred_airlines,omitempty"`
	PreferredHotelTypes *[]string `json:"preferred_hotel_types,omitempty"`
}
