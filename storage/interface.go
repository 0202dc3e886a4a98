package storage

import (
	"context"
	"errors"

	"voyago/models"
)

// ErrPlanNotFound is returned when a plan id resolves to nothing.
var ErrPlanNotFound = errors.New("plan not found")

// Repository is the authoritative record linking sessions to plans and plans
// to bookings. Implementations are constructed once per process (or per test)
// and passed by reference; there is no package-level state.
//
// Every method is a single atomic read-modify-write: concurrent calls for the
// same session serialize, so the last completed AttachPlanToSession wins.
type Repository interface {
	// GetOrCreateSession is idempotent: the first call creates an empty
	// session, later calls return the existing state unchanged.
	GetOrCreateSession(ctx context.Context, sessionID, userID string) (*models.SessionState, error)

	// SavePlan assigns a fresh opaque id to the plan and stores it. Plans are
	// never mutated or deleted after persistence.
	SavePlan(ctx context.Context, plan models.VacationPlan) (string, error)

	// GetPlan retrieves a stored plan by id.
	GetPlan(ctx context.Context, planID string) (*models.VacationPlan, error)

	// AttachPlanToSession persists the plan and rebinds the session's
	// last-plan reference to it in one atomic step. The previous reference is
	// overwritten, never appended to.
	AttachPlanToSession(ctx context.Context, sessionID, userID string, plan models.VacationPlan) (string, error)

	// LatestPlanForSession dereferences the session's last-plan id, or
	// returns nil if no plan has been attached.
	LatestPlanForSession(ctx context.Context, sessionID, userID string) (*models.VacationPlan, error)

	// SaveBooking stores a confirmation and indexes it by plan id.
	SaveBooking(ctx context.Context, conf models.BookingConfirmation) error

	// BookingForPlan returns the confirmation recorded for the plan, or nil
	// if the plan has never been booked.
	BookingForPlan(ctx context.Context, planID string) (*models.BookingConfirmation, error)

	// GetOrCreatePreferences returns the user's preferences, creating the
	// defaults on first access.
	GetOrCreatePreferences(ctx context.Context, userID string) (*models.UserPreferences, error)

	// UpdatePreferences applies a partial update; nil fields are untouched.
	UpdatePreferences(ctx context.Context, userID string, patch models.PreferencesUpdate) (*models.UserPreferences, error)

	// CalendarEvents returns the user's busy intervals, possibly empty.
	CalendarEvents(ctx context.Context, userID string) ([]models.CalendarEvent, error)

	// SetCalendarEvents replaces the user's busy intervals.
	SetCalendarEvents(ctx context.Context, userID string, events []models.CalendarEvent) error
}

// DefaultPreferences are the lazily created preferences for a first-time user.
func DefaultPreferences(userID string) models.UserPreferences {
	return models.UserPreferences{
		UserID:          userID,
		HomeCity:        "SIN",
		DefaultCurrency: "USD",
		Interests:       []string{"food", "museums"},
		TravelStyle:     "balanced",
	}
}

// ApplyPreferencesUpdate merges a partial update into existing preferences.
func ApplyPreferencesUpdate(prefs models.UserPreferences, patch models.PreferencesUpdate) models.UserPreferences {
	if patch.HomeCity != nil {
		prefs.HomeCity = *patch.HomeCity
	}
	if patch.DefaultCurrency != nil {
		prefs.DefaultCurrency = *patch.DefaultCurrency
	}
	if patch.MaxBudgetTotal != nil {
		prefs.MaxBudgetTotal = patch.MaxBudgetTotal
	}
	if patch.MaxBudgetPerDay != nil {
		prefs.MaxBudgetPerDay = patch.MaxBudgetPerDay
	}
	if patch.Interests != nil {
		prefs.Interests = *patch.Interests
	}
	if patch.TravelStyle != nil {
		prefs.TravelStyle = *patch.TravelStyle
	}
	if patch.PreferredAirlines != nil {
		prefs.PreferredAirlines = *patch.PreferredAirlines
	}
	if patch.PreferredHotelTypes != nil {
		prefs.PreferredHotelTypes = *patch.PreferredHotelTypes
	}
	return prefs
}
