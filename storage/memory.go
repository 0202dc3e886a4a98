package storage

import (
	"context"
	"sync"

	"voyago/models"

	"github.com/google/uuid"
)

// MemoryRepository keeps everything in process memory behind one mutex. It is
// the default backend and the one test scenarios construct per instance.
type MemoryRepository struct {
	mu           sync.Mutex
	sessions     map[string]models.SessionState
	plans        map[string]models.VacationPlan
	bookings     map[string]models.BookingConfirmation
	planBookings map[string]string // plan id -> booking id
	preferences  map[string]models.UserPreferences
	calendars    map[string][]models.CalendarEvent
}

// NewMemoryRepository returns an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions:     make(map[string]models.SessionState),
		plans:        make(map[string]models.VacationPlan),
		bookings:     make(map[string]models.BookingConfirmation),
		planBookings: make(map[string]string),
		preferences:  make(map[string]models.UserPreferences),
		calendars:    make(map[string][]models.CalendarEvent),
	}
}

func (r *MemoryRepository) GetOrCreateSession(ctx context.Context, sessionID, userID string) (*models.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[sessionID]; ok {
		return &existing, nil
	}
	state := models.SessionState{SessionID: sessionID, UserID: userID}
	r.sessions[sessionID] = state
	return &state, nil
}

func (r *MemoryRepository) SavePlan(ctx context.Context, plan models.VacationPlan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.savePlanLocked(plan), nil
}

func (r *MemoryRepository) savePlanLocked(plan models.VacationPlan) string {
	planID := uuid.New().String()
	r.plans[planID] = plan
	return planID
}

func (r *MemoryRepository) GetPlan(ctx context.Context, planID string) (*models.VacationPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.plans[planID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}

func (r *MemoryRepository) AttachPlanToSession(ctx context.Context, sessionID, userID string, plan models.VacationPlan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		session = models.SessionState{SessionID: sessionID, UserID: userID}
	}
	planID := r.savePlanLocked(plan)
	session.LastPlanID = planID
	r.sessions[sessionID] = session
	return planID, nil
}

func (r *MemoryRepository) LatestPlanForSession(ctx context.Context, sessionID, userID string) (*models.VacationPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok || session.LastPlanID == "" {
		return nil, nil
	}
	plan, ok := r.plans[session.LastPlanID]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func (r *MemoryRepository) SaveBooking(ctx context.Context, conf models.BookingConfirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[conf.BookingID] = conf
	r.planBookings[conf.PlanID] = conf.BookingID
	return nil
}

func (r *MemoryRepository) BookingForPlan(ctx context.Context, planID string) (*models.BookingConfirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookingID, ok := r.planBookings[planID]
	if !ok {
		return nil, nil
	}
	conf, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	return &conf, nil
}

func (r *MemoryRepository) GetOrCreatePreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prefs, ok := r.preferences[userID]; ok {
		return &prefs, nil
	}
	prefs := DefaultPreferences(userID)
	r.preferences[userID] = prefs
	return &prefs, nil
}

func (r *MemoryRepository) UpdatePreferences(ctx context.Context, userID string, patch models.PreferencesUpdate) (*models.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefs, ok := r.preferences[userID]
	if !ok {
		prefs = DefaultPreferences(userID)
	}
	updated := ApplyPreferencesUpdate(prefs, patch)
	r.preferences[userID] = updated
	return &updated, nil
}

func (r *MemoryRepository) CalendarEvents(ctx context.Context, userID string) ([]models.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := r.calendars[userID]
	out := make([]models.CalendarEvent, len(events))
	copy(out, events)
	return out, nil
}

func (r *MemoryRepository) SetCalendarEvents(ctx context.Context, userID string, events []models.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]models.CalendarEvent, len(events))
	copy(stored, events)
	r.calendars[userID] = stored
	return nil
}
