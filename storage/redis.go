package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"voyago/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix     = "vp:session:"
	planKeyPrefix        = "vp:plan:"
	bookingKeyPrefix     = "vp:booking:"
	planBookingKeyPrefix = "vp:planbooking:"
	prefsKeyPrefix       = "vp:prefs:"
	calendarKeyPrefix    = "vp:calendar:"
)

// RedisRepository stores every record as a JSON value under a prefixed key.
// Records never expire; plans and bookings are immutable once written.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository wraps an already connected client.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisRepository) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.client.Set(ctx, key, b, 0).Err()
}

func (r *RedisRepository) GetOrCreateSession(ctx context.Context, sessionID, userID string) (*models.SessionState, error) {
	key := sessionKeyPrefix + sessionID
	state := models.SessionState{SessionID: sessionID, UserID: userID}
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	// SetNX keeps the first writer's state; a later caller never overwrites.
	if err := r.client.SetNX(ctx, key, b, 0).Err(); err != nil {
		return nil, err
	}
	var existing models.SessionState
	if _, err := r.getJSON(ctx, key, &existing); err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *RedisRepository) SavePlan(ctx context.Context, plan models.VacationPlan) (string, error) {
	planID := uuid.New().String()
	if err := r.setJSON(ctx, planKeyPrefix+planID, plan); err != nil {
		return "", err
	}
	return planID, nil
}

func (r *RedisRepository) GetPlan(ctx context.Context, planID string) (*models.VacationPlan, error) {
	var plan models.VacationPlan
	found, err := r.getJSON(ctx, planKeyPrefix+planID, &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}

func (r *RedisRepository) AttachPlanToSession(ctx context.Context, sessionID, userID string, plan models.VacationPlan) (string, error) {
	planID, err := r.SavePlan(ctx, plan)
	if err != nil {
		return "", err
	}
	session, err := r.GetOrCreateSession(ctx, sessionID, userID)
	if err != nil {
		return "", err
	}
	session.LastPlanID = planID
	if err := r.setJSON(ctx, sessionKeyPrefix+sessionID, session); err != nil {
		return "", err
	}
	return planID, nil
}

func (r *RedisRepository) LatestPlanForSession(ctx context.Context, sessionID, userID string) (*models.VacationPlan, error) {
	var session models.SessionState
	found, err := r.getJSON(ctx, sessionKeyPrefix+sessionID, &session)
	if err != nil {
		return nil, err
	}
	if !found || session.LastPlanID == "" {
		return nil, nil
	}
	plan, err := r.GetPlan(ctx, session.LastPlanID)
	if err == ErrPlanNotFound {
		return nil, nil
	}
	return plan, err
}

func (r *RedisRepository) SaveBooking(ctx context.Context, conf models.BookingConfirmation) error {
	if err := r.setJSON(ctx, bookingKeyPrefix+conf.BookingID, conf); err != nil {
		return err
	}
	return r.client.Set(ctx, planBookingKeyPrefix+conf.PlanID, conf.BookingID, 0).Err()
}

func (r *RedisRepository) BookingForPlan(ctx context.Context, planID string) (*models.BookingConfirmation, error) {
	bookingID, err := r.client.Get(ctx, planBookingKeyPrefix+planID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var conf models.BookingConfirmation
	found, err := r.getJSON(ctx, bookingKeyPrefix+bookingID, &conf)
	if err != nil || !found {
		return nil, err
	}
	return &conf, nil
}

func (r *RedisRepository) GetOrCreatePreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	key := prefsKeyPrefix + userID
	var prefs models.UserPreferences
	found, err := r.getJSON(ctx, key, &prefs)
	if err != nil {
		return nil, err
	}
	if found {
		return &prefs, nil
	}
	prefs = DefaultPreferences(userID)
	if err := r.setJSON(ctx, key, prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *RedisRepository) UpdatePreferences(ctx context.Context, userID string, patch models.PreferencesUpdate) (*models.UserPreferences, error) {
	prefs, err := r.GetOrCreatePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := ApplyPreferencesUpdate(*prefs, patch)
	if err := r.setJSON(ctx, prefsKeyPrefix+userID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *RedisRepository) CalendarEvents(ctx context.Context, userID string) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if _, err := r.getJSON(ctx, calendarKeyPrefix+userID, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *RedisRepository) SetCalendarEvents(ctx context.Context, userID string, events []models.CalendarEvent) error {
	return r.setJSON(ctx, calendarKeyPrefix+userID, events)
}
