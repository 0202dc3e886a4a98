package preferences

import (
	"context"

	"voyago/models"
	"voyago/storage"
)

// Service exposes preference reads and partial updates. Preferences are
// created lazily with defaults and never deleted.
type Service interface {
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
	Update(ctx context.Context, userID string, patch models.PreferencesUpdate) (*models.UserPreferences, error)
}

// DefaultService is the store-backed implementation.
type DefaultService struct {
	Repo storage.Repository
}

func (s *DefaultService) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	return s.Repo.GetOrCreatePreferences(ctx, userID)
}

func (s *DefaultService) Update(ctx context.Context, userID string, patch models.PreferencesUpdate) (*models.UserPreferences, error) {
	return s.Repo.UpdatePreferences(ctx, userID, patch)
}
