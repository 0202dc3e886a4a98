package booking

import (
	"context"

	"voyago/models"
	"voyago/storage"

	"go.uber.org/zap"
)

// Service performs the simulated booking of a stored plan.
type Service interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// DefaultService implements Service against the store.
type DefaultService struct {
	Repo   storage.Repository
	Logger *zap.Logger
}
