package booking

import (
	"context"
	"strings"
	"time"

	"voyago/models"
	"voyago/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book resolves the plan, checks ownership, and records a confirmation with
// synthesized codes and the plan's total. At most one confirmation may ever
// exist per plan.
//
// A real system would validate the payment token with a provider and call
// airline/hotel booking APIs; here the token is accepted and never inspected.
func (s *DefaultService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	plan, err := s.Repo.GetPlan(ctx, req.PlanID)
	if err == storage.ErrPlanNotFound {
		return nil, NewNotFound("plan %s not found", req.PlanID)
	}
	if err != nil {
		return nil, err
	}

	if plan.UserID != req.UserID {
		return nil, NewOwnershipMismatch("plan %s does not belong to this user", req.PlanID)
	}

	if existing, err := s.Repo.BookingForPlan(ctx, req.PlanID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, NewAlreadyBooked("plan %s already has confirmation %s", req.PlanID, existing.BookingID)
	}

	bookingID := uuid.New().String()
	raw := strings.ToUpper(strings.ReplaceAll(bookingID, "-", ""))
	conf := models.BookingConfirmation{
		BookingID:              bookingID,
		UserID:                 req.UserID,
		SessionID:              req.SessionID,
		PlanID:                 req.PlanID,
		FlightConfirmationCode: "FL-" + raw[:8],
		HotelConfirmationCode:  "HT-" + raw[8:16],
		TotalCharged:           plan.EstimatedTotalCost,
		Currency:               plan.Currency,
		CreatedAt:              time.Now().UTC(),
	}
	if err := s.Repo.SaveBooking(ctx, conf); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.Info("booking confirmed",
			zap.String("booking_id", bookingID),
			zap.String("plan_id", req.PlanID),
			zap.String("user_id", req.UserID))
	}
	return &conf, nil
}
