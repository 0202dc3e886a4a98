package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"voyago/handlers"
	"voyago/models"
	"voyago/services/booking"
	"voyago/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookRouter(repo storage.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := &booking.DefaultService{Repo: repo, Logger: zap.NewNop()}
	h := handlers.NewBookingHandler(svc, repo, zap.NewNop())
	r.POST("/api/book", h.HandleBook)
	return r
}

func bookPayload(userID string) map[string]any {
	return map[string]any{
		"session_id":    "s1",
		"user_id":       userID,
		"payment_token": "tok_demo",
	}
}

func attachedPlan(t *testing.T, repo storage.Repository, ownerID string) {
	t.Helper()
	_, err := repo.AttachPlanToSession(context.Background(), "s1", ownerID, models.VacationPlan{
		UserID:             ownerID,
		DestinationCity:    "Tokyo",
		StartDate:          models.NewDate(2025, time.March, 5),
		EndDate:            models.NewDate(2025, time.March, 10),
		EstimatedTotalCost: 700,
		Currency:           "USD",
		Status:             models.PlanStatusPlanned,
	})
	require.NoError(t, err)
}

// TestHandleBookConfirms checks the happy path returns the stored
// confirmation for the session's latest plan.
func TestHandleBookConfirms(t *testing.T) {
	repo := storage.NewMemoryRepository()
	attachedPlan(t, repo, "u1")

	w := postJSON(t, bookRouter(repo), "/api/book", bookPayload("u1"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "s1", resp.SessionID)
	require.NotEmpty(t, resp.Confirmation.BookingID)
	require.InDelta(t, 700.0, resp.Confirmation.TotalCharged, 0.001)
}

// TestHandleBookWithoutPlan checks a session that never produced a plan is a
// client error, not a lookup miss.
func TestHandleBookWithoutPlan(t *testing.T) {
	repo := storage.NewMemoryRepository()

	w := postJSON(t, bookRouter(repo), "/api/book", bookPayload("u1"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, booking.CodeNotFound, resp.Code)
}

// TestHandleBookForeignPlan checks booking another user's plan is forbidden.
func TestHandleBookForeignPlan(t *testing.T) {
	repo := storage.NewMemoryRepository()
	attachedPlan(t, repo, "u1")

	w := postJSON(t, bookRouter(repo), "/api/book", bookPayload("u2"))
	require.Equal(t, http.StatusForbidden, w.Code)
}

// TestHandleBookTwice checks the second attempt on the same plan conflicts.
func TestHandleBookTwice(t *testing.T) {
	repo := storage.NewMemoryRepository()
	attachedPlan(t, repo, "u1")
	router := bookRouter(repo)

	first := postJSON(t, router, "/api/book", bookPayload("u1"))
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(t, router, "/api/book", bookPayload("u1"))
	require.Equal(t, http.StatusConflict, second.Code)
}

// TestHandleBookRejectsMalformedRequest checks a missing payment token fails
// validation.
func TestHandleBookRejectsMalformedRequest(t *testing.T) {
	repo := storage.NewMemoryRepository()

	w := postJSON(t, bookRouter(repo), "/api/book", map[string]any{"session_id": "s1", "user_id": "u1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
