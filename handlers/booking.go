package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/booking"
	"voyago/storage"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler confirms a booking for the latest plan in a session. It is
// only meant to be called after the user explicitly confirmed.
type BookingHandler struct {
	Svc    booking.Service
	Repo   storage.Repository
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.Service, repo storage.Repository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Repo: repo, Logger: logger}
}

func (h *BookingHandler) HandleBook(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	ctx := c.Request.Context()
	session, err := h.Repo.GetOrCreateSession(ctx, req.SessionID, req.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to open session", err.Error())
		return
	}
	if session.LastPlanID == "" {
		utils.JSONErrorCode(c, http.StatusBadRequest, booking.CodeNotFound, "no plan available to book in this session")
		return
	}

	conf, err := h.Svc.Book(ctx, models.BookingRequest{
		UserID:       req.UserID,
		SessionID:    req.SessionID,
		PaymentToken: req.PaymentToken,
		PlanID:       session.LastPlanID,
	})
	if err != nil {
		code := booking.ErrorCode(err)
		switch code {
		case booking.CodeOwnershipMismatch:
			utils.JSONErrorCode(c, http.StatusForbidden, code, "plan does not belong to this user")
		case booking.CodeNotFound:
			utils.JSONErrorCode(c, http.StatusNotFound, code, "plan not found")
		case booking.CodeAlreadyBooked:
			utils.JSONErrorCode(c, http.StatusConflict, code, "plan is already booked")
		default:
			h.Logger.Error("booking failed", zap.String("session_id", req.SessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, models.BookResponse{
		SessionID:    req.SessionID,
		UserID:       req.UserID,
		Confirmation: *conf,
	})
}
