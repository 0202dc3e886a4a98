package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/agent"
	"voyago/storage"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler runs one turn of the planning agent per request.
type ChatHandler struct {
	Engine agent.Engine
	Repo   storage.Repository
	Logger *zap.Logger
}

func NewChatHandler(engine agent.Engine, repo storage.Repository, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Engine: engine, Repo: repo, Logger: logger}
}

// HandleChat is the main entrypoint for the conversational planner. It loads
// the session's latest plan as context, runs the turn, and persists the
// updated plan only after the turn reached its terminal state, so an aborted
// turn never leaves a partially attached plan behind.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Repo.GetOrCreateSession(ctx, req.SessionID, req.UserID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to open session", err.Error())
		return
	}

	currentPlan, err := h.Repo.LatestPlanForSession(ctx, req.SessionID, req.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session plan", err.Error())
		return
	}

	out, err := h.Engine.RunTurn(ctx, agent.TurnInput{
		UserMessage:  req.Message,
		UserID:       req.UserID,
		AllowBooking: req.AllowBooking,
		CurrentPlan:  currentPlan,
	})
	if err != nil {
		h.Logger.Error("turn failed",
			zap.String("session_id", req.SessionID),
			zap.String("user_id", req.UserID),
			zap.Error(err))
		status := http.StatusBadGateway
		if code := agent.TurnErrorCode(err); code != "" {
			utils.JSONErrorCode(c, status, code, "planning turn aborted")
			return
		}
		utils.JSONError(c, status, "planning turn failed", err.Error())
		return
	}

	if out.UpdatedPlan != nil {
		if _, err := h.Repo.AttachPlanToSession(ctx, req.SessionID, req.UserID, *out.UpdatedPlan); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to store plan", err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID:                 req.SessionID,
		UserID:                    req.UserID,
		AssistantMessage:          out.AssistantMessage,
		Plan:                      out.UpdatedPlan,
		AskForBookingConfirmation: out.AskForBookingConfirmation,
	})
}
