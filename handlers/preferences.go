package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/preferences"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler reads and partially updates per-user preferences.
type PreferencesHandler struct {
	Svc preferences.Service
}

func NewPreferencesHandler(svc preferences.Service) *PreferencesHandler {
	return &PreferencesHandler{Svc: svc}
}

func (h *PreferencesHandler) HandleGet(c *gin.Context) {
	userID := c.Param("userId")
	prefs, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PreferencesResponse{Preferences: *prefs})
}

func (h *PreferencesHandler) HandleUpdate(c *gin.Context) {
	userID := c.Param("userId")
	var patch models.PreferencesUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid preferences update", err.Error())
		return
	}
	prefs, err := h.Svc.Update(c.Request.Context(), userID, patch)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PreferencesResponse{Preferences: *prefs})
}
