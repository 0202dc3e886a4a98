package handlers

import (
	"net/http"

	"voyago/config"

	"github.com/gin-gonic/gin"
)

// HandleHealth reports liveness and the configured model.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"model":  config.AppConfig.GeminiModel,
	})
}
