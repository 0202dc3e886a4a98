package routes

import (
	"time"

	"voyago/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers for registration.
type HandlerBundle struct {
	Chat        *handlers.ChatHandler
	Booking     *handlers.BookingHandler
	Preferences *handlers.PreferencesHandler
}

// RegisterPlannerRoutes registers the conversational planner endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.Chat.HandleChat)
		api.POST("/book", hb.Booking.HandleBook)
		api.GET("/preferences/:userId", hb.Preferences.HandleGet)
		api.PUT("/preferences/:userId", hb.Preferences.HandleUpdate)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HandleHealth)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlannerRoutes(r, hb)
	RegisterHealthRoute(r)
}
