// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/agent"
	"voyago/services/booking"
	"voyago/services/calendar"
	"voyago/services/preferences"
	"voyago/services/travel"
	"voyago/storage"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Store backend: in-memory by default, Redis when configured.
	var repo storage.Repository
	switch config.AppConfig.StoreBackend {
	case "redis":
		repo = storage.NewRedisRepository(utils.GetStoreClient())
	default:
		repo = storage.NewMemoryRepository()
	}

	// Domain services.
	prefsService := &preferences.DefaultService{Repo: repo}
	calendarService := &calendar.DefaultService{Repo: repo}
	travelService := &travel.DefaultSearchService{}

	// The LLM collaborator.
	if config.AppConfig.GeminiAPIKey == "" {
		logger.Sugar().Fatal("main: GEMINI_API_KEY is required")
	}
	provider, err := agent.NewGeminiProvider(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini provider: %v", err)
	}

	engine := &agent.DefaultEngine{
		Provider: provider,
		Tools: &agent.Toolset{
			Preferences: prefsService,
			Calendar:    calendarService,
			Travel:      travelService,
		},
		Limits: agent.Limits{
			Requests:  config.AppConfig.AgentRequestLimit,
			ToolCalls: config.AppConfig.AgentToolCallLimit,
		},
		Logger: logger,
	}

	bookingService := &booking.DefaultService{Repo: repo, Logger: logger}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Chat:        handlers.NewChatHandler(engine, repo, logger),
		Booking:     handlers.NewBookingHandler(bookingService, repo, logger),
		Preferences: handlers.NewPreferencesHandler(prefsService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
