package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/bohoja-backend/config"
	"github.com/ikkim/bohoja-backend/internal/app/controller"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/internal/middleware"
	"github.com/ikkim/bohoja-backend/internal/router"
	"github.com/ikkim/bohoja-backend/internal/scheduler"
	"github.com/ikkim/bohoja-backend/internal/storage"
	"github.com/ikkim/bohoja-backend/internal/websocket"
	"github.com/ikkim/bohoja-backend/pkg/gemini"
	"github.com/ikkim/bohoja-backend/pkg/logger"
	"github.com/ikkim/bohoja-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting BOHOJA Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Token revocation list: Redis when configured, otherwise in memory
	var blacklist redis.TokenBlacklist
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", err, map[string]interface{}{
				"addr": cfg.Redis.Addr(),
			})
		}
		defer client.Close()
		blacklist = redis.NewRedisBlacklist(client)
	} else {
		logger.Warn("REDIS_HOST not set, keeping revoked tokens in memory")
		blacklist = redis.NewMemoryBlacklist()
	}

	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, AI chat will answer with the fallback message")
	}

	userStore := store.NewUserStore()
	appMetrics := metrics.New()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	// Initialize services
	notificationService := service.NewNotificationService(userStore, hub, appMetrics)
	signupService := service.NewSignupService(userStore, notificationService, appMetrics)
	authService := service.NewAuthService(userStore, blacklist, appMetrics, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	benefitService := service.NewBenefitService(userStore, appMetrics)
	recommendationService := service.NewRecommendationService(userStore, appMetrics)
	historyService := service.NewHistoryService(userStore, cfg.Care.ExpectedMonthlyCost)
	prescriptionService := service.NewPrescriptionService(userStore)
	facilityService := service.NewFacilityService()
	chatService := service.NewChatService(userStore, gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	}), appMetrics)

	// Initialize controllers
	signupController := controller.NewSignupController(signupService)
	authController := controller.NewAuthController(authService)
	benefitController := controller.NewBenefitController(benefitService)
	recommendationController := controller.NewRecommendationController(recommendationService)
	historyController := controller.NewHistoryController(historyService)
	prescriptionController := controller.NewPrescriptionController(prescriptionService)
	facilityController := controller.NewFacilityController(facilityService)
	chatController := controller.NewChatController(chatService)
	notificationController := controller.NewNotificationController(notificationService, hub, cfg.CORS.AllowedOrigins)
	uploadController := controller.NewUploadController(storage.NewS3Storage(ctx, cfg.S3))

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, blacklist, userStore)

	// Setup router
	r := router.NewRouter(
		signupController,
		authController,
		benefitController,
		recommendationController,
		historyController,
		prescriptionController,
		facilityController,
		chatController,
		notificationController,
		uploadController,
		authMiddleware,
		appMetrics,
		cfg,
	)
	engine := r.Setup()

	reminders := scheduler.NewReminderScheduler(cfg.Scheduler.DeadlineReminderSpec, notificationService, signupService)
	if err := reminders.Start(); err != nil {
		logger.Fatal("Failed to start reminder scheduler", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	reminders.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	cancel()

	logger.Info("Server stopped successfully")
}
