// File: lillia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lillia/config"
	"lillia/cron"
	"lillia/database"
	appointmentRepo "lillia/database/repository/appointment"
	profileRepo "lillia/database/repository/profile"
	"lillia/handlers"
	"lillia/middleware"
	"lillia/models"
	"lillia/routes"
	"lillia/services/deeplink"
	"lillia/services/notification"
	"lillia/services/scheduling"
	"lillia/services/tasks"
	"lillia/services/wizard"
	"lillia/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profiles := profileRepo.NewMongoProfileRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	bookingBackend := scheduling.NewDefaultBackend(appointments, tasks.NewAsynqScheduler())
	cron.InitReminderWorker(profiles, appointments)
	assigner := &scheduling.DefaultAssigner{
		Nutritionist: models.Nutritionist{
			ID:          config.AppConfig.NutritionistID,
			Name:        config.AppConfig.NutritionistName,
			CalendarRef: config.AppConfig.NutritionistCalendar,
		},
	}

	wizardService := &wizard.DefaultWizardService{
		Store:    sessionStore,
		Notifier: notification.NewDefaultEmailService(),
		Profiles: profiles,
		Assigner: assigner,
		Booking:  bookingBackend,
		Links: deeplink.Generator{
			Scheme: config.AppConfig.AppScheme,
			Source: config.AppConfig.DeepLinkSource,
		},
		Timers:    wizard.NewTimerRegistry(config.AppConfig.ResendCooldownSec),
		RunTimers: true,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)

	// Register routes.
	routes.RegisterRoutes(router, wizardHandler)

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
