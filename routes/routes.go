package routes

import (
	"net/http"
	"time"

	"lillia/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterOnboardingRoutes sets up the endpoints for the wizard engine.
func RegisterOnboardingRoutes(r *gin.Engine, wh *handlers.WizardHandler) {
	api := r.Group("/api/onboarding")
	{
		api.POST("/session", wh.StartSession)
		api.GET("/session/:sessionID", wh.GetSession)
		api.POST("/session/:sessionID/details", wh.SubmitDetails)
		api.POST("/session/:sessionID/otp/verify", wh.VerifyOTP)
		api.POST("/session/:sessionID/otp/resend", wh.ResendOTP)
		api.GET("/session/:sessionID/slots", wh.GetSlots)
		api.POST("/session/:sessionID/slot", wh.SelectSlot)
		api.POST("/session/:sessionID/confirm", wh.ConfirmBooking)
		api.POST("/session/:sessionID/reset", wh.Reset)
		api.GET("/session/:sessionID/completion", wh.Completion)
	}
}

// RegisterProgramRoutes registers the program catalog endpoint.
func RegisterProgramRoutes(r *gin.Engine) {
	r.GET("/api/programs", handlers.ListProgramsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lillia"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, wh *handlers.WizardHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterOnboardingRoutes(r, wh)
	RegisterProgramRoutes(r)
	RegisterHealthRoute(r)
}
