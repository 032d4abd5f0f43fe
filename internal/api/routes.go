package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/config"
	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and middleware.
// Global middleware (request ID, logging, recovery, CORS) is applied to the router in main.go.
// notifier may be nil when no delivery channel is configured.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	contentService core.ContentService,
	sessionService core.SessionService,
	notifier core.Notifier,
) {
	contentHandler := NewContentHandler(contentService, appConfig.WhatsAppLink, logger)
	submissionHandler := NewSubmissionHandler(contentService, notifier, appConfig.WhatsAppLink, logger)
	sessionHandler := NewSessionHandler(sessionService, appConfig.AdminEmail, appConfig.AdminPassword, logger)
	adminHandler := NewAdminHandler(contentService, logger)
	submitLimit := middleware.NewClientRateLimiter(appConfig.RateLimitPerMinute, appConfig.RateLimitBurst).Middleware()

	apiV1 := router.Group("/api/v1")
	{
		// --- Public site ---
		apiV1.GET("/content", contentHandler.GetContent)
		apiV1.GET("/services", contentHandler.ListServices)
		apiV1.GET("/projects", contentHandler.ListProjects)
		apiV1.GET("/plans", contentHandler.ListPlans)
		apiV1.GET("/plans/:planId/link", contentHandler.GetPlanLink)
		apiV1.GET("/testimonials", contentHandler.ListTestimonials)

		apiV1.POST("/inquiries", submitLimit, submissionHandler.SubmitInquiry)
		apiV1.POST("/reviews", submitLimit, submissionHandler.SubmitReview)

		sessionGroup := apiV1.Group("/session")
		{
			sessionGroup.GET("", sessionHandler.Status)
			sessionGroup.POST("/login", submitLimit, sessionHandler.Login)
			sessionGroup.POST("/logout", sessionHandler.Logout)
		}

		// --- Management ---
		adminGroup := apiV1.Group("/admin", middleware.RequireAdmin(sessionService))
		{
			adminGroup.GET("/document", adminHandler.GetDocument)
			adminGroup.GET("/overview", adminHandler.GetOverview)
			adminGroup.GET("/inquiries", adminHandler.ListInquiries)
			adminGroup.POST("/reset", adminHandler.Reset)

			servicesGroup := adminGroup.Group("/services")
			{
				servicesGroup.POST("", adminHandler.CreateService)
				servicesGroup.PUT("/:id", adminHandler.UpdateService)
				servicesGroup.DELETE("/:id", adminHandler.DeleteService)
			}

			projectsGroup := adminGroup.Group("/projects")
			{
				projectsGroup.POST("", adminHandler.CreateProject)
				projectsGroup.PUT("/:id", adminHandler.UpdateProject)
				projectsGroup.DELETE("/:id", adminHandler.DeleteProject)
				projectsGroup.POST("/:id/featured", adminHandler.ToggleProjectFeatured)
			}

			adminGroup.PUT("/plans/:id", adminHandler.UpdatePlan)

			testimonialsGroup := adminGroup.Group("/testimonials")
			{
				testimonialsGroup.POST("", adminHandler.CreateTestimonial)
				testimonialsGroup.PUT("/:id", adminHandler.UpdateTestimonial)
				testimonialsGroup.DELETE("/:id", adminHandler.DeleteTestimonial)
			}
		}
	}

	router.GET("/health", func(c *gin.Context) {
		status := "UP"
		code := http.StatusOK
		if !contentService.Ready() {
			status, code = "LOADING", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "StarterKart backend"})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
