package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	apierrors "github.com/SallahBoussettah/portfolio-api/internal/errors"
	"github.com/SallahBoussettah/portfolio-api/internal/middleware"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       *services.AuthService
	Project    *services.ProjectService
	Art        *services.ArtService
	Education  *services.EducationService
	Experience *services.ExperienceService
	TechStack  *services.TechStackService
	Setting    *services.SettingService
	Contact    *services.ContactService
	Upload     *services.UploadService
}

// NewRouter builds the full route table. Public reads sit next to their
// admin counterparts; everything under an /admin segment requires a bearer
// token.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	globalLimiter := middleware.NewRateLimiter(100, 15*time.Minute)
	loginLimiter := middleware.NewRateLimiter(5, 15*time.Minute)
	contactLimiter := middleware.NewRateLimiter(5, time.Hour)

	authHandler := NewAuthHandler(svc.Auth)
	projectHandler := NewProjectHandler(svc.Project)
	artHandler := NewArtHandler(svc.Art)
	educationHandler := NewEducationHandler(svc.Education)
	experienceHandler := NewExperienceHandler(svc.Experience)
	techStackHandler := NewTechStackHandler(svc.TechStack)
	settingHandler := NewSettingHandler(svc.Setting)
	contactHandler := NewContactHandler(svc.Contact)
	uploadHandler := NewUploadHandler(svc.Upload)

	requireAuth := middleware.RequireAuth(svc.Auth)

	// Uploaded images are immutable; their names embed a timestamp and a
	// random suffix, so long-lived caching is safe.
	router.Group("/uploads", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Next()
	}).Static("/", cfg.UploadDir)

	api := router.Group("/api")
	api.Use(globalLimiter.Middleware(apierrors.ErrCodeTooManyRequests))

	api.GET("/health", func(c *gin.Context) {
		environment := "development"
		if cfg.IsProduction() {
			environment = "production"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": environment,
		})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(apierrors.ErrCodeTooManyAttempts), authHandler.Login)
		auth.GET("/verify", requireAuth, authHandler.Verify)
		auth.PUT("/password", requireAuth, authHandler.ChangePassword)
		auth.POST("/reset-password/request", loginLimiter.Middleware(apierrors.ErrCodeTooManyAttempts), authHandler.RequestReset)
		auth.POST("/reset-password", loginLimiter.Middleware(apierrors.ErrCodeTooManyAttempts), authHandler.ResetPassword)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.GET("/admin/all", requireAuth, projectHandler.ListAdmin)
		projects.GET("/admin/:slug", requireAuth, projectHandler.GetBySlugAdmin)
		projects.GET("/:slug", projectHandler.GetBySlug)
		projects.POST("/:id/like", projectHandler.Like)
		projects.POST("", requireAuth, projectHandler.Create)
		projects.PUT("/bulk", requireAuth, projectHandler.BulkUpdate)
		projects.PUT("/:id", requireAuth, projectHandler.Update)
		projects.DELETE("/:id", requireAuth, projectHandler.Delete)
	}

	art := api.Group("/art")
	{
		art.GET("", artHandler.List)
		art.GET("/admin/all", requireAuth, artHandler.ListAdmin)
		art.GET("/admin/:slug", requireAuth, artHandler.GetBySlugAdmin)
		art.GET("/:slug", artHandler.GetBySlug)
		art.POST("/:id/like", artHandler.Like)
		art.POST("", requireAuth, artHandler.Create)
		art.PUT("/:id", requireAuth, artHandler.Update)
		art.DELETE("/:id", requireAuth, artHandler.Delete)
	}

	education := api.Group("/education")
	{
		education.GET("", educationHandler.List)
		education.GET("/admin/all", requireAuth, educationHandler.ListAdmin)
		education.POST("", requireAuth, educationHandler.Create)
		education.PUT("/reorder", requireAuth, educationHandler.Reorder)
		education.PUT("/:id", requireAuth, educationHandler.Update)
		education.DELETE("/:id", requireAuth, educationHandler.Delete)
	}

	experience := api.Group("/experience")
	{
		experience.GET("", experienceHandler.List)
		experience.GET("/admin/all", requireAuth, experienceHandler.ListAdmin)
		experience.POST("", requireAuth, experienceHandler.Create)
		experience.PUT("/reorder", requireAuth, experienceHandler.Reorder)
		experience.PUT("/:id", requireAuth, experienceHandler.Update)
		experience.DELETE("/:id", requireAuth, experienceHandler.Delete)
	}

	techstack := api.Group("/techstack")
	{
		techstack.GET("", techStackHandler.List)
		techstack.GET("/admin/all", requireAuth, techStackHandler.ListAdmin)
		techstack.POST("", requireAuth, techStackHandler.Create)
		techstack.PUT("/reorder", requireAuth, techStackHandler.Reorder)
		techstack.PUT("/:id", requireAuth, techStackHandler.Update)
		techstack.DELETE("/:id", requireAuth, techStackHandler.Delete)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", settingHandler.List)
		settings.GET("/admin/all", requireAuth, settingHandler.ListAdmin)
		settings.GET("/admin/:key", requireAuth, settingHandler.GetAdmin)
		settings.GET("/:key", settingHandler.Get)
		settings.POST("", requireAuth, settingHandler.Create)
		settings.PUT("/bulk", requireAuth, settingHandler.BulkUpdate)
		settings.PUT("/:key", requireAuth, settingHandler.Update)
		settings.DELETE("/:key", requireAuth, settingHandler.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactLimiter.Middleware(apierrors.ErrCodeTooManyRequests), contactHandler.Submit)
		contact.GET("", requireAuth, contactHandler.List)
		contact.GET("/:id", requireAuth, contactHandler.Get)
		contact.PUT("/:id", requireAuth, contactHandler.UpdateStatus)
		contact.DELETE("/:id", requireAuth, contactHandler.Delete)
	}

	uploads := api.Group("/uploads")
	uploads.Use(requireAuth)
	{
		uploads.POST("", uploadHandler.Upload)
		uploads.DELETE("", uploadHandler.Delete)
	}

	return router
}
