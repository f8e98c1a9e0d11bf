package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ksdarko/genslip-api/internal/config"
	domainRepo "github.com/ksdarko/genslip-api/internal/domain/repository"
	"github.com/ksdarko/genslip-api/internal/presentation/http/handler"
	"github.com/ksdarko/genslip-api/internal/presentation/http/middleware"
	"github.com/ksdarko/genslip-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Receipt   *handler.ReceiptHandler
	Template  *handler.TemplateHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(rateLimiterConfig(&deps.Cfg.RateLimit))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

// rateLimiterConfig converts the env rate-limit settings into a limiter
// config. Non-positive values fall back to the defaults so a bad env value
// never yields an infinite (or zero) rate.
func rateLimiterConfig(cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	requests := cfg.Requests
	if requests <= 0 {
		requests = 100
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = 60
	}

	return middleware.RateLimiterConfig{
		RequestsPerSecond: float64(requests) / float64(duration),
		BurstSize:         requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	}
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleRedirect)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Receipts
	registerReceiptRoutes(protected, h, deps)

	// Templates
	registerTemplateRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idem := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		// Saves run through the idempotency middleware so a retried request
		// never creates a second copy of the same receipt.
		receipts.POST("", idem, h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", idem, h.Receipt.Save)
		receipts.DELETE("/:id", h.Receipt.Delete)

		// Field-level edits on a draft receipt
		receipts.PATCH("/:id/fields", idem, h.Receipt.SetField)
		receipts.POST("/:id/items", idem, h.Receipt.AddItem)
		receipts.PATCH("/:id/items/:itemId", idem, h.Receipt.UpdateItem)
		receipts.DELETE("/:id/items/:itemId", h.Receipt.RemoveItem)

		receipts.GET("/:id/totals", h.Receipt.GetTotals)
		receipts.GET("/:id/export", h.Receipt.Export)
		receipts.POST("/:id/print", idem, h.Receipt.Print)
	}
}

func registerTemplateRoutes(protected *gin.RouterGroup, h *Handlers) {
	templates := protected.Group("/templates")
	{
		templates.GET("", h.Template.List)
		templates.POST("", h.Template.Create)
		templates.GET("/:id", h.Template.Get)
		templates.DELETE("/:id", h.Template.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Receipt.PrinterStatus)
	}
}
