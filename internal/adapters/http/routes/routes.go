package routes

import (
	"time"

	"insureportal/internal/adapters/http/handlers"
	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/config"
	"insureportal/internal/core/services"
	"insureportal/internal/events"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, cache *redis.Client, publisher *events.Publisher) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)
	claimRepo := repositories.NewClaimRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	policyService := services.NewPolicyService(policyRepo, userRepo)
	claimService := services.NewClaimService(claimRepo, policyRepo, publisher)
	paymentService := services.NewPaymentService(paymentRepo, policyRepo, claimService)
	settingsService := services.NewSettingsService(settingsRepo)
	dashboardService := services.NewDashboardService(db, cache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	claimHandler := handlers.NewClaimHandler(claimService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check
	app.Get("/health", healthHandler.Check)

	// API routes
	api := app.Group("/api")

	auth := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.AdminOnly()

	// Auth routes - rate limited, never cached
	authRoutes := api.Group("/auth", middleware.NoCacheHeaders())
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/forgot-password", middleware.StrictRateLimiter(), authHandler.ForgotPassword)
	authRoutes.Post("/reset-password", middleware.StrictRateLimiter(), authHandler.ResetPassword)
	authRoutes.Get("/me", auth, authHandler.Me)
	authRoutes.Put("/profile", auth, userHandler.UpdateProfile)

	// Policy routes. "/user" is registered ahead of "/:id" so it is
	// matched as a literal segment.
	policyRoutes := api.Group("/policies", auth)
	policyRoutes.Post("/", policyHandler.Create)
	policyRoutes.Get("/user", policyHandler.ListMine)
	policyRoutes.Get("/", adminOnly, policyHandler.ListAll)
	policyRoutes.Get("/:id", policyHandler.Get)

	// Claim routes
	claimRoutes := api.Group("/claims", auth)
	claimRoutes.Post("/", claimHandler.Create)
	claimRoutes.Get("/user", claimHandler.ListMine)
	claimRoutes.Get("/", adminOnly, claimHandler.ListAll)
	claimRoutes.Get("/:id", claimHandler.Get)
	claimRoutes.Put("/:id/status", adminOnly, claimHandler.UpdateStatus)
	claimRoutes.Post("/:id/notes", claimHandler.AddNote)
	claimRoutes.Post("/:id/documents", claimHandler.AddDocument)

	// Payment routes
	paymentRoutes := api.Group("/payments", auth)
	paymentRoutes.Get("/user", paymentHandler.ListMine)
	paymentRoutes.Get("/", adminOnly, paymentHandler.ListAll)
	paymentRoutes.Post("/", adminOnly, paymentHandler.Record)

	// Settings routes
	settingsRoutes := api.Group("/settings", auth, adminOnly, middleware.NoCacheHeaders())
	settingsRoutes.Get("/", settingsHandler.Get)
	settingsRoutes.Put("/", settingsHandler.Update)

	// Admin user management
	adminUsers := api.Group("/admin/users", auth, adminOnly)
	adminUsers.Get("/", userHandler.List)
	adminUsers.Get("/:id", userHandler.Get)
	adminUsers.Put("/:id", userHandler.Update)
	adminUsers.Delete("/:id", userHandler.Delete)

	// Admin dashboard
	api.Get("/dashboard/admin", auth, adminOnly, middleware.PrivateCacheHeaders(30*time.Second), dashboardHandler.Stats)
}
