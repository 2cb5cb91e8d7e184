package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/http/routes"
	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/config"
	"insureportal/internal/core/services"
	"insureportal/internal/events"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default admin and settings
	seeder := config.NewSeeder(db)
	if err := seeder.Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start cron service for background maintenance
	cronService := services.NewCronService(repositories.NewUserRepository(db))
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	// Redis cache (nil when unavailable; dashboard reads fall through
	// to the database)
	cache := config.NewRedisClient(cfg)

	// Claim event publisher (nil when RABBITMQ_URL is unset)
	publisher := events.NewPublisher(cfg.AMQP.URL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Insurance Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass dependencies for injection)
	routes.Setup(app, db, cfg, cache, publisher)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
