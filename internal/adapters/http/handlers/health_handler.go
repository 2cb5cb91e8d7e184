package handlers

import (
	"insureportal/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports service and database health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	overall := "ok"
	dbStatus := "ok"
	status := fiber.StatusOK
	if err := config.HealthCheck(); err != nil {
		overall = "degraded"
		dbStatus = "unavailable"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"database": dbStatus,
	})
}
