package handlers

import (
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin overview
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the dashboard counters (admin only)
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard stats")
	}

	return response.Success(c, "", stats)
}
