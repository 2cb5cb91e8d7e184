package handlers

import (
	"errors"

	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles the singleton site settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the current settings, creating defaults on first read
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load settings")
	}

	return response.Success(c, "", settings)
}

// Update applies the provided fields to the settings row (admin only)
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req services.UpdateSettingsInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	settings, err := h.settingsService.Update(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptySettingsUpdate):
			return response.BadRequest(c, "No settings fields provided")
		case errors.Is(err, services.ErrInvalidRecordsPerPage):
			return response.BadRequest(c, "recordsPerPage must be between 5 and 50")
		default:
			return response.InternalServerError(c, "Failed to update settings")
		}
	}

	return response.Success(c, "Settings updated successfully", settings)
}
