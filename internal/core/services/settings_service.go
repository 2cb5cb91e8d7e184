package services

import (
	"context"
	"errors"
	"strings"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
)

// Settings errors
var (
	ErrInvalidRecordsPerPage = errors.New("recordsPerPage must be between 5 and 50")
	ErrEmptySettingsUpdate   = errors.New("no settings fields provided")
)

// Bounds on the configurable page size.
const (
	minRecordsPerPage = 5
	maxRecordsPerPage = 50
)

// SettingsService manages the singleton site settings
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateSettingsInput represents settings update input. Pointer fields
// distinguish "not sent" from zero values.
type UpdateSettingsInput struct {
	SiteName        *string `json:"siteName"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
	RecordsPerPage  *int    `json:"recordsPerPage"`
}

// Get returns the settings row, creating it with defaults on first read
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update applies the provided fields to the singleton settings row. An
// update carrying no fields at all is rejected.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*models.Settings, error) {
	if input.SiteName == nil && input.MaintenanceMode == nil && input.RecordsPerPage == nil {
		return nil, ErrEmptySettingsUpdate
	}
	if input.RecordsPerPage != nil {
		if *input.RecordsPerPage < minRecordsPerPage || *input.RecordsPerPage > maxRecordsPerPage {
			return nil, ErrInvalidRecordsPerPage
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		if name := strings.TrimSpace(*input.SiteName); name != "" {
			settings.SiteName = name
		}
	}
	if input.MaintenanceMode != nil {
		settings.MaintenanceMode = *input.MaintenanceMode
	}
	if input.RecordsPerPage != nil {
		settings.RecordsPerPage = *input.RecordsPerPage
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
