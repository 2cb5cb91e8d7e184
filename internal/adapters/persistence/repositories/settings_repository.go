package repositories

import (
	"context"

	"insureportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first access. FirstOrCreate leans on the store's upsert atomicity
// rather than an application-level existence check.
func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	settings := &models.Settings{
		SiteName:        "Insurance Portal",
		MaintenanceMode: false,
		RecordsPerPage:  10,
	}
	err := r.db.WithContext(ctx).
		Where("id = ?", 1).
		Attrs(models.Settings{ID: 1}).
		FirstOrCreate(settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update persists changes to the singleton settings row
func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
