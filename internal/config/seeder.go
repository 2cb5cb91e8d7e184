package config

import (
	"log"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedSettings(); err != nil {
		log.Printf("⚠️ Settings seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	// Check if admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     "admin@insureportal.example.com",
		Password:  hashedPassword,
		Role:      "admin",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedSettings makes sure the singleton settings row exists
func (s *Seeder) seedSettings() error {
	settings := &models.Settings{
		SiteName:        "Insurance Portal",
		MaintenanceMode: false,
		RecordsPerPage:  10,
	}
	return s.db.
		Where("id = ?", 1).
		Attrs(models.Settings{ID: 1}).
		FirstOrCreate(settings).Error
}
