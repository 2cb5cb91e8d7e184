package repositories

import (
	"context"
	"time"

	"insureportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// claimRepository implements ClaimRepository interface
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// Create creates a new claim. A duplicate claim_number surfaces as
// gorm.ErrDuplicatedKey for the caller's retry loop.
func (r *claimRepository) Create(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetByID gets a claim by ID with relations resolved
func (r *claimRepository) GetByID(ctx context.Context, id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).
		Preload("Policy").
		Preload("Policyholder").
		Preload("SupportingDocuments").
		Preload("Notes").
		First(&claim, id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByPolicyholder gets claims filed by a user, newest claim date first
func (r *claimRepository) GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Claim, error) {
	var claims []*models.Claim
	err := r.db.WithContext(ctx).
		Preload("Policy").
		Preload("Policyholder").
		Where("policyholder_id = ?", userID).
		Order("claim_date DESC").
		Find(&claims).Error
	return claims, err
}

// List lists all claims, newest claim date first
func (r *claimRepository) List(ctx context.Context) ([]*models.Claim, error) {
	var claims []*models.Claim
	err := r.db.WithContext(ctx).
		Preload("Policy").
		Preload("Policyholder").
		Order("claim_date DESC").
		Find(&claims).Error
	return claims, err
}

// UpdateStatus applies a status transition as a single UPDATE.
// Concurrent transitions on the same claim are last-write-wins.
// The row count is not inspected: MySQL reports rows changed, not
// rows matched, so a repeat decision writing identical values would
// look like a missing row. Callers load the claim first.
func (r *claimRepository) UpdateStatus(ctx context.Context, id uint, status string, processedBy uint, processedAt time.Time, rejectionReason string) error {
	return r.db.WithContext(ctx).Model(&models.Claim{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           status,
			"processed_by":     processedBy,
			"processed_at":     processedAt,
			"rejection_reason": rejectionReason,
		}).Error
}

// AddDocument appends a supporting document to a claim
func (r *claimRepository) AddDocument(ctx context.Context, doc *models.ClaimDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// AddNote appends a note to a claim
func (r *claimRepository) AddNote(ctx context.Context, note *models.ClaimNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}
