package repositories

import (
	"context"

	"insureportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// policyRepository implements PolicyRepository interface
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create creates a new policy. A duplicate policy_number surfaces as
// gorm.ErrDuplicatedKey for the caller's retry loop.
func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

// GetByID gets a policy by ID with the policyholder resolved
func (r *policyRepository) GetByID(ctx context.Context, id uint) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.WithContext(ctx).
		Preload("Policyholder").
		First(&policy, id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetByPolicyholder gets policies owned by a user, newest first
func (r *policyRepository) GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Policy, error) {
	var policies []*models.Policy
	err := r.db.WithContext(ctx).
		Preload("Policyholder").
		Where("policyholder_id = ?", userID).
		Order("created_at DESC").
		Find(&policies).Error
	return policies, err
}

// List lists all policies, newest first
func (r *policyRepository) List(ctx context.Context) ([]*models.Policy, error) {
	var policies []*models.Policy
	err := r.db.WithContext(ctx).
		Preload("Policyholder").
		Order("created_at DESC").
		Find(&policies).Error
	return policies, err
}
