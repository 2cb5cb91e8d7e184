package repositories

import (
	"context"

	"insureportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create appends a payment to the ledger. A duplicate payment_number
// surfaces as gorm.ErrDuplicatedKey for the caller's retry loop.
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByPolicyholder gets payments for a user, newest payment date first
func (r *paymentRepository) GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Preload("Policy").
		Preload("Policyholder").
		Where("policyholder_id = ?", userID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

// List lists all payments, newest payment date first
func (r *paymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Preload("Policy").
		Preload("Policyholder").
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}
