package repositories

import (
	"context"
	"time"

	"insureportal/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// PolicyRepository defines policy repository interface
type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	GetByID(ctx context.Context, id uint) (*models.Policy, error)
	GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Policy, error)
	List(ctx context.Context) ([]*models.Policy, error)
}

// ClaimRepository defines claim repository interface. Status updates go
// through UpdateStatus so a transition is a single UPDATE statement.
type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, id uint) (*models.Claim, error)
	GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Claim, error)
	List(ctx context.Context) ([]*models.Claim, error)
	UpdateStatus(ctx context.Context, id uint, status string, processedBy uint, processedAt time.Time, rejectionReason string) error
	AddDocument(ctx context.Context, doc *models.ClaimDocument) error
	AddNote(ctx context.Context, note *models.ClaimNote) error
}

// PaymentRepository defines payment repository interface. The ledger is
// append-only: no update or delete methods exist.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByPolicyholder(ctx context.Context, userID uint) ([]*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
}

// SettingsRepository defines settings repository interface
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}
