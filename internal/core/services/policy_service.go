package services

import (
	"context"
	"errors"
	"log"
	"time"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/core/domain"
	"insureportal/internal/pkg/refnum"

	"gorm.io/gorm"
)

// Policy errors
var (
	ErrPolicyNotFound   = errors.New("policy not found")
	ErrInvalidPolicy    = errors.New("invalid policy data")
	ErrPolicyDateOrder  = errors.New("policy end date must be after start date")
	ErrPolicyholderGone = errors.New("policyholder not found")
)

// PolicyService handles policy lifecycle
type PolicyService struct {
	policyRepo repositories.PolicyRepository
	userRepo   repositories.UserRepository
}

// NewPolicyService creates a new policy service
func NewPolicyService(policyRepo repositories.PolicyRepository, userRepo repositories.UserRepository) *PolicyService {
	return &PolicyService{
		policyRepo: policyRepo,
		userRepo:   userRepo,
	}
}

// CreatePolicyInput represents policy creation input
type CreatePolicyInput struct {
	PolicyholderID    uint      `json:"policyholder_id"`
	PolicyType        string    `json:"policy_type"`
	CoverageAmount    float64   `json:"coverage_amount"`
	PremiumAmount     float64   `json:"premium_amount"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Description       string    `json:"description"`
	TermsConditions   string    `json:"terms_conditions"`
	PolicyDocumentURL string    `json:"policy_document_url"`
}

// Create issues a new policy for a policyholder. The policy number is
// generated server-side; a unique-index collision triggers regeneration
// up to maxNumberAttempts.
func (s *PolicyService) Create(ctx context.Context, actor domain.Actor, input *CreatePolicyInput) (*models.Policy, error) {
	if input.PolicyType == "" || input.CoverageAmount <= 0 || input.PremiumAmount <= 0 {
		return nil, ErrInvalidPolicy
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrPolicyDateOrder
	}

	// The policyholder defaults to the acting user; an explicit target
	// covers the admin-on-behalf-of case. No ownership check is applied
	// to an explicit target beyond the reference resolving.
	if input.PolicyholderID == 0 {
		input.PolicyholderID = actor.ID
	}
	if _, err := s.userRepo.GetByID(ctx, input.PolicyholderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyholderGone
		}
		return nil, err
	}

	policy := &models.Policy{
		PolicyholderID:    input.PolicyholderID,
		PolicyType:        input.PolicyType,
		CoverageAmount:    input.CoverageAmount,
		PremiumAmount:     input.PremiumAmount,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		IsActive:          true,
		Description:       input.Description,
		TermsConditions:   input.TermsConditions,
		PolicyDocumentURL: input.PolicyDocumentURL,
		CreatedBy:         &actor.ID,
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		policy.PolicyNumber = refnum.New(refnum.PolicyPrefix)
		err := s.policyRepo.Create(ctx, policy)
		if err == nil {
			log.Printf("✅ Policy %s issued for user %d", policy.PolicyNumber, policy.PolicyholderID)
			return policy, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		log.Printf("⚠️ Policy number collision on %s, regenerating", policy.PolicyNumber)
	}

	return nil, ErrNumberExhausted
}

// GetByID returns a policy if the actor owns it or is an admin
func (s *PolicyService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && policy.PolicyholderID != actor.ID {
		return nil, ErrNotOwner
	}
	return policy, nil
}

// GetByUser returns the actor's own policies
func (s *PolicyService) GetByUser(ctx context.Context, userID uint) ([]*models.Policy, error) {
	return s.policyRepo.GetByPolicyholder(ctx, userID)
}

// GetAll returns every policy (admin listings)
func (s *PolicyService) GetAll(ctx context.Context) ([]*models.Policy, error) {
	return s.policyRepo.List(ctx)
}
