package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/core/domain"
	"insureportal/internal/pkg/refnum"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment errors
var (
	ErrInvalidPayment     = errors.New("invalid payment data")
	ErrPaymentClaimPolicy = errors.New("claim does not belong to the payment's policy")
)

// PaymentService maintains the append-only payment ledger
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	policyRepo  repositories.PolicyRepository
	claimSvc    *ClaimService
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository, policyRepo repositories.PolicyRepository, claimSvc *ClaimService) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		claimSvc:    claimSvc,
	}
}

// RecordPaymentInput represents payment recording input
type RecordPaymentInput struct {
	PolicyID    uint      `json:"policy_id"`
	ClaimID     *uint     `json:"claim_id"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	ReceiptURL  string    `json:"receipt_url"`
}

// Record appends a payment to the ledger. The policyholder is derived
// from the policy row. When the payment is a Completed payout against
// an Approved claim, the claim transitions to Paid as part of the same
// operation.
func (s *PaymentService) Record(ctx context.Context, actor domain.Actor, input *RecordPaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 || strings.TrimSpace(input.PaymentType) == "" {
		return nil, ErrInvalidPayment
	}

	policy, err := s.policyRepo.GetByID(ctx, input.PolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = string(domain.PaymentStatusCompleted)
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	now := time.Now()
	payment := &models.Payment{
		PolicyID:       policy.ID,
		PolicyholderID: policy.PolicyholderID,
		ClaimID:        input.ClaimID,
		Amount:         input.Amount,
		PaymentType:    strings.TrimSpace(input.PaymentType),
		PaymentDate:    paymentDate,
		Status:         status,
		TransactionID:  uuid.NewString(),
		Description:    strings.TrimSpace(input.Description),
		ReceiptURL:     strings.TrimSpace(input.ReceiptURL),
		ProcessedBy:    &actor.ID,
		ProcessedAt:    &now,
	}

	if input.ClaimID != nil {
		claim, err := s.claimSvc.GetByID(ctx, actor, *input.ClaimID)
		if err != nil {
			return nil, err
		}
		if claim.PolicyID != policy.ID {
			return nil, ErrPaymentClaimPolicy
		}
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		payment.PaymentNumber = refnum.New(refnum.PaymentPrefix)
		err := s.paymentRepo.Create(ctx, payment)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if attempt == maxNumberAttempts-1 {
			return nil, ErrNumberExhausted
		}
		log.Printf("⚠️ Payment number collision on %s, regenerating", payment.PaymentNumber)
	}

	log.Printf("✅ Payment %s recorded for policy %s", payment.PaymentNumber, policy.PolicyNumber)

	if input.ClaimID != nil && status == string(domain.PaymentStatusCompleted) {
		if _, err := s.claimSvc.MarkPaid(ctx, actor, *input.ClaimID); err != nil {
			// The ledger entry stands; the claim keeps its current
			// status if it was not Approved.
			if !errors.Is(err, ErrInvalidClaimStatus) {
				log.Printf("⚠️ Could not mark claim %d paid: %v", *input.ClaimID, err)
			}
		}
	}

	return payment, nil
}

// GetByUser returns the actor's own payments
func (s *PaymentService) GetByUser(ctx context.Context, userID uint) ([]*models.Payment, error) {
	return s.paymentRepo.GetByPolicyholder(ctx, userID)
}

// GetAll returns every payment (admin listings)
func (s *PaymentService) GetAll(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.List(ctx)
}
