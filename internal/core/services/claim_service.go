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
	"insureportal/internal/events"
	"insureportal/internal/pkg/refnum"

	"gorm.io/gorm"
)

// Claim errors
var (
	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidClaim       = errors.New("invalid claim data")
	ErrInvalidClaimStatus = errors.New("status must be either Approved or Rejected")
	ErrEmptyNote          = errors.New("note content is required")
	ErrEmptyDocument      = errors.New("document url is required")
)

// ClaimService handles the claim lifecycle: filing, review decisions
// and the supporting notes/documents.
type ClaimService struct {
	claimRepo  repositories.ClaimRepository
	policyRepo repositories.PolicyRepository
	publisher  *events.Publisher
}

// NewClaimService creates a new claim service
func NewClaimService(claimRepo repositories.ClaimRepository, policyRepo repositories.PolicyRepository, publisher *events.Publisher) *ClaimService {
	return &ClaimService{
		claimRepo:  claimRepo,
		policyRepo: policyRepo,
		publisher:  publisher,
	}
}

// CreateClaimInput represents claim filing input
type CreateClaimInput struct {
	PolicyID     uint      `json:"policy_id"`
	ClaimAmount  float64   `json:"claim_amount"`
	IncidentDate time.Time `json:"incident_date"`
	Description  string    `json:"description"`
}

// UpdateClaimStatusInput represents a review decision
type UpdateClaimStatusInput struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// AddNoteInput represents note input
type AddNoteInput struct {
	Content string `json:"content"`
}

// AddDocumentInput represents supporting document input
type AddDocumentInput struct {
	DocumentType string `json:"document_type"`
	DocumentURL  string `json:"document_url"`
}

// Create files a claim. The claimant recorded on the claim is always
// the acting user, never taken from the request body. The claimant
// need not be the policy's current owner: the claim snapshots who
// filed it, so a later policyholder change leaves old claims intact.
// The referenced policy must exist. A zero claim amount is allowed.
func (s *ClaimService) Create(ctx context.Context, actor domain.Actor, input *CreateClaimInput) (*models.Claim, error) {
	if input.ClaimAmount < 0 || input.IncidentDate.IsZero() || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidClaim
	}

	policy, err := s.policyRepo.GetByID(ctx, input.PolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	claim := &models.Claim{
		PolicyID:       policy.ID,
		PolicyholderID: actor.ID,
		ClaimAmount:    input.ClaimAmount,
		ClaimDate:      time.Now(),
		IncidentDate:   input.IncidentDate,
		Status:         string(domain.ClaimStatusPending),
		Description:    strings.TrimSpace(input.Description),
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		claim.ClaimNumber = refnum.New(refnum.ClaimPrefix)
		err := s.claimRepo.Create(ctx, claim)
		if err == nil {
			log.Printf("✅ Claim %s filed against policy %s", claim.ClaimNumber, policy.PolicyNumber)
			s.publisher.ClaimCreated(ctx, events.ClaimCreatedEvent{
				ClaimID:        claim.ID,
				ClaimNumber:    claim.ClaimNumber,
				PolicyID:       claim.PolicyID,
				PolicyholderID: claim.PolicyholderID,
				ClaimAmount:    claim.ClaimAmount,
				FiledAt:        claim.ClaimDate.UTC().Format(time.RFC3339),
			})
			return claim, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		log.Printf("⚠️ Claim number collision on %s, regenerating", claim.ClaimNumber)
	}

	return nil, ErrNumberExhausted
}

// GetByID returns a claim if the actor owns it or is an admin
func (s *ClaimService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && claim.PolicyholderID != actor.ID {
		return nil, ErrNotOwner
	}
	return claim, nil
}

// GetByUser returns the actor's own claims
func (s *ClaimService) GetByUser(ctx context.Context, userID uint) ([]*models.Claim, error) {
	return s.claimRepo.GetByPolicyholder(ctx, userID)
}

// GetAll returns every claim (admin listings)
func (s *ClaimService) GetAll(ctx context.Context) ([]*models.Claim, error) {
	return s.claimRepo.List(ctx)
}

// UpdateStatus records an admin decision on a claim. Only Approved and
// Rejected are accepted from the API; repeat decisions are allowed and
// re-stamp processed_by/processed_at each time. The rejection reason is
// set when a Rejected decision carries one, kept when it does not, and
// cleared on Approved.
func (s *ClaimService) UpdateStatus(ctx context.Context, actor domain.Actor, claimID uint, input *UpdateClaimStatusInput) (*models.Claim, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}

	status := strings.TrimSpace(input.Status)
	if status != string(domain.ClaimStatusApproved) && status != string(domain.ClaimStatusRejected) {
		return nil, ErrInvalidClaimStatus
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	rejectionReason := ""
	if status == string(domain.ClaimStatusRejected) {
		rejectionReason = strings.TrimSpace(input.RejectionReason)
		if rejectionReason == "" {
			rejectionReason = claim.RejectionReason
		}
	}

	processedAt := time.Now()
	if err := s.claimRepo.UpdateStatus(ctx, claimID, status, actor.ID, processedAt, rejectionReason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	updated, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Claim %s %s by admin %d", updated.ClaimNumber, status, actor.ID)
	s.publisher.ClaimStatusChanged(ctx, events.ClaimStatusChangedEvent{
		ClaimID:         updated.ID,
		ClaimNumber:     updated.ClaimNumber,
		PolicyID:        updated.PolicyID,
		PolicyholderID:  updated.PolicyholderID,
		Status:          updated.Status,
		RejectionReason: updated.RejectionReason,
		ProcessedBy:     actor.ID,
		ProcessedAt:     processedAt.UTC().Format(time.RFC3339),
	})

	return updated, nil
}

// AddNote appends a note to a claim the actor may read
func (s *ClaimService) AddNote(ctx context.Context, actor domain.Actor, claimID uint, input *AddNoteInput) (*models.Claim, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrEmptyNote
	}

	if _, err := s.GetByID(ctx, actor, claimID); err != nil {
		return nil, err
	}

	note := &models.ClaimNote{
		ClaimID: claimID,
		Content: content,
		AddedBy: actor.ID,
	}
	if err := s.claimRepo.AddNote(ctx, note); err != nil {
		return nil, err
	}

	return s.claimRepo.GetByID(ctx, claimID)
}

// AddDocument attaches a supporting document to a claim the actor may
// read.
func (s *ClaimService) AddDocument(ctx context.Context, actor domain.Actor, claimID uint, input *AddDocumentInput) (*models.Claim, error) {
	if strings.TrimSpace(input.DocumentURL) == "" {
		return nil, ErrEmptyDocument
	}

	if _, err := s.GetByID(ctx, actor, claimID); err != nil {
		return nil, err
	}

	doc := &models.ClaimDocument{
		ClaimID:      claimID,
		DocumentType: strings.TrimSpace(input.DocumentType),
		DocumentURL:  strings.TrimSpace(input.DocumentURL),
	}
	if err := s.claimRepo.AddDocument(ctx, doc); err != nil {
		return nil, err
	}

	return s.claimRepo.GetByID(ctx, claimID)
}

// MarkPaid transitions an Approved claim to Paid. It is invoked by the
// payment ledger when a completed claim payout is recorded, not exposed
// through the status endpoint.
func (s *ClaimService) MarkPaid(ctx context.Context, actor domain.Actor, claimID uint) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	if claim.Status != string(domain.ClaimStatusApproved) {
		return nil, ErrInvalidClaimStatus
	}

	processedAt := time.Now()
	if err := s.claimRepo.UpdateStatus(ctx, claimID, string(domain.ClaimStatusPaid), actor.ID, processedAt, claim.RejectionReason); err != nil {
		return nil, err
	}

	updated, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Claim %s marked Paid", updated.ClaimNumber)
	s.publisher.ClaimStatusChanged(ctx, events.ClaimStatusChangedEvent{
		ClaimID:        updated.ID,
		ClaimNumber:    updated.ClaimNumber,
		PolicyID:       updated.PolicyID,
		PolicyholderID: updated.PolicyholderID,
		Status:         updated.Status,
		ProcessedBy:    actor.ID,
		ProcessedAt:    processedAt.UTC().Format(time.RFC3339),
	})

	return updated, nil
}
