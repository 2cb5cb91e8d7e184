package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/domain"
)

var policyNumberPattern = regexp.MustCompile(`^POL-\d+-[A-Z0-9]{5}$`)

func newPolicyFixture(t *testing.T) (*PolicyService, *fakePolicyRepo, *fakeUserRepo, domain.Actor, domain.Actor) {
	t.Helper()

	userRepo := newFakeUserRepo()
	policyRepo := newFakePolicyRepo()

	holderUser := &models.User{FirstName: "Hana", LastName: "Holder", Email: "holder@example.com", Role: "user"}
	adminUser := &models.User{FirstName: "Ada", LastName: "Admin", Email: "admin@example.com", Role: "admin"}
	ctx := context.Background()
	if err := userRepo.Create(ctx, holderUser); err != nil {
		t.Fatalf("seed holder: %v", err)
	}
	if err := userRepo.Create(ctx, adminUser); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	holder := domain.Actor{ID: holderUser.ID, Role: domain.RoleUser}
	admin := domain.Actor{ID: adminUser.ID, Role: domain.RoleAdmin}

	svc := NewPolicyService(policyRepo, userRepo)
	return svc, policyRepo, userRepo, holder, admin
}

func validPolicyInput(holderID uint) *CreatePolicyInput {
	return &CreatePolicyInput{
		PolicyholderID: holderID,
		PolicyType:     "home",
		CoverageAmount: 250000,
		PremiumAmount:  89.50,
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(1, 0, 0),
	}
}

func TestPolicyCreate(t *testing.T) {
	svc, _, _, holder, admin := newPolicyFixture(t)

	policy, err := svc.Create(context.Background(), admin, validPolicyInput(holder.ID))
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}

	if !policyNumberPattern.MatchString(policy.PolicyNumber) {
		t.Fatalf("policy number %q does not match expected format", policy.PolicyNumber)
	}
	if !policy.IsActive {
		t.Fatal("new policy must start active")
	}
	if policy.CreatedBy == nil || *policy.CreatedBy != admin.ID {
		t.Fatalf("created_by = %v, want %d", policy.CreatedBy, admin.ID)
	}
}

func TestPolicyCreateDefaultsPolicyholderToActor(t *testing.T) {
	svc, _, _, holder, _ := newPolicyFixture(t)

	input := validPolicyInput(0)
	policy, err := svc.Create(context.Background(), holder, input)
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}
	if policy.PolicyholderID != holder.ID {
		t.Fatalf("policyholder = %d, want actor %d", policy.PolicyholderID, holder.ID)
	}
}

func TestPolicyCreateValidation(t *testing.T) {
	svc, _, _, holder, admin := newPolicyFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreatePolicyInput)
		wantErr error
	}{
		{"missing type", func(in *CreatePolicyInput) { in.PolicyType = "" }, ErrInvalidPolicy},
		{"zero coverage", func(in *CreatePolicyInput) { in.CoverageAmount = 0 }, ErrInvalidPolicy},
		{"zero premium", func(in *CreatePolicyInput) { in.PremiumAmount = 0 }, ErrInvalidPolicy},
		{"end before start", func(in *CreatePolicyInput) { in.EndDate = in.StartDate.AddDate(0, 0, -1) }, ErrPolicyDateOrder},
		{"end equals start", func(in *CreatePolicyInput) { in.EndDate = in.StartDate }, ErrPolicyDateOrder},
		{"unknown holder", func(in *CreatePolicyInput) { in.PolicyholderID = 999 }, ErrPolicyholderGone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPolicyInput(holder.ID)
			tt.mutate(input)
			if _, err := svc.Create(ctx, admin, input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolicyNumberCollisionRetry(t *testing.T) {
	svc, policyRepo, _, holder, admin := newPolicyFixture(t)
	ctx := context.Background()

	policyRepo.failCreates = maxNumberAttempts - 1
	if _, err := svc.Create(ctx, admin, validPolicyInput(holder.ID)); err != nil {
		t.Fatalf("create with %d collisions: %v", maxNumberAttempts-1, err)
	}

	policyRepo.failCreates = maxNumberAttempts
	if _, err := svc.Create(ctx, admin, validPolicyInput(holder.ID)); !errors.Is(err, ErrNumberExhausted) {
		t.Fatalf("err = %v, want ErrNumberExhausted", err)
	}
}

func TestPolicyReadAccess(t *testing.T) {
	svc, _, _, holder, admin := newPolicyFixture(t)
	ctx := context.Background()

	policy, err := svc.Create(ctx, admin, validPolicyInput(holder.ID))
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}

	if _, err := svc.GetByID(ctx, holder, policy.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetByID(ctx, admin, policy.ID); err != nil {
		t.Fatalf("admin read: %v", err)
	}

	stranger := domain.Actor{ID: 42, Role: domain.RoleUser}
	if _, err := svc.GetByID(ctx, stranger, policy.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger read err = %v, want ErrNotOwner", err)
	}

	if _, err := svc.GetByID(ctx, admin, 404); !errors.Is(err, ErrPolicyNotFound) {
		t.Fatalf("missing policy err = %v, want ErrPolicyNotFound", err)
	}
}
