package services

import (
	"context"
	"time"

	"insureportal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return the same gorm sentinel errors
// the real repositories do, so the services' error mapping is exercised
// without a database.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, tokenHash string, now time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.PasswordResetToken == tokenHash && u.PasswordResetExpires != nil && u.PasswordResetExpires.After(now) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	all := make([]*models.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			all = append(all, u)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ClearExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	var cleared int64
	for _, u := range r.users {
		if u.PasswordResetToken != "" && u.PasswordResetExpires != nil && u.PasswordResetExpires.Before(now) {
			u.PasswordResetToken = ""
			u.PasswordResetExpires = nil
			cleared++
		}
	}
	return cleared, nil
}

type fakePolicyRepo struct {
	policies map[uint]*models.Policy
	nextID   uint
	// failCreates forces the next N creates to collide on the unique
	// policy number index.
	failCreates int
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{policies: map[uint]*models.Policy{}, nextID: 1}
}

func (r *fakePolicyRepo) Create(_ context.Context, policy *models.Policy) error {
	if r.failCreates > 0 {
		r.failCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, p := range r.policies {
		if p.PolicyNumber == policy.PolicyNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	policy.ID = r.nextID
	r.nextID++
	r.policies[policy.ID] = policy
	return nil
}

func (r *fakePolicyRepo) GetByID(_ context.Context, id uint) (*models.Policy, error) {
	p, ok := r.policies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePolicyRepo) GetByPolicyholder(_ context.Context, userID uint) ([]*models.Policy, error) {
	var out []*models.Policy
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.policies[id]; ok && p.PolicyholderID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePolicyRepo) List(_ context.Context) ([]*models.Policy, error) {
	var out []*models.Policy
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.policies[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeClaimRepo struct {
	claims      map[uint]*models.Claim
	nextID      uint
	failCreates int
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: map[uint]*models.Claim{}, nextID: 1}
}

func (r *fakeClaimRepo) Create(_ context.Context, claim *models.Claim) error {
	if r.failCreates > 0 {
		r.failCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, cl := range r.claims {
		if cl.ClaimNumber == claim.ClaimNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	claim.ID = r.nextID
	r.nextID++
	r.claims[claim.ID] = claim
	return nil
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id uint) (*models.Claim, error) {
	cl, ok := r.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cl, nil
}

func (r *fakeClaimRepo) GetByPolicyholder(_ context.Context, userID uint) ([]*models.Claim, error) {
	var out []*models.Claim
	for id := uint(1); id < r.nextID; id++ {
		if cl, ok := r.claims[id]; ok && cl.PolicyholderID == userID {
			out = append(out, cl)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) List(_ context.Context) ([]*models.Claim, error) {
	var out []*models.Claim
	for id := uint(1); id < r.nextID; id++ {
		if cl, ok := r.claims[id]; ok {
			out = append(out, cl)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) UpdateStatus(_ context.Context, id uint, status string, processedBy uint, processedAt time.Time, rejectionReason string) error {
	cl, ok := r.claims[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cl.Status = status
	cl.ProcessedBy = &processedBy
	cl.ProcessedAt = &processedAt
	cl.RejectionReason = rejectionReason
	return nil
}

func (r *fakeClaimRepo) AddDocument(_ context.Context, doc *models.ClaimDocument) error {
	cl, ok := r.claims[doc.ClaimID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	doc.ID = uint(len(cl.SupportingDocuments) + 1)
	doc.UploadedAt = time.Now()
	cl.SupportingDocuments = append(cl.SupportingDocuments, *doc)
	return nil
}

func (r *fakeClaimRepo) AddNote(_ context.Context, note *models.ClaimNote) error {
	cl, ok := r.claims[note.ClaimID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	note.ID = uint(len(cl.Notes) + 1)
	note.AddedAt = time.Now()
	cl.Notes = append(cl.Notes, *note)
	return nil
}

type fakePaymentRepo struct {
	payments    map[uint]*models.Payment
	nextID      uint
	failCreates int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uint]*models.Payment{}, nextID: 1}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if r.failCreates > 0 {
		r.failCreates--
		return gorm.ErrDuplicatedKey
	}
	payment.ID = r.nextID
	r.nextID++
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetByPolicyholder(_ context.Context, userID uint) ([]*models.Payment, error) {
	var out []*models.Payment
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.payments[id]; ok && p.PolicyholderID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(_ context.Context) ([]*models.Payment, error) {
	var out []*models.Payment
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.payments[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *models.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*models.Settings, error) {
	if r.settings == nil {
		r.settings = &models.Settings{
			ID:              1,
			SiteName:        "Insurance Portal",
			MaintenanceMode: false,
			RecordsPerPage:  10,
		}
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *models.Settings) error {
	r.settings = settings
	return nil
}
