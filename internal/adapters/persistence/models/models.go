package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users
// ============================================================

// User represents users table
type User struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	FirstName            string         `gorm:"size:100;not null" json:"firstName"`
	LastName             string         `gorm:"size:100;not null" json:"lastName"`
	Email                string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password             string         `gorm:"size:255;not null" json:"-"`
	Role                 string         `gorm:"size:20;default:'user'" json:"role"`
	Phone                string         `gorm:"size:30" json:"phone,omitempty"`
	Address              string         `gorm:"size:255" json:"address,omitempty"`
	ProfileImageURL      string         `gorm:"size:255" json:"profileImageUrl,omitempty"`
	ThemePreference      string         `gorm:"size:20;default:'system'" json:"themePreference,omitempty"`
	PasswordResetToken   string         `gorm:"size:64;index" json:"-"`
	PasswordResetExpires *time.Time     `json:"-"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the sanitized user projection returned by the API.
// Password and reset-token fields never appear here.
type UserResponse struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	ThemePreference string    `json:"themePreference,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		Phone:           u.Phone,
		Address:         u.Address,
		ProfileImageURL: u.ProfileImageURL,
		ThemePreference: u.ThemePreference,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UserRef is the inline policyholder projection embedded in policy,
// claim and payment responses.
type UserRef struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u *User) ToRef() *UserRef {
	return &UserRef{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// ============================================================
// Policies
// ============================================================

// Policy represents policies table
type Policy struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	PolicyNumber      string    `gorm:"uniqueIndex;size:40;not null" json:"policy_number"`
	PolicyholderID    uint      `gorm:"not null;index" json:"policyholder_id"`
	PolicyType        string    `gorm:"size:50;not null" json:"policy_type"`
	CoverageAmount    float64   `gorm:"type:decimal(15,2);not null" json:"coverage_amount"`
	PremiumAmount     float64   `gorm:"type:decimal(15,2);not null" json:"premium_amount"`
	StartDate         time.Time `gorm:"not null" json:"start_date"`
	EndDate           time.Time `gorm:"not null" json:"end_date"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	Description       string    `gorm:"type:text" json:"description,omitempty"`
	TermsConditions   string    `gorm:"type:text" json:"terms_conditions,omitempty"`
	PolicyDocumentURL string    `gorm:"size:255" json:"policy_document_url,omitempty"`
	CreatedBy         *uint     `json:"created_by,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Policyholder *User `gorm:"foreignKey:PolicyholderID" json:"-"`
	Creator      *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Policy) TableName() string {
	return "policies"
}

// PolicyResponse DTO
type PolicyResponse struct {
	ID                uint      `json:"id"`
	PolicyNumber      string    `json:"policy_number"`
	PolicyholderID    uint      `json:"policyholder_id"`
	PolicyType        string    `json:"policy_type"`
	CoverageAmount    float64   `json:"coverage_amount"`
	PremiumAmount     float64   `json:"premium_amount"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	IsActive          bool      `json:"is_active"`
	Description       string    `json:"description,omitempty"`
	TermsConditions   string    `json:"terms_conditions,omitempty"`
	PolicyDocumentURL string    `json:"policy_document_url,omitempty"`
	CreatedBy         *uint     `json:"created_by,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	User              *UserRef  `json:"user,omitempty"`
}

func (p *Policy) ToResponse() *PolicyResponse {
	resp := &PolicyResponse{
		ID:                p.ID,
		PolicyNumber:      p.PolicyNumber,
		PolicyholderID:    p.PolicyholderID,
		PolicyType:        p.PolicyType,
		CoverageAmount:    p.CoverageAmount,
		PremiumAmount:     p.PremiumAmount,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		IsActive:          p.IsActive,
		Description:       p.Description,
		TermsConditions:   p.TermsConditions,
		PolicyDocumentURL: p.PolicyDocumentURL,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}

	if p.Policyholder != nil {
		resp.User = p.Policyholder.ToRef()
	}

	return resp
}

// PolicyRef is the inline policy projection embedded in claim and
// payment responses.
type PolicyRef struct {
	ID           uint   `json:"id"`
	PolicyNumber string `json:"policy_number"`
	PolicyType   string `json:"policy_type"`
}

func (p *Policy) ToRef() *PolicyRef {
	return &PolicyRef{
		ID:           p.ID,
		PolicyNumber: p.PolicyNumber,
		PolicyType:   p.PolicyType,
	}
}

// ============================================================
// Claims
// ============================================================

// Claim represents claims table
type Claim struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ClaimNumber     string     `gorm:"uniqueIndex;size:40;not null" json:"claim_number"`
	PolicyID        uint       `gorm:"not null;index" json:"policy_id"`
	PolicyholderID  uint       `gorm:"not null;index" json:"policyholder_id"`
	ClaimAmount     float64    `gorm:"type:decimal(15,2);not null" json:"claim_amount"`
	ClaimDate       time.Time  `gorm:"not null" json:"claim_date"`
	IncidentDate    time.Time  `gorm:"not null" json:"incident_date"`
	Status          string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	ProcessedBy     *uint      `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Policy              *Policy         `gorm:"foreignKey:PolicyID" json:"-"`
	Policyholder        *User           `gorm:"foreignKey:PolicyholderID" json:"-"`
	Processor           *User           `gorm:"foreignKey:ProcessedBy" json:"-"`
	SupportingDocuments []ClaimDocument `gorm:"foreignKey:ClaimID" json:"supporting_documents"`
	Notes               []ClaimNote     `gorm:"foreignKey:ClaimID" json:"notes"`
}

func (Claim) TableName() string {
	return "claims"
}

// ClaimDocument is a supporting document attached to a claim
type ClaimDocument struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClaimID      uint      `gorm:"not null;index" json:"claim_id"`
	DocumentType string    `gorm:"size:50" json:"document_type"`
	DocumentURL  string    `gorm:"size:255" json:"document_url"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (ClaimDocument) TableName() string {
	return "claim_documents"
}

// ClaimNote is an adjuster or policyholder note on a claim
type ClaimNote struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	ClaimID uint      `gorm:"not null;index" json:"claim_id"`
	Content string    `gorm:"type:text" json:"content"`
	AddedBy uint      `gorm:"not null" json:"added_by"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (ClaimNote) TableName() string {
	return "claim_notes"
}

// ClaimResponse DTO
type ClaimResponse struct {
	ID                  uint            `json:"id"`
	ClaimNumber         string          `json:"claim_number"`
	PolicyID            uint            `json:"policy_id"`
	PolicyholderID      uint            `json:"policyholder_id"`
	ClaimAmount         float64         `json:"claim_amount"`
	ClaimDate           time.Time       `json:"claim_date"`
	IncidentDate        time.Time       `json:"incident_date"`
	Status              string          `json:"status"`
	Description         string          `json:"description"`
	RejectionReason     string          `json:"rejection_reason,omitempty"`
	ProcessedBy         *uint           `json:"processed_by,omitempty"`
	ProcessedAt         *time.Time      `json:"processed_at,omitempty"`
	SupportingDocuments []ClaimDocument `json:"supporting_documents"`
	Notes               []ClaimNote     `json:"notes"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	Policy              *PolicyRef      `json:"policy,omitempty"`
	Policyholder        *UserRef        `json:"policyholder,omitempty"`
}

func (c *Claim) ToResponse() *ClaimResponse {
	resp := &ClaimResponse{
		ID:                  c.ID,
		ClaimNumber:         c.ClaimNumber,
		PolicyID:            c.PolicyID,
		PolicyholderID:      c.PolicyholderID,
		ClaimAmount:         c.ClaimAmount,
		ClaimDate:           c.ClaimDate,
		IncidentDate:        c.IncidentDate,
		Status:              c.Status,
		Description:         c.Description,
		RejectionReason:     c.RejectionReason,
		ProcessedBy:         c.ProcessedBy,
		ProcessedAt:         c.ProcessedAt,
		SupportingDocuments: c.SupportingDocuments,
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}

	if resp.SupportingDocuments == nil {
		resp.SupportingDocuments = []ClaimDocument{}
	}
	if resp.Notes == nil {
		resp.Notes = []ClaimNote{}
	}
	if c.Policy != nil {
		resp.Policy = c.Policy.ToRef()
	}
	if c.Policyholder != nil {
		resp.Policyholder = c.Policyholder.ToRef()
	}

	return resp
}

// ============================================================
// Payments
// ============================================================

// Payment represents payments table. Payments are append-only: there
// are no update or delete paths.
type Payment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PaymentNumber  string     `gorm:"uniqueIndex;size:40;not null" json:"payment_number"`
	PolicyID       uint       `gorm:"not null;index" json:"policy_id"`
	PolicyholderID uint       `gorm:"not null;index" json:"policyholder_id"`
	ClaimID        *uint      `gorm:"index" json:"claim_id,omitempty"`
	Amount         float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentType    string     `gorm:"size:50;not null" json:"payment_type"`
	PaymentDate    time.Time  `gorm:"not null" json:"payment_date"`
	Status         string     `gorm:"size:20;not null;default:'Completed'" json:"status"`
	TransactionID  string     `gorm:"size:64" json:"transaction_id,omitempty"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	ReceiptURL     string     `gorm:"size:255" json:"receipt_url,omitempty"`
	ProcessedBy    *uint      `json:"processed_by,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Policy       *Policy `gorm:"foreignKey:PolicyID" json:"-"`
	Policyholder *User   `gorm:"foreignKey:PolicyholderID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentResponse DTO
type PaymentResponse struct {
	ID             uint       `json:"id"`
	PaymentNumber  string     `json:"payment_number"`
	PolicyID       uint       `json:"policy_id"`
	PolicyholderID uint       `json:"policyholder_id"`
	ClaimID        *uint      `json:"claim_id,omitempty"`
	Amount         float64    `json:"amount"`
	PaymentType    string     `json:"payment_type"`
	PaymentDate    time.Time  `json:"payment_date"`
	Status         string     `json:"status"`
	TransactionID  string     `json:"transaction_id,omitempty"`
	Description    string     `json:"description,omitempty"`
	ReceiptURL     string     `json:"receipt_url,omitempty"`
	ProcessedBy    *uint      `json:"processed_by,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Policy         *PolicyRef `json:"policy,omitempty"`
	Policyholder   *UserRef   `json:"policyholder,omitempty"`
}

func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		ID:             p.ID,
		PaymentNumber:  p.PaymentNumber,
		PolicyID:       p.PolicyID,
		PolicyholderID: p.PolicyholderID,
		ClaimID:        p.ClaimID,
		Amount:         p.Amount,
		PaymentType:    p.PaymentType,
		PaymentDate:    p.PaymentDate,
		Status:         p.Status,
		TransactionID:  p.TransactionID,
		Description:    p.Description,
		ReceiptURL:     p.ReceiptURL,
		ProcessedBy:    p.ProcessedBy,
		ProcessedAt:    p.ProcessedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.Policy != nil {
		resp.Policy = p.Policy.ToRef()
	}
	if p.Policyholder != nil {
		resp.Policyholder = p.Policyholder.ToRef()
	}

	return resp
}

// ============================================================
// Settings
// ============================================================

// Settings is the singleton configuration row. Reads go through
// FirstOrCreate so the row exists without an application-level
// check-then-act.
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SiteName        string    `gorm:"size:100;default:'Insurance Portal'" json:"siteName"`
	MaintenanceMode bool      `gorm:"default:false" json:"maintenanceMode"`
	RecordsPerPage  int       `gorm:"default:10" json:"recordsPerPage"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Settings) TableName() string {
	return "settings"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Policy{},
		&Claim{},
		&ClaimDocument{},
		&ClaimNote{},
		&Payment{},
		&Settings{},
	)
}
