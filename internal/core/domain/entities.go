package domain

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the authenticated principal attached to a request.
// Role is trusted as of token issuance; a role change takes
// effect at the next login.
type Actor struct {
	ID    uint
	Email string
	Role  Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Claim statuses
const (
	ClaimStatusPending     = "Pending"
	ClaimStatusUnderReview = "Under Review"
	ClaimStatusApproved    = "Approved"
	ClaimStatusRejected    = "Rejected"
	ClaimStatusPaid        = "Paid"
)

// Payment statuses
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)
