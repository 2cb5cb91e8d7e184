// Package events publishes claim lifecycle facts to a message broker
// for downstream consumers (audit trails, analytics, notifiers). The
// request path never depends on a publish succeeding.
package events

// Queue names declared by the publisher.
const (
	QueueClaimCreated       = "claim.created"
	QueueClaimStatusChanged = "claim.status.changed"
)

// ClaimCreatedEvent is published when a policyholder files a claim.
type ClaimCreatedEvent struct {
	ClaimID        uint    `json:"claim_id"`
	ClaimNumber    string  `json:"claim_number"`
	PolicyID       uint    `json:"policy_id"`
	PolicyholderID uint    `json:"policyholder_id"`
	ClaimAmount    float64 `json:"claim_amount"`
	FiledAt        string  `json:"filed_at"`
}

// ClaimStatusChangedEvent is published when an admin transitions a
// claim's status, including repeat transitions to the same status.
type ClaimStatusChangedEvent struct {
	ClaimID         uint   `json:"claim_id"`
	ClaimNumber     string `json:"claim_number"`
	PolicyID        uint   `json:"policy_id"`
	PolicyholderID  uint   `json:"policyholder_id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	ProcessedBy     uint   `json:"processed_by"`
	ProcessedAt     string `json:"processed_at"`
}
