package handlers

import (
	"errors"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimHandler handles claim endpoints
type ClaimHandler struct {
	claimService *services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Create files a claim; the caller is recorded as the claimant
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req services.CreateClaimInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.Create(c.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClaim):
			return response.BadRequest(c, "A non-negative claim amount, incident date and description are required")
		case errors.Is(err, services.ErrPolicyNotFound):
			return response.NotFound(c, "Policy not found")
		case errors.Is(err, services.ErrNumberExhausted):
			return response.Conflict(c, "Could not generate a unique claim number, please retry")
		default:
			return response.InternalServerError(c, "Failed to file claim")
		}
	}

	return response.Created(c, "Claim filed successfully", claim.ToResponse())
}

// ListMine returns the caller's own claims, newest claim date first
func (h *ClaimHandler) ListMine(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	claims, err := h.claimService.GetByUser(c.Context(), actor.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list claims")
	}

	return response.Success(c, "", claimResponses(claims))
}

// ListAll returns every claim with policy and policyholder resolved
// (admin only).
func (h *ClaimHandler) ListAll(c *fiber.Ctx) error {
	claims, err := h.claimService.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list claims")
	}

	return response.Success(c, "", claimResponses(claims))
}

func claimResponses(claims []*models.Claim) []*models.ClaimResponse {
	items := make([]*models.ClaimResponse, 0, len(claims))
	for _, cl := range claims {
		items = append(items, cl.ToResponse())
	}
	return items
}

// Get returns a single claim the caller may read
func (h *ClaimHandler) Get(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid claim id")
	}

	claim, err := h.claimService.GetByID(c.Context(), actor, id)
	if err != nil {
		return claimError(c, err, "Failed to load claim")
	}

	return response.Success(c, "", claim.ToResponse())
}

// UpdateStatus records an admin decision on a claim
func (h *ClaimHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid claim id")
	}

	var req services.UpdateClaimStatusInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.UpdateStatus(c.Context(), actor, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminRequired):
			return response.Forbidden(c, "Admin access required")
		case errors.Is(err, services.ErrInvalidClaimStatus):
			return response.BadRequest(c, "Status must be either Approved or Rejected")
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		default:
			return response.InternalServerError(c, "Failed to update claim status")
		}
	}

	return response.Success(c, "Claim status updated successfully", claim.ToResponse())
}

// AddNote appends a note to a claim
func (h *ClaimHandler) AddNote(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid claim id")
	}

	var req services.AddNoteInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.AddNote(c.Context(), actor, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyNote) {
			return response.BadRequest(c, "Note content is required")
		}
		return claimError(c, err, "Failed to add note")
	}

	return response.Created(c, "Note added successfully", claim.ToResponse())
}

// AddDocument attaches a supporting document to a claim
func (h *ClaimHandler) AddDocument(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid claim id")
	}

	var req services.AddDocumentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.AddDocument(c.Context(), actor, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDocument) {
			return response.BadRequest(c, "Document url is required")
		}
		return claimError(c, err, "Failed to attach document")
	}

	return response.Created(c, "Document attached successfully", claim.ToResponse())
}

// claimError maps the common claim read errors; fallback covers the
// rest.
func claimError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrClaimNotFound):
		return response.NotFound(c, "Claim not found")
	case errors.Is(err, services.ErrNotOwner):
		return response.Forbidden(c, "You don't have permission to view this claim")
	default:
		return response.InternalServerError(c, fallback)
	}
}
