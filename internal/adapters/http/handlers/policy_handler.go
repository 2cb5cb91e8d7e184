package handlers

import (
	"errors"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PolicyHandler handles policy endpoints
type PolicyHandler struct {
	policyService *services.PolicyService
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// Create issues a new policy (admin only). The policy number is
// generated server-side and never accepted from the request.
func (h *PolicyHandler) Create(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req services.CreatePolicyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	policy, err := h.policyService.Create(c.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPolicy):
			return response.BadRequest(c, "Policy type, coverage amount and premium amount are required")
		case errors.Is(err, services.ErrPolicyDateOrder):
			return response.BadRequest(c, "Policy end date must be after start date")
		case errors.Is(err, services.ErrPolicyholderGone):
			return response.NotFound(c, "Policyholder not found")
		case errors.Is(err, services.ErrNumberExhausted):
			return response.Conflict(c, "Could not generate a unique policy number, please retry")
		default:
			return response.InternalServerError(c, "Failed to create policy")
		}
	}

	return response.Created(c, "Policy created successfully", policy.ToResponse())
}

// ListMine returns the caller's own policies, newest first
func (h *PolicyHandler) ListMine(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	policies, err := h.policyService.GetByUser(c.Context(), actor.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list policies")
	}

	return response.Success(c, "", policyResponses(policies))
}

// ListAll returns every policy with the policyholder resolved inline
// (admin only).
func (h *PolicyHandler) ListAll(c *fiber.Ctx) error {
	policies, err := h.policyService.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list policies")
	}

	return response.Success(c, "", policyResponses(policies))
}

func policyResponses(policies []*models.Policy) []*models.PolicyResponse {
	items := make([]*models.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		items = append(items, p.ToResponse())
	}
	return items
}

// Get returns a single policy the caller may read
func (h *PolicyHandler) Get(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid policy id")
	}

	policy, err := h.policyService.GetByID(c.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPolicyNotFound):
			return response.NotFound(c, "Policy not found")
		case errors.Is(err, services.ErrNotOwner):
			return response.Forbidden(c, "You don't have permission to view this policy")
		default:
			return response.InternalServerError(c, "Failed to load policy")
		}
	}

	return response.Success(c, "", policy.ToResponse())
}
