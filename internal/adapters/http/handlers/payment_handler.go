package handlers

import (
	"errors"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment ledger endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record appends a payment to the ledger (admin only). A completed
// payout against an approved claim also marks the claim Paid.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req services.RecordPaymentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.Record(c.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayment):
			return response.BadRequest(c, "Payment amount and type are required")
		case errors.Is(err, services.ErrPolicyNotFound):
			return response.NotFound(c, "Policy not found")
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		case errors.Is(err, services.ErrPaymentClaimPolicy):
			return response.BadRequest(c, "Claim does not belong to the payment's policy")
		case errors.Is(err, services.ErrNumberExhausted):
			return response.Conflict(c, "Could not generate a unique payment number, please retry")
		default:
			return response.InternalServerError(c, "Failed to record payment")
		}
	}

	return response.Created(c, "Payment recorded successfully", payment.ToResponse())
}

// ListMine returns the caller's own payments, newest first
func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	payments, err := h.paymentService.GetByUser(c.Context(), actor.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "", paymentResponses(payments))
}

// ListAll returns the full ledger (admin only)
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	payments, err := h.paymentService.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "", paymentResponses(payments))
}

func paymentResponses(payments []*models.Payment) []*models.PaymentResponse {
	items := make([]*models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, p.ToResponse())
	}
	return items
}
