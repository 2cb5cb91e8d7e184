package handlers

import (
	"errors"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/pagination"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile and admin user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile lets the authenticated user update their own profile.
// Only the allow-listed fields are applied; role, email and password
// changes go through their own endpoints.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), actor.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated successfully", user.ToResponse())
}

// List returns a page of users (admin only)
func (h *UserHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	items := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, u.ToResponse())
	}

	return response.Success(c, "", fiber.Map{
		"users":      items,
		"pagination": pagination.GetMeta(params, total),
	})
}

// Get returns a single user by id (admin only)
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	user, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	return response.Success(c, "", user.ToResponse())
}

// Update applies the admin allow-list, including role changes (admin
// only).
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	var req services.AdminUpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.AdminUpdate(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, "Role must be either user or admin")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", user.ToResponse())
}

// Delete soft-deletes a user (admin only). Admins cannot delete their
// own account.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	if err := h.userService.Delete(c.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "You cannot delete your own account")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}
