package handlers

import (
	"errors"
	"strings"

	"insureportal/internal/adapters/http/middleware"
	"insureportal/internal/config"
	"insureportal/internal/core/services"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot-password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents reset-password request body
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register handles user registration. The role field, if sent, is
// ignored: every new account starts as a regular user.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if strings.TrimSpace(req.FirstName) == "" {
		return response.BadRequest(c, "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return response.BadRequest(c, "Last name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "User with this email already exists")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "Password must be at least 6 characters")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", result)
}

// Login handles user login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	input := &services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", result)
}

// Me returns the authenticated user's own record
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	user, err := h.authService.GetUserByID(c.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	return response.Success(c, "", user.ToResponse())
}

// ForgotPassword starts the password reset flow. The response is the
// same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}

	result, err := h.authService.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		return response.InternalServerError(c, "Failed to process request")
	}

	return response.Success(c, result.Message, nil)
}

// ResetPassword completes the password reset flow
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Token) == "" {
		return response.BadRequest(c, "Reset token is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	if err := h.authService.ResetPassword(c.Context(), req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrResetTokenInvalid):
			return response.BadRequest(c, "Password reset token is invalid or has expired")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "Password must be at least 6 characters")
		default:
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, "Password has been reset successfully", nil)
}
