package middleware

import (
	"strings"

	"insureportal/internal/config"
	"insureportal/internal/core/domain"
	"insureportal/internal/pkg/jwt"
	"insureportal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. A missing token is
// 401; a token that is present but expired or malformed is 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Forbidden(c, "Access token expired")
			}
			return response.Forbidden(c, "Invalid access token")
		}

		// Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		// Check if user's role is in allowed roles
		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(string(domain.RoleAdmin))
}

// ActorFromContext builds the acting user from the locals the auth
// middleware set. Only valid behind AuthMiddleware.
func ActorFromContext(c *fiber.Ctx) domain.Actor {
	actor := domain.Actor{}
	if id, ok := c.Locals("userID").(uint); ok {
		actor.ID = id
	}
	if email, ok := c.Locals("email").(string); ok {
		actor.Email = email
	}
	if role, ok := c.Locals("role").(string); ok {
		actor.Role = domain.Role(role)
	}
	return actor
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
