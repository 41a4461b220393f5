package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalPrincipal = "principal"
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalWarehouse = "warehouse_id"
	LocalSessionID = "session_id"
)

// AuthMiddleware validates the Bearer JWT, resolves its session and puts the
// principal into c.Locals. A valid token whose session was cleared (logout) or
// expired is rejected with AUTH_EXPIRED: the session store, not the token, is
// the source of truth for who is signed in.
func AuthMiddleware(jwtSecret string, sessions auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		principal, err := sessions.Current(c.Context(), claims.SessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "session lookup failed"})
		}
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_EXPIRED", Message: "session expired, sign in again"})
		}
		c.Locals(LocalPrincipal, principal)
		c.Locals(LocalUserID, principal.UserID)
		c.Locals(LocalRole, principal.Role)
		c.Locals(LocalWarehouse, principal.WarehouseID)
		c.Locals(LocalSessionID, principal.SessionID)
		return c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil outside the
// auth middleware.
func GetPrincipal(c *fiber.Ctx) *entity.Principal {
	p, _ := c.Locals(LocalPrincipal).(*entity.Principal)
	return p
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole returns the authenticated role from the context.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetWarehouseID returns the assigned warehouse from the context.
// Empty for superAdmin.
func GetWarehouseID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalWarehouse).(string)
	return s
}

// GetSessionID returns the session id from the context.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
