package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/rbac"
)

// RequireCapability gates a route on the capability map. Runs after
// AuthMiddleware; no principal means 401, a role without the action means 403.
// Unknown roles carry no capabilities, so they are denied here too.
func RequireCapability(action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
		}
		if !rbac.Allowed(p.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role not permitted for this action"})
		}
		return c.Next()
	}
}
