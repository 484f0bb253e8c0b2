package middleware

import (
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired rejects callers whose token does not carry the ADMIN role.
// Role claims are issued by the identity service and trusted here.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := identity.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !principal.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
