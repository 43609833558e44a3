package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminRequired must run after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetClaims(c) == nil {
			return Unauthorized("Unauthorized")
		}
		if !IsAdmin(c) {
			return Forbidden("Forbidden - Admin access required")
		}
		return c.Next()
	}
}
