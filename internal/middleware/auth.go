package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/service/auth"
)

const ClaimsContextKey = "claims"

// TokenValidator is the part of auth.Service the middleware needs.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthRequired accepts a bearer token and stores its claims in the request
// locals. No database lookup is made.
func AuthRequired(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return Unauthorized("Unauthorized")
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			return Unauthorized("Invalid token")
		}

		c.Locals(ClaimsContextKey, claims)
		return c.Next()
	}
}

func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, ok := c.Locals(ClaimsContextKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return uuid.Nil
}

func IsAdmin(c *fiber.Ctx) bool {
	claims := GetClaims(c)
	return claims != nil && claims.IsAdmin
}

func GetActor(c *fiber.Ctx) domain.Actor {
	claims := GetClaims(c)
	if claims == nil {
		return domain.Actor{}
	}
	return domain.Actor{ID: claims.UserID, IsAdmin: claims.IsAdmin}
}
