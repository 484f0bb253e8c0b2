package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Principal is the caller identity supplied by the identity service via JWT.
// The core trusts these claims and performs its own ownership/role checks.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FromContext extracts the principal from JWT claims in Fiber context.
func FromContext(c *fiber.Ctx) (Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Principal{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Principal{}, errors.New("missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, errors.New("malformed sub claim")
	}

	role := RoleUser
	if r, ok := claims["role"].(string); ok && r != "" {
		role = r
	}

	return Principal{UserID: userID, Role: role}, nil
}
