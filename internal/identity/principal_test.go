package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principalFor(t *testing.T, claims jwt.MapClaims, setToken bool) (Principal, error) {
	t.Helper()

	var (
		principal Principal
		err       error
	)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if setToken {
			c.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
		}
		principal, err = FromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	resp.Body.Close()

	return principal, err
}

func TestFromContext(t *testing.T) {
	userID := uuid.New()

	t.Run("valid admin claims", func(t *testing.T) {
		p, err := principalFor(t, jwt.MapClaims{"sub": userID.String(), "role": RoleAdmin}, true)
		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.True(t, p.IsAdmin())
	})

	t.Run("role defaults to user", func(t *testing.T) {
		p, err := principalFor(t, jwt.MapClaims{"sub": userID.String()}, true)
		require.NoError(t, err)
		assert.Equal(t, RoleUser, p.Role)
		assert.False(t, p.IsAdmin())
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := principalFor(t, nil, false)
		assert.Error(t, err)
	})

	t.Run("missing sub claim", func(t *testing.T) {
		_, err := principalFor(t, jwt.MapClaims{"role": RoleAdmin}, true)
		assert.Error(t, err)
	})

	t.Run("malformed sub claim", func(t *testing.T) {
		_, err := principalFor(t, jwt.MapClaims{"sub": "not-a-uuid"}, true)
		assert.Error(t, err)
	})
}
