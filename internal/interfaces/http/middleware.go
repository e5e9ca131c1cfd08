package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

// adminIDKey is the locals key the auth middleware stores the caller's
// identity under.
const adminIDKey = "adminID"

// RequireAdmin verifies the bearer token and attaches the admin identity to
// the request. Absent, malformed or invalid tokens end the request with 401.
func RequireAdmin(auth *application.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return respondError(c, domain.ErrUnauthorized)
		}

		adminID, err := auth.Authenticate(token)
		if err != nil {
			return respondError(c, err)
		}

		c.Locals(adminIDKey, adminID)
		return c.Next()
	}
}

// adminID returns the authenticated admin's identity set by RequireAdmin.
func adminID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(adminIDKey).(uuid.UUID)
	return id, ok
}
