package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

// stubAdminRepo satisfies domain.AdminRepository for token verification,
// which never touches the store.
type stubAdminRepo struct{}

func (stubAdminRepo) GetByEmail(context.Context, string) (*domain.Admin, error) {
	return nil, domain.ErrNotFound
}
func (stubAdminRepo) GetByID(context.Context, uuid.UUID) (*domain.Admin, error) {
	return nil, domain.ErrNotFound
}
func (stubAdminRepo) Create(context.Context, *domain.Admin) error            { return nil }
func (stubAdminRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error { return nil }
func (stubAdminRepo) UpdatePassword(context.Context, uuid.UUID, string) error     { return nil }
func (stubAdminRepo) Count(context.Context) (int, error)                          { return 0, nil }

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	auth := application.NewAuthService(stubAdminRepo{}, testSecret, "changeme", zap.NewNop().Sugar())

	app := fiber.New()
	app.Get("/protected", RequireAdmin(auth), func(c *fiber.Ctx) error {
		if _, ok := adminID(c); !ok {
			t.Error("admin identity missing from request locals")
		}
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func signToken(t *testing.T, secret string, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	app := newProtectedApp(t)
	adminID := uuid.New()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, adminID.String(), time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_Rejects(t *testing.T) {
	app := newProtectedApp(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", signToken(t, testSecret, uuid.NewString(), time.Now().Add(time.Hour))},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", uuid.NewString(), time.Now().Add(time.Hour))},
		{"expired token", "Bearer " + signToken(t, testSecret, uuid.NewString(), time.Now().Add(-time.Hour))},
		{"non-uuid subject", "Bearer " + signToken(t, testSecret, "admin", time.Now().Add(time.Hour))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
