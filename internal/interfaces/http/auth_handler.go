package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges admin credentials for a bearer token. The username field
// carries the email, matching the admin panel's login form.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.NewValidationError("invalid request body"))
	}

	result, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Register creates an admin account with the default password.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.NewValidationError("invalid request body"))
	}

	admin, err := h.service.Register(c.UserContext(), req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "adminId": admin.ID})
}

// Seed idempotently creates the fixed admin account set.
func (h *AuthHandler) Seed(c *fiber.Ctx) error {
	if err := h.service.Seed(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ChangePassword replaces the caller's password after verifying the old one.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthorized)
	}

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.NewValidationError("invalid request body"))
	}

	if err := h.service.ChangePassword(c.UserContext(), id, req.OldPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
