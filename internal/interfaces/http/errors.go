package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

// respondError maps a service error onto a status code and a JSON body.
// Internal failures are never echoed to the client.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	var uploadErr *domain.UploadError
	var batchErr *domain.BatchUploadError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	case errors.Is(err, domain.ErrInvalidImageIndex):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image index"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	case errors.As(err, &batchErr), errors.As(err, &uploadErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Image upload failed"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
