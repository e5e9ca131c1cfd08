package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

type InquiryHandler struct {
	service *application.InquiryService
}

func NewInquiryHandler(service *application.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Create accepts a message from the public contact form.
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.NewValidationError("invalid request body"))
	}

	id, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

func (h *InquiryHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	return c.JSON(inquiries)
}

func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.NewValidationError("invalid inquiry id"))
	}

	var req struct {
		Status domain.InquiryStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.NewValidationError("invalid request body"))
	}

	if err := h.service.UpdateStatus(c.UserContext(), int64(id), req.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
