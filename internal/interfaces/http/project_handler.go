package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

type ProjectHandler struct {
	service *application.ProjectService
}

func NewProjectHandler(service *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), parseListFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	project, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("multipart form expected"))
	}

	files, err := collectUploads(form)
	if err != nil {
		return respondError(c, err)
	}

	products, err := parseProductsUsed(formValue(form.Value, "productsUsed"))
	if err != nil {
		return respondError(c, err)
	}
	completionDate, err := parseDate(formValue(form.Value, "completionDate"))
	if err != nil {
		return respondError(c, err)
	}

	input := application.CreateProjectInput{
		Title:          formValue(form.Value, "title"),
		Client:         formValue(form.Value, "client"),
		Location:       formValue(form.Value, "location"),
		Description:    formValue(form.Value, "description"),
		Category:       formValue(form.Value, "category"),
		Scope:          formValue(form.Value, "scope"),
		CompletionDate: completionDate,
		Featured:       formValue(form.Value, "featured") == "true",
		ProductsUsed:   products,
	}
	captions := captionLookup(form.Value, "caption", len(files), false)

	project, err := h.service.Create(c.UserContext(), input, files, captions)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("multipart form expected"))
	}

	files, err := collectUploads(form)
	if err != nil {
		return respondError(c, err)
	}

	input := application.UpdateProjectInput{
		Title:       optFormValue(form.Value, "title"),
		Client:      optFormValue(form.Value, "client"),
		Location:    optFormValue(form.Value, "location"),
		Description: optFormValue(form.Value, "description"),
		Category:    optFormValue(form.Value, "category"),
		Scope:       optFormValue(form.Value, "scope"),
	}

	if raw := formValue(form.Value, "productsUsed"); raw != "" {
		products, err := parseProductsUsed(raw)
		if err != nil {
			return respondError(c, err)
		}
		input.ProductsUsed = products
	}
	if raw := formValue(form.Value, "completionDate"); raw != "" {
		completionDate, err := parseDate(raw)
		if err != nil {
			return respondError(c, err)
		}
		input.CompletionDate = completionDate
	}
	if raw := optFormValue(form.Value, "featured"); raw != nil {
		featured := *raw == "true"
		input.Featured = &featured
	}
	captions := captionLookup(form.Value, "caption", len(files), false)

	project, err := h.service.Update(c.UserContext(), c.Params("id"), input, files, captions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) DeleteImage(c *fiber.Ctx) error {
	index, err := c.ParamsInt("imageIndex")
	if err != nil {
		return respondError(c, domain.ErrInvalidImageIndex)
	}
	if err := h.service.DeleteImage(c.UserContext(), c.Params("id"), index); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// parseProductsUsed decodes the JSON-encoded productsUsed form field.
func parseProductsUsed(raw string) ([]domain.ProductUsed, error) {
	if raw == "" {
		return nil, nil
	}
	var products []domain.ProductUsed
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, domain.NewValidationError("invalid productsUsed format")
	}
	return products, nil
}

// parseDate accepts RFC 3339 timestamps or plain yyyy-mm-dd dates.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError("invalid completionDate %q", raw)
}
