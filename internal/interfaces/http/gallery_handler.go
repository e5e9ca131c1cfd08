package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

// specificationKeys are the fixed form fields that make up a gallery item's
// specifications bag.
var specificationKeys = []string{"size", "finish", "usage", "thickness", "waterAbsorption", "resistance"}

type GalleryHandler struct {
	service *application.GalleryService
}

func NewGalleryHandler(service *application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), parseListFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (h *GalleryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("multipart form expected"))
	}

	files, err := collectUploads(form)
	if err != nil {
		return respondError(c, err)
	}

	input := application.CreateGalleryInput{
		Title:          formValue(form.Value, "title"),
		Description:    formValue(form.Value, "description"),
		Category:       formValue(form.Value, "category"),
		Specifications: gallerySpecifications(form.Value),
	}
	captions := captionLookup(form.Value, "altText", len(files), true)

	item, err := h.service.Create(c.UserContext(), input, files, captions)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, domain.NewValidationError("multipart form expected"))
	}

	files, err := collectUploads(form)
	if err != nil {
		return respondError(c, err)
	}

	input := application.UpdateGalleryInput{
		Title:       optFormValue(form.Value, "title"),
		Description: optFormValue(form.Value, "description"),
		Category:    optFormValue(form.Value, "category"),
	}
	// Only touch the specifications bag when the request carries any of its fields.
	if specs := gallerySpecifications(form.Value); len(specs) > 0 {
		input.Specifications = specs
	}
	captions := captionLookup(form.Value, "altText", len(files), true)

	item, err := h.service.Update(c.UserContext(), c.Params("id"), input, files, captions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	index, err := c.ParamsInt("imageIndex")
	if err != nil {
		return respondError(c, domain.ErrInvalidImageIndex)
	}
	if err := h.service.DeleteImage(c.UserContext(), c.Params("id"), index); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func gallerySpecifications(values map[string][]string) map[string]string {
	specs := map[string]string{}
	for _, key := range specificationKeys {
		if v := formValue(values, key); v != "" {
			specs[key] = v
		}
	}
	return specs
}

// parseListFilter extracts the shared list query parameters.
func parseListFilter(c *fiber.Ctx) domain.ListFilter {
	filter := domain.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}
	switch c.Query("featured") {
	case "true":
		t := true
		filter.Featured = &t
	case "false":
		f := false
		filter.Featured = &f
	}
	return filter
}
