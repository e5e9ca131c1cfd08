package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"go.uber.org/zap"
)

const galleryFolder = "gallery"

// CreateGalleryInput carries the form fields for a new gallery item.
type CreateGalleryInput struct {
	Title          string
	Description    string
	Category       string
	Specifications map[string]string
}

// UpdateGalleryInput carries partial-update fields. Nil means "leave
// unchanged"; only fields present in the request overwrite stored values.
type UpdateGalleryInput struct {
	Title          *string
	Description    *string
	Category       *string
	Specifications map[string]string
}

// GalleryPage is one page of a gallery listing.
type GalleryPage struct {
	Items       []domain.GalleryItem `json:"galleryItems"`
	TotalItems  int                  `json:"totalItems"`
	TotalPages  int                  `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	Limit       int                  `json:"limit"`
}

type GalleryService struct {
	repo        domain.GalleryRepository
	attachments *AttachmentManager
	log         *zap.SugaredLogger
}

func NewGalleryService(repo domain.GalleryRepository, attachments *AttachmentManager, log *zap.SugaredLogger) *GalleryService {
	return &GalleryService{repo: repo, attachments: attachments, log: log}
}

// Categories returns the closed category set for gallery items.
func (s *GalleryService) Categories() []string {
	return domain.GalleryCategories
}

// List returns one page of gallery items sorted by creation time descending.
// No matches is an empty page, not an error.
func (s *GalleryService) List(ctx context.Context, filter domain.ListFilter) (*GalleryPage, error) {
	filter.Normalize()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.GalleryItem{}
	}
	return &GalleryPage{
		Items:       items,
		TotalItems:  total,
		TotalPages:  (total + filter.Limit - 1) / filter.Limit,
		CurrentPage: filter.Page,
		Limit:       filter.Limit,
	}, nil
}

// GetByID resolves a gallery item. A malformed id is indistinguishable from
// an absent one and yields ErrNotFound.
func (s *GalleryService) GetByID(ctx context.Context, id string) (*domain.GalleryItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, itemID)
}

// Create uploads the payloads, assembles the document and persists it.
// At least one payload is required. A failed save after the uploads leaves
// the blobs orphaned; the failure is logged with the keys.
func (s *GalleryService) Create(ctx context.Context, input CreateGalleryInput, files []UploadFile, captions CaptionLookup) (*domain.GalleryItem, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if !domain.ValidGalleryCategory(input.Category) {
		return nil, domain.NewValidationError("unknown gallery category %q", input.Category)
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("at least one image is required")
	}

	images, err := s.attachments.AttachMany(ctx, files, galleryFolder, 0, captions)
	if err != nil {
		return nil, err
	}

	item := &domain.GalleryItem{
		ID:             uuid.New(),
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Specifications: input.Specifications,
		Images:         images,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logOrphans(images, err)
		return nil, err
	}
	return item, nil
}

// Update appends any new payloads after the existing images and merges the
// provided scalar fields. Existing images are never reordered or replaced.
func (s *GalleryService) Update(ctx context.Context, id string, input UpdateGalleryInput, files []UploadFile, captions CaptionLookup) (*domain.GalleryItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && !domain.ValidGalleryCategory(*input.Category) {
		return nil, domain.NewValidationError("unknown gallery category %q", *input.Category)
	}

	if len(files) > 0 {
		newImages, err := s.attachments.AttachMany(ctx, files, galleryFolder, len(item.Images), captions)
		if err != nil {
			return nil, err
		}
		item.Images = append(item.Images, newImages...)
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Specifications != nil {
		item.Specifications = input.Specifications
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteImage removes the attachment at index from the item, deleting its
// blob best-effort, and re-normalizes the remaining orders.
func (s *GalleryService) DeleteImage(ctx context.Context, id string, index int) error {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	remaining, err := s.attachments.Detach(ctx, item.Images, index)
	if err != nil {
		return err
	}
	item.Images = remaining
	return s.repo.Update(ctx, item)
}

// Delete removes the item and every attached blob. Blob deletion is
// best-effort and never blocks the document removal.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.attachments.DetachAll(ctx, item.Images)
	return s.repo.Delete(ctx, item.ID)
}

func (s *GalleryService) logOrphans(images []domain.ImageAttachment, cause error) {
	keys := make([]string, len(images))
	for i, img := range images {
		keys[i] = img.Key
	}
	s.log.Errorw("document save failed after upload, blobs orphaned", "keys", keys, "error", cause)
}
