package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GalleryCategories is the closed set of categories a gallery item may use.
var GalleryCategories = []string{
	"Porcelain Tiles",
	"Porcelain Tiles Fabrications",
	"Slab Tiles",
	"Ceramic Tiles",
	"Outdoor Heavy-Duty Tiles",
	"Mosaic Fabrications from Tiles",
	"Swimming Pool Tiles",
	"Marble and Granite",
	"Marble Countertops and Fabrications",
	"Sanitary Ware",
	"Bathroom Fittings",
}

// ValidGalleryCategory reports whether category is in GalleryCategories.
func ValidGalleryCategory(category string) bool {
	for _, c := range GalleryCategories {
		if c == category {
			return true
		}
	}
	return false
}

// GalleryItem is a showcased product with its ordered image attachments.
// Images is never empty for a persisted item.
type GalleryItem struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Images         []ImageAttachment `json:"images"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type GalleryRepository interface {
	// List returns the matching page and the total match count.
	List(ctx context.Context, filter ListFilter) ([]GalleryItem, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GalleryItem, error)
	Create(ctx context.Context, item *GalleryItem) error
	Update(ctx context.Context, item *GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	Recent(ctx context.Context, limit int) ([]GalleryItem, error)
}
