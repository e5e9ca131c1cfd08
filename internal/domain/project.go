package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProjectCategories is the closed set of categories a project may use.
var ProjectCategories = []string{
	"Residential",
	"Commercial",
	"Hospitality",
	"Government",
	"Pool & Villa",
}

// ValidProjectCategory reports whether category is in ProjectCategories.
func ValidProjectCategory(category string) bool {
	for _, c := range ProjectCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductUsed records one product line installed in a project. Entries with
// an empty Name are invalid and are dropped on write.
type ProductUsed struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

// FilterProductsUsed drops entries whose Name is empty.
func FilterProductsUsed(products []ProductUsed) []ProductUsed {
	filtered := make([]ProductUsed, 0, len(products))
	for _, p := range products {
		if p.Name != "" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Project is a completed installation reference with its ordered image
// attachments. Images is never empty for a persisted project.
type Project struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Client         string            `json:"client"`
	Location       string            `json:"location"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Scope          string            `json:"scope"`
	CompletionDate *time.Time        `json:"completionDate"`
	Featured       bool              `json:"featured"`
	Images         []ImageAttachment `json:"images"`
	ProductsUsed   []ProductUsed     `json:"productsUsed"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type ProjectRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Project, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	Recent(ctx context.Context, limit int) ([]Project, error)
}
