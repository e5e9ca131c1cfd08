package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"go.uber.org/zap"
)

const projectFolder = "projects"

// CreateProjectInput carries the form fields for a new project.
type CreateProjectInput struct {
	Title          string
	Client         string
	Location       string
	Description    string
	Category       string
	Scope          string
	CompletionDate *time.Time
	Featured       bool
	ProductsUsed   []domain.ProductUsed
}

// UpdateProjectInput carries partial-update fields; nil means unchanged.
type UpdateProjectInput struct {
	Title          *string
	Client         *string
	Location       *string
	Description    *string
	Category       *string
	Scope          *string
	CompletionDate *time.Time
	Featured       *bool
	ProductsUsed   []domain.ProductUsed
}

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Items       []domain.Project `json:"projects"`
	TotalItems  int              `json:"totalItems"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Limit       int              `json:"limit"`
}

type ProjectService struct {
	repo        domain.ProjectRepository
	attachments *AttachmentManager
	log         *zap.SugaredLogger
}

func NewProjectService(repo domain.ProjectRepository, attachments *AttachmentManager, log *zap.SugaredLogger) *ProjectService {
	return &ProjectService{repo: repo, attachments: attachments, log: log}
}

// Categories returns the closed category set for projects.
func (s *ProjectService) Categories() []string {
	return domain.ProjectCategories
}

// List returns one page of projects sorted by creation time descending.
func (s *ProjectService) List(ctx context.Context, filter domain.ListFilter) (*ProjectPage, error) {
	filter.Normalize()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Project{}
	}
	return &ProjectPage{
		Items:       items,
		TotalItems:  total,
		TotalPages:  (total + filter.Limit - 1) / filter.Limit,
		CurrentPage: filter.Page,
		Limit:       filter.Limit,
	}, nil
}

// GetByID resolves a project; malformed ids yield ErrNotFound.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, projectID)
}

func validateCreateProject(input CreateProjectInput) error {
	switch {
	case input.Title == "":
		return domain.NewValidationError("title is required")
	case input.Client == "":
		return domain.NewValidationError("client is required")
	case input.Location == "":
		return domain.NewValidationError("location is required")
	case input.Description == "":
		return domain.NewValidationError("description is required")
	}
	if !domain.ValidProjectCategory(input.Category) {
		return domain.NewValidationError("unknown project category %q", input.Category)
	}
	return nil
}

// Create uploads the payloads, assembles the project and persists it.
// productsUsed entries with an empty name are dropped.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput, files []UploadFile, captions CaptionLookup) (*domain.Project, error) {
	if err := validateCreateProject(input); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("at least one image is required")
	}

	images, err := s.attachments.AttachMany(ctx, files, projectFolder, 0, captions)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:             uuid.New(),
		Title:          input.Title,
		Client:         input.Client,
		Location:       input.Location,
		Description:    input.Description,
		Category:       input.Category,
		Scope:          input.Scope,
		CompletionDate: input.CompletionDate,
		Featured:       input.Featured,
		Images:         images,
		ProductsUsed:   domain.FilterProductsUsed(input.ProductsUsed),
	}
	if err := s.repo.Create(ctx, project); err != nil {
		s.logOrphans(images, err)
		return nil, err
	}
	return project, nil
}

// Update appends any new payloads after the existing images and merges the
// provided fields. Existing images are never reordered or replaced.
func (s *ProjectService) Update(ctx context.Context, id string, input UpdateProjectInput, files []UploadFile, captions CaptionLookup) (*domain.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && !domain.ValidProjectCategory(*input.Category) {
		return nil, domain.NewValidationError("unknown project category %q", *input.Category)
	}

	if len(files) > 0 {
		newImages, err := s.attachments.AttachMany(ctx, files, projectFolder, len(project.Images), captions)
		if err != nil {
			return nil, err
		}
		project.Images = append(project.Images, newImages...)
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Client != nil {
		project.Client = *input.Client
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Scope != nil {
		project.Scope = *input.Scope
	}
	if input.CompletionDate != nil {
		project.CompletionDate = input.CompletionDate
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.ProductsUsed != nil {
		project.ProductsUsed = domain.FilterProductsUsed(input.ProductsUsed)
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteImage removes the attachment at index, deleting its blob best-effort.
func (s *ProjectService) DeleteImage(ctx context.Context, id string, index int) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	remaining, err := s.attachments.Detach(ctx, project.Images, index)
	if err != nil {
		return err
	}
	project.Images = remaining
	return s.repo.Update(ctx, project)
}

// Delete removes the project and every attached blob, best-effort.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.attachments.DetachAll(ctx, project.Images)
	return s.repo.Delete(ctx, project.ID)
}

func (s *ProjectService) logOrphans(images []domain.ImageAttachment, cause error) {
	keys := make([]string, len(images))
	for i, img := range images {
		keys[i] = img.Key
	}
	s.log.Errorw("document save failed after upload, blobs orphaned", "keys", keys, "error", cause)
}
