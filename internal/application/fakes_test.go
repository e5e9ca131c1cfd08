package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

// fakeBlobStore records uploads and deletes in memory.
type fakeBlobStore struct {
	objects      map[string]bool
	uploads      []string
	deleted      []string
	uploadCount  int
	failUploadAt int // position at which Upload fails, -1 for never
	failDelete   bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string]bool{}, failUploadAt: -1}
}

func (f *fakeBlobStore) Upload(_ context.Context, folder, filename, _ string, _ []byte) (string, error) {
	if f.failUploadAt >= 0 && f.uploadCount == f.failUploadAt {
		return "", errors.New("blob store rejected write")
	}
	key := fmt.Sprintf("%s/%d-%s", folder, f.uploadCount, filename)
	f.uploadCount++
	f.objects[key] = true
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.failDelete {
		return errors.New("blob store unavailable")
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobStore) URL(key string) string {
	return "https://cdn.test/" + key
}

// fakeGalleryRepo is an in-memory domain.GalleryRepository.
type fakeGalleryRepo struct {
	items     map[uuid.UUID]*domain.GalleryItem
	createErr error

	// When set, List returns these instead of the stored items.
	listItems []domain.GalleryItem
	listTotal int
	lastList  domain.ListFilter
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{items: map[uuid.UUID]*domain.GalleryItem{}}
}

func (f *fakeGalleryRepo) List(_ context.Context, filter domain.ListFilter) ([]domain.GalleryItem, int, error) {
	f.lastList = filter
	if f.listItems != nil {
		return f.listItems, f.listTotal, nil
	}
	all := f.all()
	return all, len(all), nil
}

func (f *fakeGalleryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.GalleryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeGalleryRepo) Create(_ context.Context, item *domain.GalleryItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeGalleryRepo) Update(_ context.Context, item *domain.GalleryItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeGalleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeGalleryRepo) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeGalleryRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, item := range f.items {
		if !item.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeGalleryRepo) Recent(_ context.Context, limit int) ([]domain.GalleryItem, error) {
	all := f.all()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeGalleryRepo) all() []domain.GalleryItem {
	items := make([]domain.GalleryItem, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items
}

// fakeProjectRepo is an in-memory domain.ProjectRepository.
type fakeProjectRepo struct {
	projects  map[uuid.UUID]*domain.Project
	createErr error

	listItems []domain.Project
	listTotal int
	lastList  domain.ListFilter
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*domain.Project{}}
}

func (f *fakeProjectRepo) List(_ context.Context, filter domain.ListFilter) ([]domain.Project, int, error) {
	f.lastList = filter
	if f.listItems != nil {
		return f.listItems, f.listTotal, nil
	}
	all := f.all()
	return all, len(all), nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *project
	return &copied, nil
}

func (f *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project *domain.Project) error {
	if _, ok := f.projects[project.ID]; !ok {
		return domain.ErrNotFound
	}
	project.UpdatedAt = time.Now()
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) Count(_ context.Context) (int, error) {
	return len(f.projects), nil
}

func (f *fakeProjectRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, project := range f.projects {
		if !project.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeProjectRepo) Recent(_ context.Context, limit int) ([]domain.Project, error) {
	all := f.all()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeProjectRepo) all() []domain.Project {
	projects := make([]domain.Project, 0, len(f.projects))
	for _, project := range f.projects {
		projects = append(projects, *project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].CreatedAt.After(projects[j].CreatedAt) })
	return projects
}

// fakeAdminRepo is an in-memory domain.AdminRepository.
type fakeAdminRepo struct {
	admins map[uuid.UUID]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[uuid.UUID]*domain.Admin{}}
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	copied := *admin
	f.admins[admin.ID] = &copied
	return nil
}

func (f *fakeAdminRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	admin, ok := f.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	admin.LastLogin = &at
	return nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	admin, ok := f.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	admin.Password = hash
	admin.IsDefaultPassword = false
	return nil
}

func (f *fakeAdminRepo) Count(_ context.Context) (int, error) {
	return len(f.admins), nil
}
