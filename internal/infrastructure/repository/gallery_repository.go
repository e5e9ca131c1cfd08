package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

const galleryColumns = `id, title, description, category, specifications, images, created_at, updated_at`

type galleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{db: db}
}

// galleryWhere builds the WHERE clause shared by List's count and page
// queries. Search matches title and description, case-insensitive.
func galleryWhere(filter domain.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *galleryRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.GalleryItem, int, error) {
	where, args := galleryWhere(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_items`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM gallery_items%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		galleryColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanGalleryRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryItem, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM gallery_items WHERE id = $1`, galleryColumns), id)

	item, err := scanGalleryRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	specs, err := json.Marshal(specsOrEmpty(item.Specifications))
	if err != nil {
		return err
	}
	images, err := json.Marshal(item.Images)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO gallery_items (id, title, description, category, specifications, images)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		item.ID, item.Title, item.Description, item.Category, specs, images,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *galleryRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	specs, err := json.Marshal(specsOrEmpty(item.Specifications))
	if err != nil {
		return err
	}
	images, err := json.Marshal(item.Images)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, `
		UPDATE gallery_items
		SET title = $2, description = $3, category = $4, specifications = $5, images = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		item.ID, item.Title, item.Description, item.Category, specs, images,
	).Scan(&item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *galleryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_items`).Scan(&count)
	return count, err
}

func (r *galleryRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM gallery_items WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *galleryRepository) Recent(ctx context.Context, limit int) ([]domain.GalleryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM gallery_items ORDER BY created_at DESC LIMIT $1`, galleryColumns), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGalleryRows(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGalleryRow(row rowScanner) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	var specs, images []byte
	if err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Category,
		&specs, &images, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(specs, &item.Specifications); err != nil {
		return nil, fmt.Errorf("decoding specifications: %w", err)
	}
	if err := json.Unmarshal(images, &item.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	return &item, nil
}

func scanGalleryRows(rows *sql.Rows) ([]domain.GalleryItem, error) {
	var items []domain.GalleryItem
	for rows.Next() {
		item, err := scanGalleryRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func specsOrEmpty(specs map[string]string) map[string]string {
	if specs == nil {
		return map[string]string{}
	}
	return specs
}
