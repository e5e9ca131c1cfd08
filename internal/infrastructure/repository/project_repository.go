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

const projectColumns = `id, title, client, location, description, category, scope,
	completion_date, featured, images, products_used, created_at, updated_at`

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

// projectWhere builds the WHERE clause shared by List's count and page
// queries. Search additionally covers client and location.
func projectWhere(filter domain.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR client ILIKE $%d OR location ILIKE $%d OR description ILIKE $%d)", n, n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *projectRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Project, int, error) {
	where, args := projectWhere(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM projects%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		projectColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects, err := scanProjectRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns), id)

	project, err := scanProjectRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	images, products, err := marshalProjectJSON(project)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO projects (id, title, client, location, description, category, scope,
			completion_date, featured, images, products_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		project.ID, project.Title, project.Client, project.Location, project.Description,
		project.Category, project.Scope, project.CompletionDate, project.Featured, images, products,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	images, products, err := marshalProjectJSON(project)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = $2, client = $3, location = $4, description = $5, category = $6, scope = $7,
			completion_date = $8, featured = $9, images = $10, products_used = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		project.ID, project.Title, project.Client, project.Location, project.Description,
		project.Category, project.Scope, project.CompletionDate, project.Featured, images, products,
	).Scan(&project.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

func (r *projectRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func (r *projectRepository) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC LIMIT $1`, projectColumns), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjectRows(rows)
}

func marshalProjectJSON(project *domain.Project) (images, products []byte, err error) {
	images, err = json.Marshal(project.Images)
	if err != nil {
		return nil, nil, err
	}
	if project.ProductsUsed == nil {
		project.ProductsUsed = []domain.ProductUsed{}
	}
	products, err = json.Marshal(project.ProductsUsed)
	if err != nil {
		return nil, nil, err
	}
	return images, products, nil
}

func scanProjectRow(row rowScanner) (*domain.Project, error) {
	var project domain.Project
	var images, products []byte
	var completionDate sql.NullTime
	if err := row.Scan(
		&project.ID, &project.Title, &project.Client, &project.Location, &project.Description,
		&project.Category, &project.Scope, &completionDate, &project.Featured,
		&images, &products, &project.CreatedAt, &project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if completionDate.Valid {
		project.CompletionDate = &completionDate.Time
	}
	if err := json.Unmarshal(images, &project.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	if err := json.Unmarshal(products, &project.ProductsUsed); err != nil {
		return nil, fmt.Errorf("decoding products_used: %w", err)
	}
	return &project, nil
}

func scanProjectRows(rows *sql.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		project, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}
