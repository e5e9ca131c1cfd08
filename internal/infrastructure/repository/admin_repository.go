package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

const adminColumns = `id, email, password, is_default_password, name, role, last_login, created_at, updated_at`

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	return scanAdmin(row)
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	return scanAdmin(row)
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO admins (id, email, password, is_default_password, name, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		admin.ID, admin.Email, admin.Password, admin.IsDefaultPassword, admin.Name, admin.Role,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET last_login = $1 WHERE id = $2`, at, id)
	return err
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE admins
		SET password = $1, is_default_password = FALSE, updated_at = NOW()
		WHERE id = $2`, hash, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func scanAdmin(row rowScanner) (*domain.Admin, error) {
	var admin domain.Admin
	var lastLogin sql.NullTime
	err := row.Scan(
		&admin.ID, &admin.Email, &admin.Password, &admin.IsDefaultPassword,
		&admin.Name, &admin.Role, &lastLogin, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		admin.LastLogin = &lastLogin.Time
	}
	return &admin, nil
}
