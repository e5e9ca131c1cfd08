package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account. Password holds the bcrypt hash and is never
// serialized. IsDefaultPassword stays true until the account owner sets their
// own password.
type Admin struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Password          string     `json:"-"`
	IsDefaultPassword bool       `json:"isDefaultPassword"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	LastLogin         *time.Time `json:"lastLogin"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type AdminRepository interface {
	// GetByEmail returns ErrNotFound when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	// UpdatePassword stores the new hash and clears the default-password flag.
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Count(ctx context.Context) (int, error)
}
