package repository

import (
	"context"
	"database/sql"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) domain.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, req domain.CreateInquiryRequest) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, 'New')
		RETURNING id`,
		req.Name, req.Email, req.Phone, req.Message,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, message, status, sent_at, responded_at
		FROM inquiries ORDER BY sent_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var inq domain.Inquiry
		var respondedAt sql.NullTime
		if err := rows.Scan(
			&inq.ID, &inq.Name, &inq.Email, &inq.Phone,
			&inq.Message, &inq.Status, &inq.SentAt, &respondedAt,
		); err != nil {
			return nil, err
		}
		if respondedAt.Valid {
			inq.RespondedAt = &respondedAt.Time
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE inquiries SET status = $1, responded_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
