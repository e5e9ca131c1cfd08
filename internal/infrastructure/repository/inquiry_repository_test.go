package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

func setupInquiryMock(t *testing.T) (domain.InquiryRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewInquiryRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestInquiryCreate(t *testing.T) {
	repo, mock, cleanup := setupInquiryMock(t)
	defer cleanup()

	req := domain.CreateInquiryRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Phone:   "+97150000000",
		Message: "Looking for porcelain tiles",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO inquiries (name, email, phone, message, status)`)).
		WithArgs(req.Name, req.Email, req.Phone, req.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestInquiryList(t *testing.T) {
	repo, mock, cleanup := setupInquiryMock(t)
	defer cleanup()

	responded := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "status", "sent_at", "responded_at"}).
		AddRow(int64(2), "Sam", "sam@example.com", "", "quote please", "Responded", time.Now(), responded).
		AddRow(int64(1), "Jordan", "jordan@example.com", "+97150000000", "hello", "New", time.Now().Add(-time.Minute), nil)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM inquiries ORDER BY sent_at DESC`)).
		WillReturnRows(rows)

	inquiries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(inquiries))
	}
	if inquiries[0].RespondedAt == nil {
		t.Errorf("expected responded_at on responded inquiry")
	}
	if inquiries[1].RespondedAt != nil {
		t.Errorf("expected nil responded_at on new inquiry")
	}
}

func TestInquiryUpdateStatus_NotFound(t *testing.T) {
	repo, mock, cleanup := setupInquiryMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inquiries SET status = $1, responded_at = NOW() WHERE id = $2`)).
		WithArgs(string(domain.InquiryStatusResponded), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.InquiryStatusResponded)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
