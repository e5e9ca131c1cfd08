package domain

import (
	"context"
	"time"
)

// InquiryStatus tracks the follow-up state of a contact inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "New"
	InquiryStatusResponded InquiryStatus = "Responded"
	InquiryStatusClosed    InquiryStatus = "Closed"
)

// ValidInquiryStatus reports whether s is a known status.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusResponded, InquiryStatusClosed:
		return true
	}
	return false
}

// Inquiry is a message sent through the public contact form.
type Inquiry struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	SentAt      time.Time     `json:"sentAt"`
	RespondedAt *time.Time    `json:"respondedAt"`
}

// CreateInquiryRequest carries the fields accepted from the public form.
type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type InquiryRepository interface {
	Create(ctx context.Context, req CreateInquiryRequest) (int64, error)
	List(ctx context.Context) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status InquiryStatus) error
}
