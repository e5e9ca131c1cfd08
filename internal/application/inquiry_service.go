package application

import (
	"context"
	"fmt"
	"html"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"go.uber.org/zap"
)

// InquiryNotifier sends the new-inquiry notification email.
type InquiryNotifier interface {
	SendEmail(to, subject, htmlBody string) error
}

type InquiryService struct {
	repo       domain.InquiryRepository
	notifier   InquiryNotifier
	notifyAddr string
	log        *zap.SugaredLogger
}

// NewInquiryService builds the service. notifier may be nil, in which case
// inquiries are stored without sending email.
func NewInquiryService(repo domain.InquiryRepository, notifier InquiryNotifier, notifyAddr string, log *zap.SugaredLogger) *InquiryService {
	return &InquiryService{repo: repo, notifier: notifier, notifyAddr: notifyAddr, log: log}
}

// Create stores the inquiry and notifies the site admins. The email is
// best-effort: a send failure is logged, never surfaced to the visitor.
func (s *InquiryService) Create(ctx context.Context, req domain.CreateInquiryRequest) (int64, error) {
	if req.Name == "" {
		return 0, domain.NewValidationError("name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return 0, err
	}
	if err := validatePhone(req.Phone); err != nil {
		return 0, err
	}
	if req.Message == "" {
		return 0, domain.NewValidationError("message is required")
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, err
	}

	if s.notifier != nil && s.notifyAddr != "" {
		subject := fmt.Sprintf("New website inquiry from %s", req.Name)
		if err := s.notifier.SendEmail(s.notifyAddr, subject, inquiryHTML(req)); err != nil {
			s.log.Warnw("inquiry notification failed", "inquiry", id, "error", err)
		}
	}
	return id, nil
}

// List returns all inquiries, newest first.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves an inquiry to a new follow-up state.
func (s *InquiryService) UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus) error {
	if !domain.ValidInquiryStatus(status) {
		return domain.NewValidationError("unknown inquiry status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func inquiryHTML(req domain.CreateInquiryRequest) string {
	return fmt.Sprintf(`
		<h2>New inquiry from the website contact form</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Phone),
		html.EscapeString(req.Message),
	)
}
