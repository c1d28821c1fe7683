package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"academy-api/internal/domain"
	"academy-api/internal/email"
	"academy-api/internal/repository"
)

var (
	ErrContactInvalidInput = errors.New("contact invalid input")
	ErrRateLimited         = errors.New("rate limited")
)

// ContactService handles the contact-form and course-enquiry submissions.
// Both flows persist the message and then notify the site inbox; the email
// is fire-and-forget so a broken SMTP relay never loses a lead.
type ContactService struct {
	logger      *zap.Logger
	messages    repository.ContactRepository
	emailSender email.Sender
	limiter     RateLimiter
	notifyEmail string
}

func NewContactService(
	logger *zap.Logger,
	messages repository.ContactRepository,
	emailSender email.Sender,
	limiter RateLimiter,
	notifyEmail string,
) *ContactService {
	if limiter == nil {
		limiter = NewRateLimiter(10*time.Minute, 3)
	}
	return &ContactService{
		logger:      logger,
		messages:    messages,
		emailSender: emailSender,
		limiter:     limiter,
		notifyEmail: notifyEmail,
	}
}

type SubmissionInput struct {
	Name     string
	Email    string
	Phone    string
	CourseID string
	Body     string
}

// SubmitContact records a contact-form message.
func (s *ContactService) SubmitContact(ctx context.Context, input SubmissionInput) (domain.ContactMessage, error) {
	return s.submit(ctx, domain.MessageKindContact, input)
}

// SubmitEnquiry records a course enquiry. Same flow as SubmitContact with a
// different kind and subject line.
func (s *ContactService) SubmitEnquiry(ctx context.Context, input SubmissionInput) (domain.ContactMessage, error) {
	return s.submit(ctx, domain.MessageKindEnquiry, input)
}

func (s *ContactService) submit(ctx context.Context, kind string, input SubmissionInput) (domain.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	emailAddr := normalizeEmail(input.Email)
	body := strings.TrimSpace(input.Body)
	if name == "" || emailAddr == "" || body == "" {
		return domain.ContactMessage{}, ErrContactInvalidInput
	}

	if !s.limiter.Allow(emailAddr) {
		return domain.ContactMessage{}, ErrRateLimited
	}

	msg := domain.ContactMessage{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		Email:     emailAddr,
		Phone:     strings.TrimSpace(input.Phone),
		CourseID:  strings.TrimSpace(input.CourseID),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("store %s message: %w", kind, err)
	}

	s.notify(msg)
	return msg, nil
}

// ListByKind returns recent submissions of one kind, newest first.
func (s *ContactService) ListByKind(ctx context.Context, kind string, limit int) ([]domain.ContactMessage, error) {
	if kind != domain.MessageKindContact && kind != domain.MessageKindEnquiry {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrContactInvalidInput, kind)
	}
	return s.messages.ListByKind(ctx, kind, limit)
}

func (s *ContactService) notify(msg domain.ContactMessage) {
	if s.emailSender == nil || strings.TrimSpace(s.notifyEmail) == "" {
		return
	}

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	if msg.Kind == domain.MessageKindEnquiry {
		subject = fmt.Sprintf("New course enquiry from %s", msg.Name)
	}
	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\nCourse: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.CourseID, msg.Body)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.emailSender.Send(ctx, s.notifyEmail, subject, body); err != nil {
			s.logger.Warn("notification email failed",
				zap.String("kind", msg.Kind),
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
		}
	}()
}

func normalizeEmail(addr string) string {
	addr = strings.ToLower(strings.TrimSpace(addr))
	if !strings.Contains(addr, "@") || strings.HasPrefix(addr, "@") || strings.HasSuffix(addr, "@") {
		return ""
	}
	return addr
}
