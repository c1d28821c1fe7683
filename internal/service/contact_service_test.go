package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"academy-api/internal/domain"
)

type fakeContactRepo struct {
	created []domain.ContactMessage
	err     error
}

func (f *fakeContactRepo) Create(_ context.Context, msg domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeContactRepo) ListByKind(_ context.Context, kind string, _ int) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	for _, m := range f.created {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out, nil
}

type capturingSender struct {
	sent chan string
}

func newCapturingSender() *capturingSender {
	return &capturingSender{sent: make(chan string, 4)}
}

func (s *capturingSender) Send(_ context.Context, to, subject, _ string) error {
	s.sent <- subject
	return nil
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

func TestContactService_SubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	sender := newCapturingSender()
	svc := NewContactService(zap.NewNop(), repo, sender, allowAll{}, "inbox@academy.test")

	msg, err := svc.SubmitContact(context.Background(), SubmissionInput{
		Name:  "Marta",
		Email: "MARTA@Example.com ",
		Body:  "I would like a trial lesson.",
	})
	if err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if msg.Kind != domain.MessageKindContact {
		t.Fatalf("expected contact kind, got %s", msg.Kind)
	}
	if msg.Email != "marta@example.com" {
		t.Fatalf("expected normalized email, got %q", msg.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.created))
	}

	select {
	case subject := <-sender.sent:
		if subject != "New contact message from Marta" {
			t.Fatalf("unexpected subject %q", subject)
		}
	case <-time.After(time.Second):
		t.Fatalf("notification email never sent")
	}
}

func TestContactService_EnquiryUsesEnquirySubject(t *testing.T) {
	sender := newCapturingSender()
	svc := NewContactService(zap.NewNop(), &fakeContactRepo{}, sender, allowAll{}, "inbox@academy.test")

	_, err := svc.SubmitEnquiry(context.Background(), SubmissionInput{
		Name:     "Leo",
		Email:    "leo@example.com",
		CourseID: "business-english",
		Body:     "Is there an evening group?",
	})
	if err != nil {
		t.Fatalf("submit enquiry: %v", err)
	}

	select {
	case subject := <-sender.sent:
		if subject != "New course enquiry from Leo" {
			t.Fatalf("unexpected subject %q", subject)
		}
	case <-time.After(time.Second):
		t.Fatalf("notification email never sent")
	}
}

func TestContactService_Validation(t *testing.T) {
	svc := NewContactService(zap.NewNop(), &fakeContactRepo{}, nil, allowAll{}, "")

	cases := []SubmissionInput{
		{Name: "", Email: "a@b.c", Body: "x"},
		{Name: "A", Email: "not-an-email", Body: "x"},
		{Name: "A", Email: "a@b.c", Body: "  "},
	}
	for i, input := range cases {
		if _, err := svc.SubmitContact(context.Background(), input); !errors.Is(err, ErrContactInvalidInput) {
			t.Fatalf("case %d: expected ErrContactInvalidInput, got %v", i, err)
		}
	}
}

func TestContactService_RateLimited(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(zap.NewNop(), repo, nil, denyAll{}, "")

	_, err := svc.SubmitContact(context.Background(), SubmissionInput{
		Name: "A", Email: "a@b.c", Body: "x",
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("rate-limited submission must not be stored")
	}
}

func TestContactService_EmailFailureDoesNotFailSubmit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(zap.NewNop(), repo, failingSender{}, allowAll{}, "inbox@academy.test")

	if _, err := svc.SubmitContact(context.Background(), SubmissionInput{
		Name: "A", Email: "a@b.c", Body: "x",
	}); err != nil {
		t.Fatalf("submit must survive sender failure, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected message stored despite sender failure")
	}
}

func TestContactService_ListByKind(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(zap.NewNop(), repo, nil, allowAll{}, "")

	if _, err := svc.SubmitContact(context.Background(), SubmissionInput{Name: "A", Email: "a@b.c", Body: "x"}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if _, err := svc.SubmitEnquiry(context.Background(), SubmissionInput{Name: "B", Email: "b@b.c", Body: "y"}); err != nil {
		t.Fatalf("submit enquiry: %v", err)
	}

	msgs, err := svc.ListByKind(context.Background(), domain.MessageKindEnquiry, 10)
	if err != nil {
		t.Fatalf("list by kind: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Name != "B" {
		t.Fatalf("unexpected enquiry listing: %+v", msgs)
	}

	if _, err := svc.ListByKind(context.Background(), "spam", 10); !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected ErrContactInvalidInput for unknown kind, got %v", err)
	}
}

type failingSender struct{}

func (failingSender) Send(context.Context, string, string, string) error {
	return errors.New("smtp down")
}
