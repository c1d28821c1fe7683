package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"academy-api/internal/domain"
	"academy-api/internal/event"
	"academy-api/internal/repository"
)

type fakeBlogRepo struct {
	created []domain.BlogPost
	updated []domain.BlogPost
	bySlug  map[string]domain.BlogPost
	byID    map[string]domain.BlogPost
	listed  []domain.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		bySlug: make(map[string]domain.BlogPost),
		byID:   make(map[string]domain.BlogPost),
	}
}

func (f *fakeBlogRepo) Create(_ context.Context, post domain.BlogPost) error {
	f.created = append(f.created, post)
	f.bySlug[post.Slug] = post
	f.byID[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post domain.BlogPost) error {
	if _, ok := f.byID[post.ID]; !ok {
		return repository.ErrPostNotFound
	}
	f.updated = append(f.updated, post)
	f.byID[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) FindBySlug(_ context.Context, slug string) (domain.BlogPost, error) {
	p, ok := f.bySlug[slug]
	if !ok {
		return domain.BlogPost{}, repository.ErrPostNotFound
	}
	return p, nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id string) (domain.BlogPost, error) {
	p, ok := f.byID[id]
	if !ok {
		return domain.BlogPost{}, repository.ErrPostNotFound
	}
	return p, nil
}

func (f *fakeBlogRepo) ListByStatus(_ context.Context, status string) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	for _, p := range f.byID {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePublisher struct {
	events []string
	err    error
}

func (f *fakePublisher) Publish(eventType string, _ interface{}) error {
	f.events = append(f.events, eventType)
	return f.err
}

func TestBlogService_CreatePublishesEvent(t *testing.T) {
	repo := newFakeBlogRepo()
	pub := &fakePublisher{}
	svc := NewBlogService(zap.NewNop(), repo, pub)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:  "Five Habits of Confident English Speakers",
		Body:   "body",
		Author: "Ana",
		Status: domain.BlogStatusPublished,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Slug != "five-habits-of-confident-english-speakers" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored post, got %d", len(repo.created))
	}
	if len(pub.events) != 1 || pub.events[0] != event.TypeBlogPostCreated {
		t.Fatalf("expected created event, got %v", pub.events)
	}
}

func TestBlogService_CreateValidation(t *testing.T) {
	svc := NewBlogService(zap.NewNop(), newFakeBlogRepo(), nil)

	if _, err := svc.CreatePost(context.Background(), CreatePostInput{Title: " ", Body: "x"}); !errors.Is(err, ErrBlogInvalidInput) {
		t.Fatalf("expected ErrBlogInvalidInput, got %v", err)
	}
	_, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "t", Body: "b", Status: "live"})
	if !errors.Is(err, ErrBlogBadStatus) {
		t.Fatalf("expected ErrBlogBadStatus, got %v", err)
	}
}

func TestBlogService_PublishFailureDoesNotFailCreate(t *testing.T) {
	repo := newFakeBlogRepo()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewBlogService(zap.NewNop(), repo, pub)

	if _, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "t", Body: "b"}); err != nil {
		t.Fatalf("create must survive publish failure, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected the post stored anyway")
	}
}

func TestBlogService_UpdateStatusAndList(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(zap.NewNop(), repo, &fakePublisher{})

	post, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "Draft piece", Body: "b"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Status != domain.BlogStatusDraft {
		t.Fatalf("expected default draft status, got %s", post.Status)
	}

	updated, err := svc.UpdatePost(context.Background(), post.ID, UpdatePostInput{Status: domain.BlogStatusPublished})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.BlogStatusPublished {
		t.Fatalf("expected published, got %s", updated.Status)
	}

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 published post, got %d", len(published))
	}

	if _, err := svc.ListByStatus(context.Background(), "live"); !errors.Is(err, ErrBlogBadStatus) {
		t.Fatalf("expected ErrBlogBadStatus, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":          "hello-world",
		"  IELTS — Top 10 Tips ": "ielts-top-10-tips",
		"already-slugged":        "already-slugged",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
