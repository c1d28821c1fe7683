package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"academy-api/internal/domain"
	"academy-api/internal/event"
	"academy-api/internal/repository"
)

var (
	ErrBlogInvalidInput = errors.New("blog invalid input")
	ErrBlogBadStatus    = errors.New("blog unknown status")
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// BlogService owns post creation, updates and public listing. Post events
// are published fire-and-forget: a broker outage must not block authoring.
type BlogService struct {
	logger    *zap.Logger
	posts     repository.BlogRepository
	publisher event.Publisher
}

func NewBlogService(logger *zap.Logger, posts repository.BlogRepository, publisher event.Publisher) *BlogService {
	return &BlogService{
		logger:    logger,
		posts:     posts,
		publisher: publisher,
	}
}

type CreatePostInput struct {
	Title   string
	Excerpt string
	Body    string
	Author  string
	Status  string
	Tags    []string
}

func (s *BlogService) CreatePost(ctx context.Context, input CreatePostInput) (domain.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if title == "" || body == "" {
		return domain.BlogPost{}, ErrBlogInvalidInput
	}
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status == "" {
		status = domain.BlogStatusDraft
	}
	if !domain.ValidBlogStatus(status) {
		return domain.BlogPost{}, fmt.Errorf("%w: %s", ErrBlogBadStatus, status)
	}

	now := time.Now().UTC()
	post := domain.BlogPost{
		ID:        uuid.NewString(),
		Slug:      Slugify(title),
		Title:     title,
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Body:      body,
		Author:    strings.TrimSpace(input.Author),
		Status:    status,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return domain.BlogPost{}, fmt.Errorf("create post: %w", err)
	}

	s.publish(event.TypeBlogPostCreated, post)
	return post, nil
}

type UpdatePostInput struct {
	Title   string
	Excerpt string
	Body    string
	Status  string
	Tags    []string
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, input UpdatePostInput) (domain.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return domain.BlogPost{}, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		post.Title = title
		post.Slug = Slugify(title)
	}
	if excerpt := strings.TrimSpace(input.Excerpt); excerpt != "" {
		post.Excerpt = excerpt
	}
	if body := strings.TrimSpace(input.Body); body != "" {
		post.Body = body
	}
	if status := strings.ToLower(strings.TrimSpace(input.Status)); status != "" {
		if !domain.ValidBlogStatus(status) {
			return domain.BlogPost{}, fmt.Errorf("%w: %s", ErrBlogBadStatus, status)
		}
		post.Status = status
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return domain.BlogPost{}, fmt.Errorf("update post: %w", err)
	}

	s.publish(event.TypeBlogPostUpdated, post)
	return post, nil
}

// ListPublished returns published posts, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListByStatus(ctx, domain.BlogStatusPublished)
}

// ListByStatus is the admin listing; status must be a known value.
func (s *BlogService) ListByStatus(ctx context.Context, status string) ([]domain.BlogPost, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !domain.ValidBlogStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrBlogBadStatus, status)
	}
	return s.posts.ListByStatus(ctx, status)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	return s.posts.FindBySlug(ctx, strings.TrimSpace(slug))
}

func (s *BlogService) publish(eventType string, post domain.BlogPost) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, post); err != nil {
		s.logger.Warn("post event publish failed",
			zap.String("type", eventType),
			zap.String("post_id", post.ID),
			zap.Error(err),
		)
	}
}

// Slugify lowercases the title and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
