package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy-api/internal/domain"
	"academy-api/internal/repository"
	"academy-api/internal/service"
)

// BlogHandler exposes public post reads and admin-gated mutations.
type BlogHandler struct {
	logger *zap.Logger
	blog   *service.BlogService
}

func NewBlogHandler(logger *zap.Logger, blog *service.BlogService) *BlogHandler {
	return &BlogHandler{logger: logger, blog: blog}
}

// ListPosts handles GET /blog/posts: the public listing, published only.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blog.ListPublished(c.Request.Context())
	if err != nil {
		h.logger.Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListPostsAdmin handles GET /blog/admin/posts?status=draft behind the JWT
// gate.
func (h *BlogHandler) ListPostsAdmin(c *gin.Context) {
	status := c.DefaultQuery("status", domain.BlogStatusDraft)

	posts, err := h.blog.ListByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrBlogBadStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		h.logger.Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost handles GET /blog/posts/:slug.
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.logger.Error("get post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost handles POST /blog/posts.
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req struct {
		Title   string   `json:"title" binding:"required"`
		Excerpt string   `json:"excerpt"`
		Body    string   `json:"body" binding:"required"`
		Status  string   `json:"status"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claims, _ := GetAuthClaims(c)

	post, err := h.blog.CreatePost(c.Request.Context(), service.CreatePostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Body:    req.Body,
		Author:  claims.Email,
		Status:  req.Status,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrBlogInvalidInput) || errors.Is(err, service.ErrBlogBadStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post"})
			return
		}
		h.logger.Error("create post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost handles PUT /blog/posts/:id.
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req struct {
		Title   string   `json:"title"`
		Excerpt string   `json:"excerpt"`
		Body    string   `json:"body"`
		Status  string   `json:"status"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	post, err := h.blog.UpdatePost(c.Request.Context(), c.Param("id"), service.UpdatePostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Body:    req.Body,
		Status:  req.Status,
		Tags:    req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, service.ErrBlogBadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post"})
		default:
			h.logger.Error("update post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}
