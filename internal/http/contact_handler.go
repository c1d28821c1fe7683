package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy-api/internal/domain"
	"academy-api/internal/service"
)

// ContactHandler serves the two notification endpoints. They are
// intentionally near-identical; only the message kind differs.
type ContactHandler struct {
	logger  *zap.Logger
	contact *service.ContactService
}

func NewContactHandler(logger *zap.Logger, contact *service.ContactService) *ContactHandler {
	return &ContactHandler{logger: logger, contact: contact}
}

type submissionRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	CourseID string `json:"course_id"`
	Message  string `json:"message" binding:"required"`
}

// SubmitContact handles POST /contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	h.submit(c, h.contact.SubmitContact)
}

// SubmitEnquiry handles POST /enquiries.
func (h *ContactHandler) SubmitEnquiry(c *gin.Context) {
	h.submit(c, h.contact.SubmitEnquiry)
}

// ListMessages handles GET /admin/messages?kind=contact behind the JWT
// gate.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	kind := c.DefaultQuery("kind", domain.MessageKindContact)

	msgs, err := h.contact.ListByKind(c.Request.Context(), kind, 50)
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown kind"})
			return
		}
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *ContactHandler) submit(c *gin.Context, fn func(context.Context, service.SubmissionInput) (domain.ContactMessage, error)) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := fn(c.Request.Context(), service.SubmissionInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CourseID: req.CourseID,
		Body:     req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions"})
		default:
			h.logger.Error("submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": msg.ID})
}
