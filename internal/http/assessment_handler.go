package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy-api/internal/assessment"
	"academy-api/internal/service"
)

// AssessmentHandler exposes quiz sessions over HTTP. All state lives in the
// session registry; handlers only translate requests into session calls.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		assessments: assessments,
	}
}

// stateResponse is what every session endpoint returns: the snapshot plus,
// depending on the phase, the question under the cursor or the result.
type stateResponse struct {
	State    assessment.Snapshot  `json:"state"`
	Question *assessment.Question `json:"question,omitempty"`
	Result   *assessment.Result   `json:"result,omitempty"`
}

func sessionState(sess *assessment.Session) stateResponse {
	resp := stateResponse{State: sess.Snapshot()}
	if q, ok := sess.CurrentQuestion(); ok {
		resp.Question = &q
	}
	if r := sess.Result(); r != nil {
		resp.Result = r
	}
	return resp
}

// StartSession handles POST /assessments/:kind/sessions.
func (h *AssessmentHandler) StartSession(c *gin.Context) {
	kind := c.Param("kind")

	sess, err := h.assessments.Start(kind)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCatalog) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown assessment"})
			return
		}
		h.logger.Error("start assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start assessment"})
		return
	}

	c.JSON(http.StatusCreated, sessionState(sess))
}

// GetState handles GET /assessments/sessions/:id.
func (h *AssessmentHandler) GetState(c *gin.Context) {
	h.withSession(c, func(*assessment.Session) error { return nil })
}

// RecordAnswer handles PUT /assessments/sessions/:id/answers. A null value
// clears the stored answer.
func (h *AssessmentHandler) RecordAnswer(c *gin.Context) {
	var req struct {
		QuestionID int  `json:"question_id" binding:"required"`
		Value      *int `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.withSession(c, func(sess *assessment.Session) error {
		if req.Value == nil {
			return sess.ClearAnswer(req.QuestionID)
		}
		return sess.RecordAnswer(req.QuestionID, *req.Value)
	})
}

// Advance handles POST /assessments/sessions/:id/advance.
func (h *AssessmentHandler) Advance(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required,oneof=next previous"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid advance request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.withSession(c, func(sess *assessment.Session) error {
		sess.Advance(req.Direction == "next")
		return nil
	})
}

// Review handles POST /assessments/sessions/:id/review (submit early).
func (h *AssessmentHandler) Review(c *gin.Context) {
	h.withSession(c, func(sess *assessment.Session) error {
		sess.ForceReview()
		return nil
	})
}

// BackToAnswering handles POST /assessments/sessions/:id/back.
func (h *AssessmentHandler) BackToAnswering(c *gin.Context) {
	h.withSession(c, func(sess *assessment.Session) error {
		sess.BackToAnswering()
		return nil
	})
}

// Submit handles POST /assessments/sessions/:id/submit. Submitting outside
// the review phase is rejected; unanswered questions are not.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	sessionID := c.Param("id")

	var resp stateResponse
	submitErr := h.assessments.WithSession(sessionID, func(sess *assessment.Session) error {
		if _, ok := sess.Submit(); !ok {
			return errSubmitRejected
		}
		resp = sessionState(sess)
		return nil
	})
	if submitErr != nil {
		if errors.Is(submitErr, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if errors.Is(submitErr, errSubmitRejected) {
			c.JSON(http.StatusConflict, gin.H{"error": "submit only allowed from review"})
			return
		}
		h.logger.Error("submit failed", zap.Error(submitErr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Retry handles POST /assessments/sessions/:id/retry.
func (h *AssessmentHandler) Retry(c *gin.Context) {
	h.withSession(c, func(sess *assessment.Session) error {
		sess.Retry()
		return nil
	})
}

var errSubmitRejected = errors.New("submit rejected")

// withSession runs fn against the addressed session and renders the
// resulting state, mapping the shared error cases.
func (h *AssessmentHandler) withSession(c *gin.Context, fn func(*assessment.Session) error) {
	sessionID := c.Param("id")

	var resp stateResponse
	err := h.assessments.WithSession(sessionID, func(sess *assessment.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		resp = sessionState(sess)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, assessment.ErrUnknownQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown question"})
		default:
			h.logger.Error("session operation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session operation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
