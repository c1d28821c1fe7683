package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/sitedata"
)

// ContentHandler serves the static site content endpoints.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// ListCourses handles GET /courses.
func (h *ContentHandler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": sitedata.Courses()})
}

// ListOpenings handles GET /careers.
func (h *ContentHandler) ListOpenings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"openings": sitedata.Openings()})
}
