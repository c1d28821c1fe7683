package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy-api/internal/service"
)

// NewRouter configures the Gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	assessmentH *AssessmentHandler,
	blogH *BlogHandler,
	contactH *ContactHandler,
	authH *AuthHandler,
	contentH *ContentHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/assessments/:kind/sessions", assessmentH.StartSession)
	sessions := r.Group("/sessions/:id")
	sessions.GET("", assessmentH.GetState)
	sessions.PUT("/answers", assessmentH.RecordAnswer)
	sessions.POST("/advance", assessmentH.Advance)
	sessions.POST("/review", assessmentH.Review)
	sessions.POST("/back", assessmentH.BackToAnswering)
	sessions.POST("/submit", assessmentH.Submit)
	sessions.POST("/retry", assessmentH.Retry)

	blog := r.Group("/blog")
	blog.GET("/posts", blogH.ListPosts)
	blog.GET("/posts/:slug", blogH.GetPost)
	blog.POST("/posts", JWTAuthMiddleware(jwtSvc), blogH.CreatePost)
	blog.PUT("/posts/:id", JWTAuthMiddleware(jwtSvc), blogH.UpdatePost)
	blog.GET("/admin/posts", JWTAuthMiddleware(jwtSvc), blogH.ListPostsAdmin)

	r.POST("/contact", contactH.SubmitContact)
	r.POST("/enquiries", contactH.SubmitEnquiry)
	r.GET("/admin/messages", JWTAuthMiddleware(jwtSvc), contactH.ListMessages)

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)

	r.GET("/courses", contentH.ListCourses)
	r.GET("/careers", contentH.ListOpenings)

	return r
}

// zapLoggerMiddleware creates a simple request-logging middleware.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on
// responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
