package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const formBodyLimit int64 = 32 << 10

// NewRouter mounts the landing page routes
func NewRouter(ctx context.Context, serviceName string, h *LandingHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.ObservabilityMiddleware("/healthz"))
	router.Use(middleware.SecurityHeadersMiddleware("no-cache"))

	// Refused posts get the page back with the form's failure notice
	formRateLimiter := middleware.NewRateLimiter(ctx, 2, 5)

	router.GET("/", h.Show)
	router.POST("/contact",
		formRateLimiter.MiddlewareWithReject(h.RejectContact),
		middleware.BodySizeLimitMiddlewareWithReject(formBodyLimit, h.RejectContact),
		h.SubmitContact)
	router.POST("/newsletter",
		formRateLimiter.MiddlewareWithReject(h.RejectNewsletter),
		middleware.BodySizeLimitMiddlewareWithReject(formBodyLimit, h.RejectNewsletter),
		h.SubmitNewsletter)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
