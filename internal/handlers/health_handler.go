package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// CacheStatus is the view of the testimonial cache the health check needs
type CacheStatus interface {
	IsReady() bool
	LastRefresh() time.Time
}

// HealthHandler reports readiness of the database and the testimonial cache
type HealthHandler struct {
	ping  func(ctx context.Context) error
	cache CacheStatus
}

func NewHealthHandler(ping func(ctx context.Context) error, cache CacheStatus) *HealthHandler {
	return &HealthHandler{
		ping:  ping,
		cache: cache,
	}
}

// Healthcheck handles GET /api/healthcheck
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	if h.cache != nil && !h.cache.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "testimonial cache not initialized",
		})
		return
	}

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			attachError(c, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"reason": "database unreachable",
			})
			return
		}
	}

	body := gin.H{"status": "ok"}
	if h.cache != nil {
		body["testimonials_refreshed_at"] = h.cache.LastRefresh().UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, body)
}
