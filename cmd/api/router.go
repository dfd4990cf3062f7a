package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/internal/handlers"
	"github.com/origem/origem-api/internal/middleware"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// routeHandlers bundles everything the router mounts
type routeHandlers struct {
	status       *handlers.StatusHandler
	contact      *handlers.ContactHandler
	newsletter   *handlers.NewsletterHandler
	testimonial  *handlers.TestimonialHandler
	health       *handlers.HealthHandler
	tokenManager *jwt.TokenManager // nil disables the admin listing routes
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	// Browsers reject credentials with a wildcard origin
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	if cfg.IsDevelopment() {
		corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	corsCfg.AllowCredentials = true
	return corsCfg
}

// newRouter wires middleware and routes. Rate limiter cleanup stops when ctx is done.
func newRouter(ctx context.Context, cfg *config.Config, h routeHandlers) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware("/api/metrics", "/api/healthcheck"))
	router.Use(middleware.SecurityHeadersMiddleware(middleware.APICacheControl))
	router.Use(cors.New(corsConfig(cfg)))

	generalRateLimiter := middleware.NewRateLimiter(ctx, 100, 200) // 100 req/sec, burst of 200
	leadRateLimiter := middleware.NewRateLimiter(ctx, 5, 10)       // 5 req/sec, burst of 10
	adminRateLimiter := middleware.NewRateLimiter(ctx, 10, 20)

	bodyLimit := middleware.BodySizeLimitMiddleware(middleware.DefaultMaxBodySize)

	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), h.health.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api.GET("/", generalRateLimiter.Middleware(), h.status.Root)
	api.POST("/status", generalRateLimiter.Middleware(), bodyLimit, h.status.Create)
	api.GET("/status", generalRateLimiter.Middleware(), h.status.List)

	api.GET("/testimonials", generalRateLimiter.Middleware(), h.testimonial.List)
	api.POST("/contact", leadRateLimiter.Middleware(), bodyLimit, h.contact.Submit)
	api.POST("/newsletter", leadRateLimiter.Middleware(), bodyLimit, h.newsletter.Subscribe)

	registerAdminRoutes(api, adminRateLimiter, h)

	return router
}

func registerAdminRoutes(api *gin.RouterGroup, rl *middleware.RateLimiter, h routeHandlers) {
	if h.tokenManager == nil {
		logger.Warn("Admin routes disabled: ADMIN_JWT_SECRET not configured")
		return
	}

	auth := middleware.AdminAuthMiddleware(h.tokenManager)
	api.GET("/contacts", rl.Middleware(), auth, h.contact.List)
	api.GET("/newsletter", rl.Middleware(), auth, h.newsletter.List)
}
