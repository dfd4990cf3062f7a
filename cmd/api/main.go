package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/internal/cache"
	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/handlers"
	"github.com/origem/origem-api/internal/services"
	"github.com/origem/origem-api/pkg/db"
	"github.com/origem/origem-api/pkg/events"
	"github.com/origem/origem-api/pkg/httpclient"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/origem/origem-api/pkg/profiling"
	"github.com/origem/origem-api/pkg/tracing"
	"github.com/origem/origem-api/pkg/trigger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Origem API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		ExporterEndpoint:  cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Cancelled on shutdown; stops background loops owned by main
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	metrics.RecordInfrastructureMetrics(appCtx.Done())

	pool, err := db.NewPool(appCtx, db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer db.Close(pool)

	// NOTE: migrations run separately via cmd/migrate before the API starts

	store := postgres.NewClient(pool)

	testimonialCache := cache.NewTestimonialCache(store, cfg.Cache.TestimonialsTTLSeconds)
	if err := testimonialCache.Initialize(appCtx); err != nil {
		logger.Fatal("Failed to initialize testimonial cache", zap.Error(err))
	}
	defer testimonialCache.Stop()

	publisher, err := events.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		// Lead capture must not depend on the broker being up
		logger.Error("Event publishing disabled: broker unavailable", zap.Error(err))
		publisher = events.NoopPublisher{}
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", zap.Error(closeErr))
		}
	}()

	notifier := services.NewEventNotifier(cfg, trigger.NewCaller(httpclient.NewStandardClient()), publisher)

	contactService := services.NewContactService(store, notifier)
	newsletterService := services.NewNewsletterService(store, notifier)
	testimonialService := services.NewTestimonialService(store, testimonialCache)
	statusService := services.NewStatusService(store)

	var tokenManager *jwt.TokenManager
	if cfg.AdminEnabled() {
		tokenManager = jwt.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTLHours)
	}

	gin.SetMode(cfg.Server.GinMode)
	router := newRouter(appCtx, cfg, routeHandlers{
		status:       handlers.NewStatusHandler(statusService),
		contact:      handlers.NewContactHandler(contactService),
		newsletter:   handlers.NewNewsletterHandler(newsletterService),
		testimonial:  handlers.NewTestimonialHandler(testimonialService),
		health:       handlers.NewHealthHandler(store.Ping, testimonialCache),
		tokenManager: tokenManager,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight webhook triggers and broker publishes finish
	notifier.Wait()
	stopApp()

	logger.Info("Server exited")
}
