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
	"github.com/origem/origem-api/internal/landing"
	"github.com/origem/origem-api/internal/web"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/origem"
	"github.com/origem/origem-api/pkg/tracing"
	"go.uber.org/zap"
)

const serviceName = "origem-web"

func main() {
	cfg, err := config.LoadWeb()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: serviceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	theme, err := landing.LookupTheme(cfg.Web.Theme)
	if err != nil {
		logger.Fatal("Invalid WEB_THEME", zap.Error(err))
	}

	tracerShutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName:       serviceName,
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

	logger.Info("Starting Origem landing page",
		zap.String("api_url", cfg.Web.APIURL),
		zap.String("theme", theme.Name),
	)

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	gin.SetMode(cfg.Server.GinMode)
	handler := web.NewLandingHandler(origem.NewClient(cfg.Web.APIURL), theme)
	router := web.NewRouter(appCtx, serviceName, handler)

	// No write timeout: a form submission is never cut short by the server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Web.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Web server started", zap.String("port", cfg.Web.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Web server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down web server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Web server forced to shutdown", zap.Error(err))
	}

	logger.Info("Web server exited")
}
