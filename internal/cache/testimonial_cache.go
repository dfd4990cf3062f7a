package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/origem/origem-api/pkg/retry"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// TestimonialSource loads the current testimonial list
type TestimonialSource interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

const (
	testimonialsKey  = "testimonials:all"
	cacheName        = "testimonials"
	cacheCheckPeriod = time.Minute
	refreshJobTag    = "testimonials-refresh"
	refreshTimeout   = 30 * time.Second
)

// TestimonialCache keeps the testimonial list in memory and refreshes it on a
// fixed schedule. Entries live for two refresh intervals so a single failed
// refresh keeps serving the previous list.
type TestimonialCache struct {
	cache     *gocache.Cache
	source    TestimonialSource
	scheduler *gocron.Scheduler
	retryCfg  retry.Config
	ttl       time.Duration

	mu          sync.RWMutex
	ready       bool
	lastRefresh time.Time
}

// NewTestimonialCache creates a cache refreshed every ttlSeconds
func NewTestimonialCache(source TestimonialSource, ttlSeconds int) *TestimonialCache {
	ttl := time.Duration(ttlSeconds) * time.Second

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.TagsUnique()

	return &TestimonialCache{
		cache:     gocache.New(2*ttl, cacheCheckPeriod),
		source:    source,
		scheduler: scheduler,
		retryCfg:  retry.DefaultConfig(),
		ttl:       ttl,
	}
}

// Initialize loads the list synchronously and starts the refresh job.
// Call it before serving traffic.
func (tc *TestimonialCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing testimonial cache...")
	startTime := time.Now()

	err := retry.Do(ctx, tc.retryCfg, "testimonial cache warmup", func() error {
		return tc.refresh(ctx)
	})
	if err != nil {
		logger.Error("Failed to initialize testimonial cache", zap.Error(err))
		return err
	}

	tc.mu.Lock()
	tc.ready = true
	tc.mu.Unlock()

	_, err = tc.scheduler.Every(tc.ttl).
		WaitForSchedule().
		SingletonMode().
		Tag(refreshJobTag).
		Do(tc.scheduledRefresh)
	if err != nil {
		return fmt.Errorf("failed to schedule testimonial refresh: %w", err)
	}
	tc.scheduler.StartAsync()

	logger.Info("Testimonial cache initialized successfully",
		zap.Duration("duration", time.Since(startTime)),
		zap.Duration("refresh_interval", tc.ttl))

	return nil
}

// Stop halts the refresh job
func (tc *TestimonialCache) Stop() {
	tc.scheduler.Stop()
}

// IsReady returns true once the first load has succeeded
func (tc *TestimonialCache) IsReady() bool {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.ready
}

// LastRefresh returns the time of the last successful load
func (tc *TestimonialCache) LastRefresh() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.lastRefresh
}

// Get returns a copy of the cached list. found is false when the cache is
// cold or the entry aged out.
func (tc *TestimonialCache) Get() (testimonials []models.Testimonial, found bool) {
	data, ok := tc.cache.Get(testimonialsKey)
	if !ok {
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}

	cached, ok := data.([]models.Testimonial)
	if !ok {
		logger.Error("Invalid cache data type for testimonials")
		tc.cache.Delete(testimonialsKey)
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(cacheName).Inc()

	out := make([]models.Testimonial, len(cached))
	copy(out, cached)
	return out, true
}

func (tc *TestimonialCache) scheduledRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := tc.refresh(ctx); err != nil {
		logger.Error("Scheduled testimonial refresh failed", zap.Error(err))
	}
}

func (tc *TestimonialCache) refresh(ctx context.Context) error {
	testimonials, err := tc.source.ListTestimonials(ctx)
	if err != nil {
		return fmt.Errorf("failed to load testimonials: %w", err)
	}

	tc.cache.SetDefault(testimonialsKey, testimonials)
	metrics.CacheSize.WithLabelValues(cacheName).Set(float64(len(testimonials)))

	tc.mu.Lock()
	tc.lastRefresh = time.Now()
	tc.mu.Unlock()

	logger.Debug("Testimonial cache refreshed", zap.Int("count", len(testimonials)))
	return nil
}
