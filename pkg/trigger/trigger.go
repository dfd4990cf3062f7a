package trigger

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/origem/origem-api/pkg/circuitbreaker"
	"github.com/origem/origem-api/pkg/httpclient"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/origem/origem-api/pkg/retry"
	"go.uber.org/zap"
)

// Event names used as metric labels and breaker names
const (
	EventContactCreated       = "contact.created"
	EventNewsletterSubscribed = "newsletter.subscribed"
)

// Caller fires webhook triggers after lead records are stored.
// Each event gets its own circuit breaker so one failing hook does not
// silence the other.
type Caller struct {
	httpClient httpclient.Client
	breakers   *circuitbreaker.Registry
	retryCfg   retry.Config
	wg         sync.WaitGroup
}

// NewCaller creates a trigger caller
func NewCaller(httpClient httpclient.Client) *Caller {
	return &Caller{
		httpClient: httpClient,
		breakers:   circuitbreaker.NewRegistry(),
		retryCfg:   retry.WebhookConfig(),
	}
}

// CallAsync calls triggerURL+recordID in the background.
// An empty URL is skipped. Failures are logged and never reach the caller.
func (c *Caller) CallAsync(event, triggerURL, recordID string) {
	if triggerURL == "" {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		_ = c.Call(ctx, event, triggerURL, recordID)
	}()
}

// Call performs the trigger request synchronously with retries
func (c *Caller) Call(ctx context.Context, event, triggerURL, recordID string) error {
	targetURL := fmt.Sprintf("%s%s", triggerURL, recordID)
	start := time.Now()

	cb := c.breakers.Get("trigger:" + event)

	err := retry.Do(ctx, c.retryCfg, "trigger "+event, func() error {
		_, err := circuitbreaker.Execute(cb, func() (struct{}, error) {
			return struct{}{}, c.get(ctx, targetURL)
		})
		return err
	})

	duration := metrics.MeasureDuration(start)
	if err != nil {
		metrics.TriggerCalls.WithLabelValues(event, "error").Inc()
		logger.LogAPICall(ctx, "trigger", event, "error", duration,
			zap.Error(err),
			zap.String("record_id", recordID))
		return err
	}

	metrics.TriggerCalls.WithLabelValues(event, "success").Inc()
	logger.LogAPICall(ctx, "trigger", event, "success", duration,
		zap.String("record_id", recordID))
	return nil
}

func (c *Caller) get(ctx context.Context, targetURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build trigger request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trigger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &retry.StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Wait blocks until in-flight background calls finish
func (c *Caller) Wait() {
	c.wg.Wait()
}
