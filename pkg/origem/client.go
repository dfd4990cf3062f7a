// Package origem is the HTTP client the landing page uses to talk to the
// Origem API. Every call is a single request: no retry, no backoff, no
// deduplication.
package origem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/origem/origem-api/pkg/httpclient"
	"github.com/origem/origem-api/pkg/logger"
	"go.uber.org/zap"
)

const serviceName = "origem_api"

// Testimonial is a read-only card shown on the landing page
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

// ContactSubmission is built fresh for each contact form submit
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
	Message     string `json:"message"`
}

type newsletterSubmission struct {
	Email string `json:"email"`
}

// Result is the outcome of a form submission. Err carries the cause for logs only.
type Result struct {
	OK     bool
	Status int
	Err    error
}

// Client calls the Origem API at a fixed base URL
type Client struct {
	baseURL    string
	httpClient httpclient.Client
}

// NewClient creates a client without a request timeout; a submitted request
// runs until the server or transport ends it.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, httpclient.NewClient(0))
}

// NewClientWithHTTP creates a client on top of an existing HTTP client
func NewClientWithHTTP(baseURL string, httpClient httpclient.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListTestimonials fetches the testimonial list in server order
func (c *Client) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/testimonials", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logCall(ctx, "list_testimonials", "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		c.logCall(ctx, "list_testimonials", "error", start, zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("testimonials request returned status %d", resp.StatusCode)
	}

	var testimonials []Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&testimonials); err != nil {
		c.logCall(ctx, "list_testimonials", "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}

	c.logCall(ctx, "list_testimonials", "success", start, zap.Int("count", len(testimonials)))
	return testimonials, nil
}

// SubmitContact posts one contact form submission
func (c *Client) SubmitContact(ctx context.Context, submission ContactSubmission) Result {
	return c.postJSON(ctx, "submit_contact", "/api/contact", submission)
}

// SubscribeNewsletter posts one newsletter signup
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) Result {
	return c.postJSON(ctx, "subscribe_newsletter", "/api/newsletter", newsletterSubmission{Email: email})
}

// postJSON reports success on any 2xx. The response body is drained and ignored.
func (c *Client) postJSON(ctx context.Context, operation, path string, payload any) Result {
	start := time.Now()

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logCall(ctx, operation, "error", start, zap.Error(err))
		return Result{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()
	drain(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logCall(ctx, operation, "error", start, zap.Int("status_code", resp.StatusCode))
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	c.logCall(ctx, operation, "success", start, zap.Int("status_code", resp.StatusCode))
	return Result{OK: true, Status: resp.StatusCode}
}

func (c *Client) logCall(ctx context.Context, operation, status string, start time.Time, fields ...zap.Field) {
	logger.LogAPICall(ctx, serviceName, operation, status, time.Since(start).Seconds(), fields...)
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, body) //nolint:errcheck
}
