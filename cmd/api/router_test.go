package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/internal/handlers"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubContacts struct{}

func (stubContacts) Submit(_ context.Context, req *models.ContactRequest) (*models.Contact, error) {
	return &models.Contact{ID: "c1", Name: req.Name, Email: req.Email, Timestamp: time.Now().UTC()}, nil
}

func (stubContacts) List(context.Context, int) ([]models.Contact, error) {
	return []models.Contact{{ID: "c1", Name: "Ana"}}, nil
}

type stubNewsletter struct{}

func (stubNewsletter) Subscribe(_ context.Context, req *models.NewsletterRequest) (*models.NewsletterSubscription, bool, error) {
	return &models.NewsletterSubscription{ID: "n1", Email: req.Email}, true, nil
}

func (stubNewsletter) List(context.Context, int) ([]models.NewsletterSubscription, error) {
	return []models.NewsletterSubscription{}, nil
}

type stubTestimonials struct{}

func (stubTestimonials) List(context.Context) ([]models.Testimonial, error) {
	return []models.Testimonial{{ID: "1", Name: "Sarah Johnson", Rating: 5}}, nil
}

type stubStatus struct{}

func (stubStatus) Create(_ context.Context, req *models.StatusCheckRequest) (*models.StatusCheck, error) {
	return &models.StatusCheck{ID: "s1", ClientName: req.ClientName}, nil
}

func (stubStatus) List(context.Context) ([]models.StatusCheck, error) {
	return []models.StatusCheck{}, nil
}

type readyCache struct{}

func (readyCache) IsReady() bool          { return true }
func (readyCache) LastRefresh() time.Time { return time.Now() }

var routerSecret = strings.Repeat("r", 32)

func testRouter(t *testing.T, cfg *config.Config, tm *jwt.TokenManager) *gin.Engine {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return newRouter(ctx, cfg, routeHandlers{
		status:      handlers.NewStatusHandler(stubStatus{}),
		contact:     handlers.NewContactHandler(stubContacts{}),
		newsletter:  handlers.NewNewsletterHandler(stubNewsletter{}),
		testimonial: handlers.NewTestimonialHandler(stubTestimonials{}),
		health: handlers.NewHealthHandler(
			func(context.Context) error { return nil },
			readyCache{},
		),
		tokenManager: tm,
	})
}

func openConfig() *config.Config {
	return &config.Config{
		Server:        config.ServerConfig{CORSOrigins: []string{"*"}, AppEnv: "production"},
		Observability: config.ObservabilityConfig{ServiceName: "origem-api"},
	}
}

func serve(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := testRouter(t, openConfig(), nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "root", method: http.MethodGet, path: "/api/", status: http.StatusOK},
		{name: "testimonials", method: http.MethodGet, path: "/api/testimonials", status: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/healthcheck", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/api/metrics", status: http.StatusOK},
		{name: "status list", method: http.MethodGet, path: "/api/status", status: http.StatusOK},
		{name: "status create", method: http.MethodPost, path: "/api/status", body: `{"client_name":"landing"}`, status: http.StatusOK},
		{
			name:   "contact",
			method: http.MethodPost,
			path:   "/api/contact",
			body:   `{"name":"Ana","email":"ana@example.com","phone":"555","country_code":"+91","message":"Hi"}`,
			status: http.StatusOK,
		},
		{name: "contact invalid", method: http.MethodPost, path: "/api/contact", body: `{"name":"Ana"}`, status: http.StatusBadRequest},
		{name: "newsletter", method: http.MethodPost, path: "/api/newsletter", body: `{"email":"ana@example.com"}`, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRouter_AdminRoutesDisabledWithoutSecret(t *testing.T) {
	router := testRouter(t, openConfig(), nil)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/contacts", "", nil).Code)
	// GET /api/newsletter has no handler; POST exists
	assert.NotEqual(t, http.StatusOK, serve(router, http.MethodGet, "/api/newsletter", "", nil).Code)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	tm := jwt.NewTokenManager(routerSecret, "origem-api", 1)
	router := testRouter(t, openConfig(), tm)

	w := serve(router, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := tm.GenerateToken("ops@origem.dev", jwt.RoleAdmin)
	require.NoError(t, err)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w = serve(router, http.MethodGet, "/api/contacts", "", auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)

	w = serve(router, http.MethodGet, "/api/newsletter", "", auth)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		router := testRouter(t, openConfig(), nil)
		w := serve(router, http.MethodGet, "/api/testimonials", "", map[string]string{"Origin": "https://anywhere.example"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		cfg := openConfig()
		cfg.Server.CORSOrigins = []string{"https://origem.dev"}
		router := testRouter(t, cfg, nil)

		w := serve(router, http.MethodGet, "/api/testimonials", "", map[string]string{"Origin": "https://origem.dev"})
		assert.Equal(t, "https://origem.dev", w.Header().Get("Access-Control-Allow-Origin"))

		w = serve(router, http.MethodGet, "/api/testimonials", "", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCorsConfig_Development(t *testing.T) {
	cfg := openConfig()
	cfg.Server.CORSOrigins = []string{"https://origem.dev"}
	cfg.Server.AppEnv = "development"

	corsCfg := corsConfig(cfg)
	assert.Contains(t, corsCfg.AllowOrigins, "http://localhost:3000")
	assert.True(t, corsCfg.AllowCredentials)
	assert.False(t, corsCfg.AllowAllOrigins)
}
