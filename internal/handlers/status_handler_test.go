package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/handlers"
	"github.com/origem/origem-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler(t *testing.T) {
	service := new(MockStatusService)
	h := handlers.NewStatusHandler(service)
	router := gin.New()
	router.GET("/api/", h.Root)
	router.POST("/api/status", h.Create)
	router.GET("/api/status", h.List)

	service.On("Create", mock.Anything, &models.StatusCheckRequest{ClientName: "landing"}).
		Return(&models.StatusCheck{ID: "1", ClientName: "landing"}, nil).Once()
	service.On("List", mock.Anything).Return([]models.StatusCheck{{ID: "1", ClientName: "landing"}}, nil).Once()

	w := doJSON(router, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/status", `{"client_name":"landing"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name":"landing"`)

	w = doJSON(router, http.MethodPost, "/api/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusOK, w.Code)

	service.AssertExpectations(t)
}

func TestTestimonialHandler_List(t *testing.T) {
	service := new(MockTestimonialService)
	h := handlers.NewTestimonialHandler(service)
	router := gin.New()
	router.GET("/api/testimonials", h.List)

	service.On("List", mock.Anything).Return([]models.Testimonial{
		{ID: "1", Name: "Sarah Johnson", Role: "CTO", Content: "Great", Rating: 5, Image: "https://img"},
	}, nil).Once()
	service.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := doJSON(router, http.MethodGet, "/api/testimonials", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"1","name":"Sarah Johnson","role":"CTO","content":"Great","rating":5,"image":"https://img"}]`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/testimonials", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type stubCacheStatus struct {
	ready       bool
	lastRefresh time.Time
}

func (s stubCacheStatus) IsReady() bool          { return s.ready }
func (s stubCacheStatus) LastRefresh() time.Time { return s.lastRefresh }

func TestHealthHandler_Healthcheck(t *testing.T) {
	refreshed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	warm := stubCacheStatus{ready: true, lastRefresh: refreshed}

	tests := []struct {
		name   string
		ping   func(context.Context) error
		cache  handlers.CacheStatus
		status int
	}{
		{name: "healthy", ping: func(context.Context) error { return nil }, cache: warm, status: http.StatusOK},
		{name: "cache cold", ping: func(context.Context) error { return nil }, cache: stubCacheStatus{}, status: http.StatusServiceUnavailable},
		{name: "database down", ping: func(context.Context) error { return errors.New("refused") }, cache: warm, status: http.StatusServiceUnavailable},
		{name: "no checks wired", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/api/healthcheck", handlers.NewHealthHandler(tt.ping, tt.cache).Healthcheck)

			w := doJSON(router, http.MethodGet, "/api/healthcheck", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
		})
	}
}

func TestHealthHandler_ReportsLastRefresh(t *testing.T) {
	refreshed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	router := gin.New()
	router.GET("/api/healthcheck", handlers.NewHealthHandler(nil, stubCacheStatus{ready: true, lastRefresh: refreshed}).Healthcheck)

	w := doJSON(router, http.MethodGet, "/api/healthcheck", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "2024-03-01T12:00:00Z", body["testimonials_refreshed_at"])
}
