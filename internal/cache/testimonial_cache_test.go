package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Initialize(logger.Config{Level: "error", Environment: "test"})
}

type stubSource struct {
	calls        int32
	failuresLeft int32
	items        []models.Testimonial
}

func (s *stubSource) ListTestimonials(context.Context) ([]models.Testimonial, error) {
	atomic.AddInt32(&s.calls, 1)
	if atomic.AddInt32(&s.failuresLeft, -1) >= 0 {
		return nil, errors.New("database unavailable")
	}
	return s.items, nil
}

func sample() []models.Testimonial {
	return []models.Testimonial{
		{ID: "1", Name: "Sarah Johnson", Role: "CTO", Content: "Great", Rating: 5},
		{ID: "2", Name: "Michael Chen", Role: "CEO", Content: "Good", Rating: 4},
	}
}

func newTestCache(src TestimonialSource) *TestimonialCache {
	tc := NewTestimonialCache(src, 300)
	tc.retryCfg.InitialDelay = time.Millisecond
	tc.retryCfg.MaxDelay = 2 * time.Millisecond
	return tc
}

func TestTestimonialCache_ColdCache(t *testing.T) {
	tc := newTestCache(&stubSource{})

	assert.False(t, tc.IsReady())
	items, found := tc.Get()
	assert.False(t, found)
	assert.Nil(t, items)
}

func TestTestimonialCache_Initialize(t *testing.T) {
	src := &stubSource{items: sample()}
	tc := newTestCache(src)
	defer tc.Stop()

	require.NoError(t, tc.Initialize(context.Background()))
	assert.True(t, tc.IsReady())
	assert.False(t, tc.LastRefresh().IsZero())

	items, found := tc.Get()
	require.True(t, found)
	assert.Equal(t, sample(), items)
}

func TestTestimonialCache_InitializeRetries(t *testing.T) {
	src := &stubSource{items: sample(), failuresLeft: 2}
	tc := newTestCache(src)
	defer tc.Stop()

	require.NoError(t, tc.Initialize(context.Background()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&src.calls))
}

func TestTestimonialCache_InitializeFails(t *testing.T) {
	src := &stubSource{failuresLeft: 100}
	tc := newTestCache(src)

	err := tc.Initialize(context.Background())
	assert.Error(t, err)
	assert.False(t, tc.IsReady())
}

func TestTestimonialCache_GetReturnsCopy(t *testing.T) {
	tc := newTestCache(&stubSource{items: sample()})
	require.NoError(t, tc.refresh(context.Background()))

	items, _ := tc.Get()
	items[0].Name = "changed"

	again, _ := tc.Get()
	assert.Equal(t, "Sarah Johnson", again[0].Name)
}

func TestTestimonialCache_FailedRefreshKeepsPreviousList(t *testing.T) {
	src := &stubSource{items: sample()}
	tc := newTestCache(src)
	require.NoError(t, tc.refresh(context.Background()))

	atomic.StoreInt32(&src.failuresLeft, 1)
	assert.Error(t, tc.refresh(context.Background()))

	items, found := tc.Get()
	assert.True(t, found)
	assert.Len(t, items, 2)
}
