package services

import (
	"context"

	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/repository"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
)

// TestimonialCache is the read side of cache.TestimonialCache
type TestimonialCache interface {
	Get() ([]models.Testimonial, bool)
}

// TestimonialService serves testimonials from the cache, falling back to the store
type TestimonialService struct {
	store repository.TestimonialStore
	cache TestimonialCache
}

var _ TestimonialServiceInterface = (*TestimonialService)(nil)

// NewTestimonialService creates a testimonial service. cache may be nil.
func NewTestimonialService(store repository.TestimonialStore, cache TestimonialCache) *TestimonialService {
	return &TestimonialService{store: store, cache: cache}
}

// List returns testimonials in display order, never nil
func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	if s.cache != nil {
		if testimonials, found := s.cache.Get(); found {
			metrics.TestimonialsServed.Add(float64(len(testimonials)))
			return nonNil(testimonials), nil
		}
		logger.Debug("Testimonial cache miss, reading from store")
	}

	testimonials, err := s.store.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}

	metrics.TestimonialsServed.Add(float64(len(testimonials)))
	return nonNil(testimonials), nil
}

func nonNil(t []models.Testimonial) []models.Testimonial {
	if t == nil {
		return []models.Testimonial{}
	}
	return t
}
