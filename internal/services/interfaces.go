package services

import (
	"context"
	"time"

	"github.com/origem/origem-api/internal/models"
)

// ContactServiceInterface defines contact form operations
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *models.ContactRequest) (*models.Contact, error)
	List(ctx context.Context, limit int) ([]models.Contact, error)
}

// NewsletterServiceInterface defines newsletter operations.
// Subscribe reports created=false for an email that was already subscribed.
type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, req *models.NewsletterRequest) (sub *models.NewsletterSubscription, created bool, err error)
	List(ctx context.Context, limit int) ([]models.NewsletterSubscription, error)
}

// TestimonialServiceInterface defines testimonial reads
type TestimonialServiceInterface interface {
	List(ctx context.Context) ([]models.Testimonial, error)
}

// StatusServiceInterface defines status check operations
type StatusServiceInterface interface {
	Create(ctx context.Context, req *models.StatusCheckRequest) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}

// ExportServiceInterface defines lead exports
type ExportServiceInterface interface {
	Export(ctx context.Context, at time.Time) (*ExportResult, error)
}

// LeadNotifier announces newly stored leads to downstream systems
type LeadNotifier interface {
	Notify(ctx context.Context, event, recordID string, payload interface{})
}
