package repository

import (
	"context"

	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/models"
)

// ContactStore persists contact form submissions
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContacts(ctx context.Context, limit int) ([]models.Contact, error)
}

// NewsletterStore persists newsletter signups. CreateSubscription returns an
// error wrapping errors.ErrConflict for an email that is already stored.
type NewsletterStore interface {
	CreateSubscription(ctx context.Context, sub *models.NewsletterSubscription) error
	ListSubscriptions(ctx context.Context, limit int) ([]models.NewsletterSubscription, error)
}

// TestimonialStore reads testimonials in display order
type TestimonialStore interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

// StatusStore persists status checks
type StatusStore interface {
	CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

var (
	_ ContactStore     = (*postgres.Client)(nil)
	_ NewsletterStore  = (*postgres.Client)(nil)
	_ TestimonialStore = (*postgres.Client)(nil)
	_ StatusStore      = (*postgres.Client)(nil)
)
