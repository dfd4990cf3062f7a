package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/repository"
	apperrors "github.com/origem/origem-api/pkg/errors"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/origem/origem-api/pkg/trigger"
	"go.uber.org/zap"
)

// ContactService stores contact form submissions
type ContactService struct {
	store    repository.ContactStore
	notifier LeadNotifier
	now      func() time.Time
}

var _ ContactServiceInterface = (*ContactService)(nil)

// NewContactService creates a new contact service instance
func NewContactService(store repository.ContactStore, notifier LeadNotifier) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit stores one contact submission. Repeated submissions create
// separate records.
func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		CountryCode: req.CountryCode,
		Message:     strings.TrimSpace(req.Message),
		Timestamp:   s.now().UTC(),
	}

	for _, field := range []struct{ name, value string }{
		{"name", contact.Name},
		{"phone", contact.Phone},
		{"message", contact.Message},
	} {
		if field.value == "" {
			metrics.ContactFormSubmissions.WithLabelValues("invalid", contact.CountryCode).Inc()
			return nil, apperrors.InvalidInputError(field.name, field.name+" must not be blank")
		}
	}
	if !models.IsValidCountryCode(contact.CountryCode) {
		metrics.ContactFormSubmissions.WithLabelValues("invalid", "other").Inc()
		return nil, apperrors.InvalidInputError("country_code", "Unsupported country code")
	}

	if err := s.store.CreateContact(ctx, contact); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error", contact.CountryCode).Inc()
		logger.Error("Failed to store contact submission", zap.Error(err))
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("success", contact.CountryCode).Inc()
	logger.Info("Contact submission stored",
		zap.String("contact_id", contact.ID),
		zap.String("country_code", contact.CountryCode))

	if s.notifier != nil {
		s.notifier.Notify(ctx, trigger.EventContactCreated, contact.ID, contact)
	}

	return contact, nil
}

// List returns stored contacts newest first
func (s *ContactService) List(ctx context.Context, limit int) ([]models.Contact, error) {
	return s.store.ListContacts(ctx, limit)
}
