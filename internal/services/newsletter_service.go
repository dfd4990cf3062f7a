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

// NewsletterService manages newsletter signups
type NewsletterService struct {
	store    repository.NewsletterStore
	notifier LeadNotifier
	now      func() time.Time
}

var _ NewsletterServiceInterface = (*NewsletterService)(nil)

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService(store repository.NewsletterStore, notifier LeadNotifier) *NewsletterService {
	return &NewsletterService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Subscribe stores the email once. Emails compare case-insensitively.
func (s *NewsletterService) Subscribe(ctx context.Context, req *models.NewsletterRequest) (*models.NewsletterSubscription, bool, error) {
	sub := &models.NewsletterSubscription{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Timestamp: s.now().UTC(),
	}

	err := s.store.CreateSubscription(ctx, sub)
	if apperrors.Is(err, apperrors.ErrConflict) {
		metrics.NewsletterSubscriptions.WithLabelValues("duplicate").Inc()
		logger.Debug("Newsletter email already subscribed")
		return nil, false, nil
	}
	if err != nil {
		metrics.NewsletterSubscriptions.WithLabelValues("error").Inc()
		logger.Error("Failed to store newsletter subscription", zap.Error(err))
		return nil, false, err
	}

	metrics.NewsletterSubscriptions.WithLabelValues("success").Inc()
	logger.Info("Newsletter subscription stored", zap.String("subscription_id", sub.ID))

	if s.notifier != nil {
		s.notifier.Notify(ctx, trigger.EventNewsletterSubscribed, sub.ID, sub)
	}

	return sub, true, nil
}

// List returns subscribers newest first
func (s *NewsletterService) List(ctx context.Context, limit int) ([]models.NewsletterSubscription, error) {
	return s.store.ListSubscriptions(ctx, limit)
}
