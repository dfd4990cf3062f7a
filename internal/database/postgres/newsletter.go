package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/origem/origem-api/internal/models"
	apperrors "github.com/origem/origem-api/pkg/errors"
	"go.uber.org/zap"
)

// CreateSubscription inserts a newsletter signup. A repeated email returns
// an error wrapping apperrors.ErrConflict and leaves the table unchanged.
func (c *Client) CreateSubscription(ctx context.Context, sub *models.NewsletterSubscription) error {
	start := time.Now()

	var id string
	err := c.db.QueryRow(ctx, `
		INSERT INTO newsletter_subscriptions (id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id::text
	`, sub.ID, sub.Email, sub.Timestamp).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		observe(ctx, "createSubscription", start, nil, zap.Bool("duplicate", true))
		return apperrors.ConflictError("newsletter subscription")
	}

	observe(ctx, "createSubscription", start, err)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns subscribers newest first
func (c *Client) ListSubscriptions(ctx context.Context, limit int) ([]models.NewsletterSubscription, error) {
	start := time.Now()

	rows, err := c.db.Query(ctx, `
		SELECT id::text, email, created_at
		FROM newsletter_subscriptions
		ORDER BY created_at DESC
		LIMIT $1
	`, clampLimit(limit))
	if err != nil {
		observe(ctx, "listSubscriptions", start, err)
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.NewsletterSubscription, error) {
		var s models.NewsletterSubscription
		err := row.Scan(&s.ID, &s.Email, &s.Timestamp)
		return s, err
	})

	observe(ctx, "listSubscriptions", start, err, zap.Int("count", len(subs)))
	if err != nil {
		return nil, fmt.Errorf("failed to scan subscriptions: %w", err)
	}
	return subs, nil
}
