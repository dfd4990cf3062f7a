package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/origem/origem-api/internal/models"
	"go.uber.org/zap"
)

// ListTestimonials returns testimonials in display order
func (c *Client) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	start := time.Now()

	rows, err := c.db.Query(ctx, `
		SELECT id, name, role, content, rating, image
		FROM testimonials
		ORDER BY position ASC, created_at ASC
	`)
	if err != nil {
		observe(ctx, "listTestimonials", start, err)
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}

	testimonials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Testimonial, error) {
		var t models.Testimonial
		err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating, &t.Image)
		return t, err
	})

	observe(ctx, "listTestimonials", start, err, zap.Int("count", len(testimonials)))
	if err != nil {
		return nil, fmt.Errorf("failed to scan testimonials: %w", err)
	}
	return testimonials, nil
}
