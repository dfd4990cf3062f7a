package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/origem/origem-api/internal/models"
)

// CreateStatusCheck inserts a status check record
func (c *Client) CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	start := time.Now()

	_, err := c.db.Exec(ctx,
		"INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)",
		check.ID, check.ClientName, check.Timestamp)

	observe(ctx, "createStatusCheck", start, err)
	if err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns status checks oldest first
func (c *Client) ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	start := time.Now()

	rows, err := c.db.Query(ctx,
		"SELECT id::text, client_name, created_at FROM status_checks ORDER BY created_at ASC LIMIT $1",
		clampLimit(limit))
	if err != nil {
		observe(ctx, "listStatusChecks", start, err)
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}

	checks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StatusCheck, error) {
		var s models.StatusCheck
		err := row.Scan(&s.ID, &s.ClientName, &s.Timestamp)
		return s, err
	})

	observe(ctx, "listStatusChecks", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to scan status checks: %w", err)
	}
	return checks, nil
}
