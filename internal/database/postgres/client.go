package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultListLimit caps list queries
const DefaultListLimit = 1000

// querier is satisfied by *pgxpool.Pool
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Client runs the lead and testimonial queries against PostgreSQL
type Client struct {
	db querier
}

// NewClient wraps an open pool
func NewClient(db querier) *Client {
	return &Client{db: db}
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.db.Ping(ctx)
}

// observe records metrics and a debug log line for one query
func observe(ctx context.Context, operation string, start time.Time, err error, fields ...zap.Field) {
	metrics.ObserveDB(operation, start, err)

	status := "success"
	if err != nil {
		status = "error"
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall(ctx, "postgres", operation, status, metrics.MeasureDuration(start), fields...)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
