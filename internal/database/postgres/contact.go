package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/origem/origem-api/internal/models"
	"go.uber.org/zap"
)

// CreateContact inserts a contact submission. ID and Timestamp must be set.
func (c *Client) CreateContact(ctx context.Context, contact *models.Contact) error {
	start := time.Now()

	_, err := c.db.Exec(ctx, `
		INSERT INTO contacts (id, name, email, phone, country_code, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.CountryCode,
		contact.Message,
		contact.Timestamp,
	)

	observe(ctx, "createContact", start, err, zap.String("contact_id", contact.ID))
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// ListContacts returns contacts newest first
func (c *Client) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	start := time.Now()

	rows, err := c.db.Query(ctx, `
		SELECT id::text, name, email, phone, country_code, message, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1
	`, clampLimit(limit))
	if err != nil {
		observe(ctx, "listContacts", start, err)
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Contact, error) {
		var ct models.Contact
		err := row.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Phone, &ct.CountryCode, &ct.Message, &ct.Timestamp)
		return ct, err
	})

	observe(ctx, "listContacts", start, err, zap.Int("count", len(contacts)))
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}
	return contacts, nil
}
