package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"time"

	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/repository"
	"github.com/origem/origem-api/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const csvContentType = "text/csv; charset=utf-8"

// Uploader stores export files. Implemented by storage.Client.
type Uploader interface {
	UploadObject(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// ExportResult describes one completed export
type ExportResult struct {
	ContactsURL    string `json:"contacts_url"`
	SubscribersURL string `json:"subscribers_url"`
	Contacts       int    `json:"contacts"`
	Subscribers    int    `json:"subscribers"`
}

// ExportService writes contacts and subscribers as CSV files to object storage
type ExportService struct {
	contacts    repository.ContactStore
	subscribers repository.NewsletterStore
	uploader    Uploader
	prefix      string
}

var _ ExportServiceInterface = (*ExportService)(nil)

func NewExportService(contacts repository.ContactStore, subscribers repository.NewsletterStore, uploader Uploader, prefix string) *ExportService {
	return &ExportService{
		contacts:    contacts,
		subscribers: subscribers,
		uploader:    uploader,
		prefix:      prefix,
	}
}

// Export uploads contacts-<stamp>.csv and subscribers-<stamp>.csv where
// stamp is at in UTC.
func (s *ExportService) Export(ctx context.Context, at time.Time) (*ExportResult, error) {
	var (
		contacts    []models.Contact
		subscribers []models.NewsletterSubscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.contacts.ListContacts(gctx, postgres.DefaultListLimit)
		return err
	})
	g.Go(func() error {
		var err error
		subscribers, err = s.subscribers.ListSubscriptions(gctx, postgres.DefaultListLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	stamp := at.UTC().Format("20060102T150405Z")

	contactsCSV, err := contactsToCSV(contacts)
	if err != nil {
		return nil, err
	}
	subscribersCSV, err := subscribersToCSV(subscribers)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Contacts: len(contacts), Subscribers: len(subscribers)}

	result.ContactsURL, err = s.uploader.UploadObject(ctx, path.Join(s.prefix, "contacts-"+stamp+".csv"), csvContentType, contactsCSV)
	if err != nil {
		return nil, err
	}
	result.SubscribersURL, err = s.uploader.UploadObject(ctx, path.Join(s.prefix, "subscribers-"+stamp+".csv"), csvContentType, subscribersCSV)
	if err != nil {
		return nil, err
	}

	logger.Info("Lead export completed",
		zap.Int("contacts", result.Contacts),
		zap.Int("subscribers", result.Subscribers),
		zap.String("contacts_url", result.ContactsURL))

	return result, nil
}

func contactsToCSV(contacts []models.Contact) ([]byte, error) {
	rows := make([][]string, 0, len(contacts)+1)
	rows = append(rows, []string{"id", "name", "email", "country_code", "phone", "message", "timestamp"})
	for _, c := range contacts {
		rows = append(rows, []string{c.ID, c.Name, c.Email, c.CountryCode, c.Phone, c.Message, c.Timestamp.UTC().Format(time.RFC3339)})
	}
	return writeCSV(rows)
}

func subscribersToCSV(subs []models.NewsletterSubscription) ([]byte, error) {
	rows := make([][]string, 0, len(subs)+1)
	rows = append(rows, []string{"id", "email", "timestamp"})
	for _, s := range subs {
		rows = append(rows, []string{s.ID, s.Email, s.Timestamp.UTC().Format(time.RFC3339)})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}
