package services_test

import (
	"context"

	"github.com/origem/origem-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockContactStore is a mock implementation of repository.ContactStore
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactStore) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

// MockNewsletterStore is a mock implementation of repository.NewsletterStore
type MockNewsletterStore struct {
	mock.Mock
}

func (m *MockNewsletterStore) CreateSubscription(ctx context.Context, sub *models.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterStore) ListSubscriptions(ctx context.Context, limit int) ([]models.NewsletterSubscription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsletterSubscription), args.Error(1)
}

// MockTestimonialStore is a mock implementation of repository.TestimonialStore
type MockTestimonialStore struct {
	mock.Mock
}

func (m *MockTestimonialStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

// MockStatusStore is a mock implementation of repository.StatusStore
type MockStatusStore struct {
	mock.Mock
}

func (m *MockStatusStore) CreateStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatusStore) ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusCheck), args.Error(1)
}

// MockNotifier records lead notifications
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event, recordID string, payload interface{}) {
	m.Called(ctx, event, recordID, payload)
}

// MockTestimonialCache is a mock implementation of services.TestimonialCache
type MockTestimonialCache struct {
	mock.Mock
}

func (m *MockTestimonialCache) Get() ([]models.Testimonial, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]models.Testimonial), args.Bool(1)
}

// MockUploader is a mock implementation of services.Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadObject(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}
