package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/internal/models"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, limit int) ([]models.Contact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, req *models.NewsletterRequest) (*models.NewsletterSubscription, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.NewsletterSubscription), args.Bool(1), args.Error(2)
}

func (m *MockNewsletterService) List(ctx context.Context, limit int) ([]models.NewsletterSubscription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsletterSubscription), args.Error(1)
}

type MockTestimonialService struct {
	mock.Mock
}

func (m *MockTestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Create(ctx context.Context, req *models.StatusCheckRequest) (*models.StatusCheck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatusCheck), args.Error(1)
}

func (m *MockStatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusCheck), args.Error(1)
}
