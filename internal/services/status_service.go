package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/models"
	"github.com/origem/origem-api/internal/repository"
)

// StatusService records client liveness pings
type StatusService struct {
	store repository.StatusStore
	now   func() time.Time
}

var _ StatusServiceInterface = (*StatusService)(nil)

func NewStatusService(store repository.StatusStore) *StatusService {
	return &StatusService{store: store, now: time.Now}
}

func (s *StatusService) Create(ctx context.Context, req *models.StatusCheckRequest) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: strings.TrimSpace(req.ClientName),
		Timestamp:  s.now().UTC(),
	}

	if err := s.store.CreateStatusCheck(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.store.ListStatusChecks(ctx, postgres.DefaultListLimit)
}
