package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

type clientStore interface {
	Create(ctx context.Context, client *models.Client) (int64, error)
	ListByRealtor(ctx context.Context, realtorID int64) ([]*models.Client, error)
}

// ClientService defines the interface for lead operations
type ClientService interface {
	CreateClient(ctx context.Context, actorID int64, req *dto.CreateClientRequest) (*models.Client, error)
	ListClients(ctx context.Context, actorID int64) ([]*models.Client, error)
}

type clientServiceImpl struct {
	clientRepo clientStore
	activities ActivityService
}

// NewClientService creates a new client service instance
func NewClientService(clientRepo clientStore, activities ActivityService) ClientService {
	return &clientServiceImpl{
		clientRepo: clientRepo,
		activities: activities,
	}
}

// CreateClient creates a new lead and records a "lead" activity
func (s *clientServiceImpl) CreateClient(ctx context.Context, actorID int64, req *dto.CreateClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	client := &models.Client{
		Name:      name,
		Email:     req.Email,
		Phone:     req.Phone,
		RealtorID: actorID,
	}

	if _, err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityLead,
		Title:       "New lead added",
		Description: client.Name,
		UserID:      actorID,
	})

	return client, nil
}

// ListClients retrieves the actor's leads in insertion order
func (s *clientServiceImpl) ListClients(ctx context.Context, actorID int64) ([]*models.Client, error) {
	clients, err := s.clientRepo.ListByRealtor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	return clients, nil
}
