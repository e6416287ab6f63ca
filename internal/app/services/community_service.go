package services

import (
	"context"
	"fmt"

	"github.com/oakfield/realty/internal/app/models"
)

type communityStore interface {
	List(ctx context.Context) ([]*models.Community, error)
}

// CommunityService reads the seeded marketing communities
type CommunityService interface {
	ListCommunities(ctx context.Context) ([]*models.Community, error)
}

type communityServiceImpl struct {
	communityRepo communityStore
}

// NewCommunityService creates a new community service instance
func NewCommunityService(communityRepo communityStore) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
	}
}

func (s *communityServiceImpl) ListCommunities(ctx context.Context) ([]*models.Community, error) {
	communities, err := s.communityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing communities: %w", err)
	}
	return communities, nil
}
