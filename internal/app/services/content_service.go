package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

type contentStore interface {
	ListByPage(ctx context.Context, pageName string) ([]*models.PageContent, error)
	Upsert(ctx context.Context, item *models.PageContent) (*models.PageContent, error)
}

// ContentService manages CMS page content triples
type ContentService interface {
	GetPageContent(ctx context.Context, pageName string) ([]*models.PageContent, error)
	UpsertPageContent(ctx context.Context, items []dto.PageContentItem) ([]*models.PageContent, error)
}

type contentServiceImpl struct {
	contentRepo contentStore
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo contentStore) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
	}
}

// GetPageContent retrieves all content triples for a page
func (s *contentServiceImpl) GetPageContent(ctx context.Context, pageName string) ([]*models.PageContent, error) {
	if strings.TrimSpace(pageName) == "" {
		return nil, fmt.Errorf("%w: page name cannot be empty", apperrors.ErrValidationFailed)
	}

	items, err := s.contentRepo.ListByPage(ctx, pageName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving page content: %w", err)
	}
	return items, nil
}

// UpsertPageContent replaces or inserts each triple. Validation runs
// over the whole batch before any write so a bad item cannot leave a
// partial batch behind.
func (s *contentServiceImpl) UpsertPageContent(ctx context.Context, items []dto.PageContentItem) ([]*models.PageContent, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one content item is required", apperrors.ErrValidationFailed)
	}

	for i, item := range items {
		if strings.TrimSpace(item.PageName) == "" ||
			strings.TrimSpace(item.SectionName) == "" ||
			strings.TrimSpace(item.ContentKey) == "" {
			return nil, fmt.Errorf("%w: item %d is missing page, section or key", apperrors.ErrValidationFailed, i)
		}
	}

	results := make([]*models.PageContent, 0, len(items))
	for _, item := range items {
		contentType := item.ContentType
		if contentType == "" {
			contentType = "text"
		}

		saved, err := s.contentRepo.Upsert(ctx, &models.PageContent{
			PageName:     item.PageName,
			SectionName:  item.SectionName,
			ContentKey:   item.ContentKey,
			ContentValue: item.ContentValue,
			ContentType:  contentType,
		})
		if err != nil {
			return nil, fmt.Errorf("error upserting page content: %w", err)
		}
		results = append(results, saved)
	}

	return results, nil
}
