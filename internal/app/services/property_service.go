package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

type propertyStore interface {
	Create(ctx context.Context, p *models.Property) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	ListByOwner(ctx context.Context, ownerID int64, filter *dto.PropertyFilter) ([]*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int64) error
}

// PropertyService defines the interface for listing operations. Every
// call is scoped to the acting user; mutations on listings the actor
// does not own fail with a permission error.
type PropertyService interface {
	CreateProperty(ctx context.Context, actorID int64, req *dto.CreatePropertyRequest) (*models.Property, error)
	GetPropertyByID(ctx context.Context, id int64) (*models.Property, error)
	ListProperties(ctx context.Context, actorID int64, filter *dto.PropertyFilter) ([]*models.Property, error)
	UpdateProperty(ctx context.Context, actorID, id int64, req *dto.UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, actorID, id int64) error
}

type propertyServiceImpl struct {
	propertyRepo propertyStore
	activities   ActivityService
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo propertyStore, activities ActivityService) PropertyService {
	return &propertyServiceImpl{
		propertyRepo: propertyRepo,
		activities:   activities,
	}
}

// CreateProperty creates a new listing and records a "listing" activity
func (s *propertyServiceImpl) CreateProperty(ctx context.Context, actorID int64, req *dto.CreatePropertyRequest) (*models.Property, error) {
	status := req.Status
	if status == "" {
		status = models.PropertyStatusActive
	}
	if !models.IsValidPropertyStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}
	if !models.IsValidPropertyType(req.Type) {
		return nil, fmt.Errorf("%w: unknown type %q", apperrors.ErrValidationFailed, req.Type)
	}

	p := &models.Property{
		Title:         strings.TrimSpace(req.Title),
		Address:       strings.TrimSpace(req.Address),
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Price:         req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		LotSize:       req.LotSize,
		YearBuilt:     req.YearBuilt,
		ParkingSpaces: req.ParkingSpaces,
		Description:   req.Description,
		Type:          req.Type,
		Status:        status,
		MainImage:     req.MainImage,
		Images:        req.Images,
		Features:      req.Features,
		ListedByID:    actorID,
	}
	applyPropertyDefaults(p)
	reconcileCoverImage(p)

	if _, err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("error creating property: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityListing,
		Title:       "New listing created",
		Description: fmt.Sprintf("%s, %s listed for %d", p.Address, p.City, p.Price),
		UserID:      actorID,
		PropertyID:  &p.ID,
	})

	return p, nil
}

// GetPropertyByID retrieves a listing by id
func (s *propertyServiceImpl) GetPropertyByID(ctx context.Context, id int64) (*models.Property, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid property ID", apperrors.ErrValidationFailed)
	}

	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("error retrieving property: %w", err)
	}
	return p, nil
}

// ListProperties retrieves the actor's listings, optionally filtered
func (s *propertyServiceImpl) ListProperties(ctx context.Context, actorID int64, filter *dto.PropertyFilter) ([]*models.Property, error) {
	if filter != nil && filter.Status != "" && !models.IsValidPropertyStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, filter.Status)
	}

	properties, err := s.propertyRepo.ListByOwner(ctx, actorID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}
	return properties, nil
}

// UpdateProperty applies a partial update to a listing the actor owns
// and records a "property_update" activity. PUT and PATCH share these
// merge semantics.
func (s *propertyServiceImpl) UpdateProperty(ctx context.Context, actorID, id int64, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid property ID", apperrors.ErrValidationFailed)
	}
	if req.Status != nil && !models.IsValidPropertyStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, *req.Status)
	}
	if req.Type != nil && !models.IsValidPropertyType(*req.Type) {
		return nil, fmt.Errorf("%w: unknown type %q", apperrors.ErrValidationFailed, *req.Type)
	}

	existing, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("error retrieving property: %w", err)
	}

	if existing.ListedByID != actorID {
		return nil, apperrors.NewForbiddenError("property belongs to another user")
	}

	// Ownership is immutable after creation; a payload that tries to
	// reassign the listing is rejected rather than silently ignored.
	if req.ListedByID != nil && *req.ListedByID != existing.ListedByID {
		return nil, fmt.Errorf("%w: listedById cannot be changed", apperrors.ErrValidationFailed)
	}

	merged := MergeProperty(existing, req)

	if err := s.propertyRepo.Update(ctx, merged); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("error updating property: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityPropertyUpdate,
		Title:       "Listing updated",
		Description: fmt.Sprintf("%s, %s", merged.Address, merged.City),
		UserID:      actorID,
		PropertyID:  &merged.ID,
	})

	return merged, nil
}

// DeleteProperty removes a listing the actor owns and records a
// "property_delete" activity. The activity carries no property
// reference since the row is gone.
func (s *propertyServiceImpl) DeleteProperty(ctx context.Context, actorID, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid property ID", apperrors.ErrValidationFailed)
	}

	existing, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("error retrieving property: %w", err)
	}

	if existing.ListedByID != actorID {
		return apperrors.NewForbiddenError("property belongs to another user")
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("error deleting property: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityPropertyDelete,
		Title:       "Listing removed",
		Description: fmt.Sprintf("%s, %s", existing.Address, existing.City),
		UserID:      actorID,
	})

	return nil
}

// MergeProperty computes the next persisted state of a listing from the
// stored record and a partial update. Fields present in the payload
// replace the stored value; absent fields are retained. The
// nullable-but-required set (yearBuilt, lotSize, parkingSpaces,
// mainImage, images, features) is then defaulted to a type-appropriate
// zero value if still unset, because the payloads come from independent
// forms that each send different subsets of the fields.
func MergeProperty(existing *models.Property, req *dto.UpdatePropertyRequest) *models.Property {
	merged := *existing
	merged.Images = append([]string(nil), existing.Images...)
	merged.Features = append([]string(nil), existing.Features...)

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Address != nil {
		merged.Address = *req.Address
	}
	if req.City != nil {
		merged.City = *req.City
	}
	if req.State != nil {
		merged.State = *req.State
	}
	if req.ZipCode != nil {
		merged.ZipCode = *req.ZipCode
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}
	if req.Bedrooms != nil {
		merged.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		merged.Bathrooms = *req.Bathrooms
	}
	if req.SquareFeet != nil {
		merged.SquareFeet = *req.SquareFeet
	}
	if req.LotSize != nil {
		merged.LotSize = *req.LotSize
	}
	if req.YearBuilt != nil {
		merged.YearBuilt = *req.YearBuilt
	}
	if req.ParkingSpaces != nil {
		merged.ParkingSpaces = *req.ParkingSpaces
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.MainImage != nil {
		merged.MainImage = *req.MainImage
	}
	if req.Images != nil {
		merged.Images = append([]string(nil), req.Images...)
	}
	if req.Features != nil {
		merged.Features = append([]string(nil), req.Features...)
	}

	applyPropertyDefaults(&merged)
	reconcileCoverImage(&merged)

	return &merged
}

func applyPropertyDefaults(p *models.Property) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	// YearBuilt, LotSize, ParkingSpaces and MainImage already carry
	// their zero values when unset; nothing further to substitute.
}

// reconcileCoverImage keeps mainImage and images[0] pointing at the
// same visual asset: images[0] fills an empty mainImage, a mainImage
// elsewhere in images moves to the front, and a mainImage missing
// from images is prepended as the cover.
func reconcileCoverImage(p *models.Property) {
	if p.MainImage == "" {
		if len(p.Images) > 0 {
			p.MainImage = p.Images[0]
		}
		return
	}
	for i, img := range p.Images {
		if img != p.MainImage {
			continue
		}
		if i > 0 {
			rest := append(append([]string(nil), p.Images[:i]...), p.Images[i+1:]...)
			p.Images = append([]string{p.MainImage}, rest...)
		}
		return
	}
	p.Images = append([]string{p.MainImage}, p.Images...)
}
