package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func int64Ptr(i int64) *int64 { return &i }
func floatPtr(f float64) *float64 { return &f }

func seedProperty() *models.Property {
	return &models.Property{
		ID:         7,
		Title:      "Craftsman Bungalow",
		Address:    "12 Birch Lane",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62704",
		Price:      450000,
		Bedrooms:   3,
		Bathrooms:  2.5,
		SquareFeet: 1800,
		YearBuilt:  1948,
		Type:       models.PropertyTypeForSale,
		Status:     models.PropertyStatusActive,
		MainImage:  "a.jpg",
		Images:     []string{"a.jpg", "b.jpg"},
		Features:   []string{"fireplace"},
		ListedByID: 1,
	}
}

func TestMergePropertyRetainsAbsentFields(t *testing.T) {
	existing := seedProperty()

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{
		Price: int64Ptr(475000),
	})

	assert.Equal(t, int64(475000), merged.Price)
	assert.Equal(t, "Craftsman Bungalow", merged.Title)
	assert.Equal(t, 1948, merged.YearBuilt)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, merged.Images)
	assert.Equal(t, []string{"fireplace"}, merged.Features)

	// The stored record is never mutated in place.
	assert.Equal(t, int64(450000), existing.Price)
}

func TestMergePropertyExplicitZeroOverwrites(t *testing.T) {
	existing := seedProperty()

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{
		Bedrooms:  intPtr(0),
		Bathrooms: floatPtr(0),
	})

	assert.Equal(t, 0, merged.Bedrooms)
	assert.Equal(t, 0.0, merged.Bathrooms)
}

func TestMergePropertyDefaultsNilCollections(t *testing.T) {
	existing := seedProperty()
	existing.Images = nil
	existing.Features = nil
	existing.MainImage = ""

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{})

	assert.NotNil(t, merged.Images)
	assert.NotNil(t, merged.Features)
	assert.Empty(t, merged.Images)
	assert.Empty(t, merged.Features)
}

func TestMergePropertyCoverFromFirstImage(t *testing.T) {
	existing := seedProperty()
	existing.MainImage = ""

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{
		Images: []string{"front.jpg", "back.jpg"},
	})

	assert.Equal(t, "front.jpg", merged.MainImage)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, merged.Images)
}

func TestMergePropertyCoverPrependedWhenMissing(t *testing.T) {
	existing := seedProperty()

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{
		MainImage: strPtr("hero.jpg"),
	})

	assert.Equal(t, "hero.jpg", merged.MainImage)
	assert.Equal(t, []string{"hero.jpg", "a.jpg", "b.jpg"}, merged.Images)
}

func TestMergePropertyCoverMovedToFront(t *testing.T) {
	existing := seedProperty()

	merged := MergeProperty(existing, &dto.UpdatePropertyRequest{
		MainImage: strPtr("b.jpg"),
	})

	// Choosing an existing image as the cover reorders rather than duplicates.
	assert.Equal(t, "b.jpg", merged.MainImage)
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, merged.Images)
}

func TestCreatePropertyRecordsActivityAndDefaults(t *testing.T) {
	store := newFakePropertyStore()
	activities := &fakeActivities{}
	svc := NewPropertyService(store, activities)

	created, err := svc.CreateProperty(context.Background(), 1, &dto.CreatePropertyRequest{
		Title:   "Lakeside Condo",
		Address: "4 Shore Dr",
		City:    "Madison",
		State:   "WI",
		Price:   320000,
		Type:    models.PropertyTypeForSale,
		Images:  []string{"lake.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.PropertyStatusActive, created.Status)
	assert.Equal(t, "lake.jpg", created.MainImage)
	assert.Equal(t, int64(1), created.ListedByID)
	assert.NotNil(t, created.Features)

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, models.ActivityListing, activities.recorded[0].Type)
	require.NotNil(t, activities.recorded[0].PropertyID)
	assert.Equal(t, created.ID, *activities.recorded[0].PropertyID)
}

func TestCreatePropertyRejectsUnknownType(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore(), &fakeActivities{})

	_, err := svc.CreateProperty(context.Background(), 1, &dto.CreatePropertyRequest{
		Title:   "Mystery",
		Address: "1 Nowhere",
		City:    "X",
		State:   "Y",
		Type:    "timeshare",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdatePropertyOwnershipEnforced(t *testing.T) {
	store := newFakePropertyStore()
	activities := &fakeActivities{}
	svc := NewPropertyService(store, activities)

	p := seedProperty()
	p.ID = 0
	_, err := store.Create(context.Background(), p)
	require.NoError(t, err)

	_, err = svc.UpdateProperty(context.Background(), 99, p.ID, &dto.UpdatePropertyRequest{
		Price: int64Ptr(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, activities.recorded)
}

func TestUpdatePropertyRejectsOwnershipChange(t *testing.T) {
	store := newFakePropertyStore()
	svc := NewPropertyService(store, &fakeActivities{})

	p := seedProperty()
	p.ID = 0
	_, err := store.Create(context.Background(), p)
	require.NoError(t, err)

	_, err = svc.UpdateProperty(context.Background(), 1, p.ID, &dto.UpdatePropertyRequest{
		ListedByID: int64Ptr(42),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore(), &fakeActivities{})

	_, err := svc.UpdateProperty(context.Background(), 1, 123, &dto.UpdatePropertyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
}

func TestDeletePropertyRecordsActivityWithoutReference(t *testing.T) {
	store := newFakePropertyStore()
	activities := &fakeActivities{}
	svc := NewPropertyService(store, activities)

	p := seedProperty()
	p.ID = 0
	_, err := store.Create(context.Background(), p)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(context.Background(), 1, p.ID))

	_, err = store.GetByID(context.Background(), p.ID)
	assert.True(t, errors.Is(err, apperrors.ErrPropertyNotFound))

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, models.ActivityPropertyDelete, activities.recorded[0].Type)
	assert.Nil(t, activities.recorded[0].PropertyID)
}

func TestListPropertiesAppliesFilter(t *testing.T) {
	store := newFakePropertyStore()
	svc := NewPropertyService(store, &fakeActivities{})
	ctx := context.Background()

	for _, p := range []*models.Property{
		{Title: "A", Status: models.PropertyStatusActive, Price: 100, ListedByID: 1, Type: models.PropertyTypeForSale},
		{Title: "B", Status: models.PropertyStatusSold, Price: 200, ListedByID: 1, Type: models.PropertyTypeForSale},
		{Title: "C", Status: models.PropertyStatusActive, Price: 300, ListedByID: 2, Type: models.PropertyTypeForSale},
	} {
		_, err := store.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := svc.ListProperties(ctx, 1, &dto.PropertyFilter{Status: models.PropertyStatusActive})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}
