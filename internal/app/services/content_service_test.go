package services

import (
	"context"
	"testing"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tripleKey struct {
	page, section, key string
}

type fakeContentStore struct {
	rows   map[tripleKey]*models.PageContent
	nextID int64
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{rows: map[tripleKey]*models.PageContent{}, nextID: 1}
}

func (f *fakeContentStore) ListByPage(_ context.Context, pageName string) ([]*models.PageContent, error) {
	var out []*models.PageContent
	for _, row := range f.rows {
		if row.PageName == pageName {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeContentStore) Upsert(_ context.Context, item *models.PageContent) (*models.PageContent, error) {
	key := tripleKey{item.PageName, item.SectionName, item.ContentKey}
	clone := *item
	if existing, ok := f.rows[key]; ok {
		clone.ID = existing.ID
	} else {
		clone.ID = f.nextID
		f.nextID++
	}
	f.rows[key] = &clone
	result := clone
	return &result, nil
}

func TestUpsertPageContentReplacesByTriple(t *testing.T) {
	store := newFakeContentStore()
	svc := NewContentService(store)
	ctx := context.Background()

	first, err := svc.UpsertPageContent(ctx, []dto.PageContentItem{
		{PageName: "home", SectionName: "hero", ContentKey: "headline", ContentValue: "Welcome"},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.UpsertPageContent(ctx, []dto.PageContentItem{
		{PageName: "home", SectionName: "hero", ContentKey: "headline", ContentValue: "Updated"},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Same row, new value, no duplicate.
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "Updated", second[0].ContentValue)
	assert.Len(t, store.rows, 1)
}

func TestUpsertPageContentDefaultsContentType(t *testing.T) {
	svc := NewContentService(newFakeContentStore())

	saved, err := svc.UpsertPageContent(context.Background(), []dto.PageContentItem{
		{PageName: "home", SectionName: "hero", ContentKey: "headline", ContentValue: "Welcome"},
	})
	require.NoError(t, err)
	assert.Equal(t, "text", saved[0].ContentType)
}

func TestUpsertPageContentValidatesWholeBatchFirst(t *testing.T) {
	store := newFakeContentStore()
	svc := NewContentService(store)

	_, err := svc.UpsertPageContent(context.Background(), []dto.PageContentItem{
		{PageName: "home", SectionName: "hero", ContentKey: "headline", ContentValue: "ok"},
		{PageName: "home", SectionName: "", ContentKey: "broken"},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	// Nothing written when any item is invalid.
	assert.Empty(t, store.rows)
}

func TestUpsertPageContentEmptyBatch(t *testing.T) {
	svc := NewContentService(newFakeContentStore())

	_, err := svc.UpsertPageContent(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetPageContentRequiresPageName(t *testing.T) {
	svc := NewContentService(newFakeContentStore())

	_, err := svc.GetPageContent(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
