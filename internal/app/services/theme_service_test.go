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

// fakeThemeSettingsStore mimics the unique-row-per-scope semantics of
// the theme_settings table.
type fakeThemeSettingsStore struct {
	rows map[int64]*models.ThemeSettings
}

func newFakeThemeSettingsStore() *fakeThemeSettingsStore {
	return &fakeThemeSettingsStore{rows: map[int64]*models.ThemeSettings{}}
}

func (f *fakeThemeSettingsStore) GetOrCreate(_ context.Context, defaults *models.ThemeSettings) (*models.ThemeSettings, error) {
	if existing, ok := f.rows[defaults.UserID]; ok {
		clone := *existing
		return &clone, nil
	}
	clone := *defaults
	clone.ID = int64(len(f.rows) + 1)
	f.rows[defaults.UserID] = &clone
	result := clone
	return &result, nil
}

func (f *fakeThemeSettingsStore) Upsert(_ context.Context, s *models.ThemeSettings) (*models.ThemeSettings, error) {
	clone := *s
	if existing, ok := f.rows[s.UserID]; ok {
		clone.ID = existing.ID
	} else {
		clone.ID = int64(len(f.rows) + 1)
	}
	f.rows[s.UserID] = &clone
	result := clone
	return &result, nil
}

type fakeWebsiteThemeStore struct {
	themes []*models.WebsiteTheme
	nextID int64
}

func newFakeWebsiteThemeStore() *fakeWebsiteThemeStore {
	return &fakeWebsiteThemeStore{nextID: 1}
}

func (f *fakeWebsiteThemeStore) Create(_ context.Context, theme *models.WebsiteTheme) (int64, error) {
	for _, t := range f.themes {
		if t.Name == theme.Name {
			return 0, apperrors.ErrThemeNameTaken
		}
	}
	theme.ID = f.nextID
	f.nextID++
	clone := *theme
	f.themes = append(f.themes, &clone)
	return theme.ID, nil
}

func (f *fakeWebsiteThemeStore) List(_ context.Context) ([]*models.WebsiteTheme, error) {
	out := make([]*models.WebsiteTheme, 0, len(f.themes))
	for _, t := range f.themes {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeWebsiteThemeStore) GetActive(_ context.Context) (*models.WebsiteTheme, error) {
	for _, t := range f.themes {
		if t.IsActive {
			clone := *t
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNoActiveTheme
}

func (f *fakeWebsiteThemeStore) Activate(_ context.Context, id int64) error {
	var target *models.WebsiteTheme
	for _, t := range f.themes {
		if t.ID == id {
			target = t
			break
		}
	}
	if target == nil {
		return apperrors.ErrThemeNotFound
	}
	for _, t := range f.themes {
		t.IsActive = t.ID == id
	}
	return nil
}

func TestGetThemeSettingsCreatesDefaults(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())

	settings, err := svc.GetThemeSettings(context.Background(), 5)
	require.NoError(t, err)

	defaults := models.DefaultThemeSettings(5)
	assert.Equal(t, defaults.PrimaryColor, settings.PrimaryColor)
	assert.Equal(t, defaults.BodyFont, settings.BodyFont)
	assert.Equal(t, int64(5), settings.UserID)
}

func TestGetThemeSettingsIdempotent(t *testing.T) {
	store := newFakeThemeSettingsStore()
	svc := NewThemeService(store, newFakeWebsiteThemeStore())
	ctx := context.Background()

	first, err := svc.GetThemeSettings(ctx, 5)
	require.NoError(t, err)
	second, err := svc.GetThemeSettings(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.rows, 1)
}

func TestMergeThemeSettingsPartial(t *testing.T) {
	current := models.DefaultThemeSettings(1)

	merged := MergeThemeSettings(current, &dto.UpdateThemeSettingsRequest{
		PrimaryColor: strPtr("#000000"),
		BodyFont:     strPtr("Lato"),
	})

	assert.Equal(t, "#000000", merged.PrimaryColor)
	assert.Equal(t, "Lato", merged.BodyFont)
	assert.Equal(t, current.SecondaryColor, merged.SecondaryColor)
	assert.Equal(t, current.HeadingFont, merged.HeadingFont)
}

func TestUpdateThemeSettingsReturnsFullState(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())

	settings, err := svc.UpdateThemeSettings(context.Background(), 3, &dto.UpdateThemeSettingsRequest{
		AccentColor: strPtr("#FF8800"),
	})
	require.NoError(t, err)

	assert.Equal(t, "#FF8800", settings.AccentColor)
	// Untouched fields come back with their defaults, never empty.
	assert.NotEmpty(t, settings.PrimaryColor)
	assert.NotEmpty(t, settings.TextColor)
}

func TestCreateWebsiteThemeDuplicateName(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())
	ctx := context.Background()

	_, err := svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Classic"})
	require.NoError(t, err)

	_, err = svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Classic"})
	assert.ErrorIs(t, err, apperrors.ErrThemeNameTaken)
}

func TestCreateWebsiteThemeBlankName(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())

	_, err := svc.CreateWebsiteTheme(context.Background(), &dto.CreateWebsiteThemeRequest{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSetActiveWebsiteThemeSwitches(t *testing.T) {
	store := newFakeWebsiteThemeStore()
	svc := NewThemeService(newFakeThemeSettingsStore(), store)
	ctx := context.Background()

	first, err := svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Classic"})
	require.NoError(t, err)
	second, err := svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Modern"})
	require.NoError(t, err)

	active, err := svc.SetActiveWebsiteTheme(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	active, err = svc.SetActiveWebsiteTheme(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	// Exactly one theme is active after the switch.
	themes, err := svc.ListWebsiteThemes(ctx)
	require.NoError(t, err)
	activeCount := 0
	for _, theme := range themes {
		if theme.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestSetActiveWebsiteThemeIdempotent(t *testing.T) {
	store := newFakeWebsiteThemeStore()
	svc := NewThemeService(newFakeThemeSettingsStore(), store)
	ctx := context.Background()

	target, err := svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Classic"})
	require.NoError(t, err)
	_, err = svc.CreateWebsiteTheme(ctx, &dto.CreateWebsiteThemeRequest{Name: "Modern"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		active, err := svc.SetActiveWebsiteTheme(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, target.ID, active.ID)
		assert.True(t, active.IsActive)

		current, err := svc.GetActiveWebsiteTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, target.ID, current.ID)
	}

	themes, err := svc.ListWebsiteThemes(ctx)
	require.NoError(t, err)
	activeCount := 0
	for _, theme := range themes {
		if theme.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestSetActiveWebsiteThemeNotFound(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())

	_, err := svc.SetActiveWebsiteTheme(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrThemeNotFound)
}

func TestGetActiveWebsiteThemeNone(t *testing.T) {
	svc := NewThemeService(newFakeThemeSettingsStore(), newFakeWebsiteThemeStore())

	_, err := svc.GetActiveWebsiteTheme(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveTheme)
}
