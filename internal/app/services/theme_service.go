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

type themeSettingsStore interface {
	GetOrCreate(ctx context.Context, defaults *models.ThemeSettings) (*models.ThemeSettings, error)
	Upsert(ctx context.Context, s *models.ThemeSettings) (*models.ThemeSettings, error)
}

type websiteThemeStore interface {
	Create(ctx context.Context, theme *models.WebsiteTheme) (int64, error)
	List(ctx context.Context) ([]*models.WebsiteTheme, error)
	GetActive(ctx context.Context) (*models.WebsiteTheme, error)
	Activate(ctx context.Context, id int64) error
}

// ThemeService distributes theme configuration: per-scope settings
// (colors, fonts) and named website themes with a single active record.
// Readers always observe a complete configuration, never a partial
// write.
type ThemeService interface {
	GetThemeSettings(ctx context.Context, scopeID int64) (*models.ThemeSettings, error)
	UpdateThemeSettings(ctx context.Context, scopeID int64, req *dto.UpdateThemeSettingsRequest) (*models.ThemeSettings, error)
	CreateWebsiteTheme(ctx context.Context, req *dto.CreateWebsiteThemeRequest) (*models.WebsiteTheme, error)
	ListWebsiteThemes(ctx context.Context) ([]*models.WebsiteTheme, error)
	GetActiveWebsiteTheme(ctx context.Context) (*models.WebsiteTheme, error)
	SetActiveWebsiteTheme(ctx context.Context, id int64) (*models.WebsiteTheme, error)
}

type themeServiceImpl struct {
	settingsRepo themeSettingsStore
	themeRepo    websiteThemeStore
}

// NewThemeService creates a new theme service instance
func NewThemeService(settingsRepo themeSettingsStore, themeRepo websiteThemeStore) ThemeService {
	return &themeServiceImpl{
		settingsRepo: settingsRepo,
		themeRepo:    themeRepo,
	}
}

// GetThemeSettings returns the scope's settings, lazily creating the
// default palette on first read.
func (s *themeServiceImpl) GetThemeSettings(ctx context.Context, scopeID int64) (*models.ThemeSettings, error) {
	if scopeID <= 0 {
		return nil, fmt.Errorf("%w: invalid scope ID", apperrors.ErrValidationFailed)
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx, models.DefaultThemeSettings(scopeID))
	if err != nil {
		return nil, fmt.Errorf("error retrieving theme settings: %w", err)
	}
	return settings, nil
}

// UpdateThemeSettings merges the partial payload over the scope's
// current (or default) settings and upserts the full row, returning it.
func (s *themeServiceImpl) UpdateThemeSettings(ctx context.Context, scopeID int64, req *dto.UpdateThemeSettingsRequest) (*models.ThemeSettings, error) {
	if scopeID <= 0 {
		return nil, fmt.Errorf("%w: invalid scope ID", apperrors.ErrValidationFailed)
	}

	current, err := s.settingsRepo.GetOrCreate(ctx, models.DefaultThemeSettings(scopeID))
	if err != nil {
		return nil, fmt.Errorf("error retrieving theme settings: %w", err)
	}

	merged := MergeThemeSettings(current, req)

	settings, err := s.settingsRepo.Upsert(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("error updating theme settings: %w", err)
	}
	return settings, nil
}

// CreateWebsiteTheme creates a named theme record, inactive by default
func (s *themeServiceImpl) CreateWebsiteTheme(ctx context.Context, req *dto.CreateWebsiteThemeRequest) (*models.WebsiteTheme, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	theme := &models.WebsiteTheme{
		Name:        name,
		Description: req.Description,
	}

	if _, err := s.themeRepo.Create(ctx, theme); err != nil {
		if errors.Is(err, apperrors.ErrThemeNameTaken) {
			return nil, apperrors.ErrThemeNameTaken
		}
		return nil, fmt.Errorf("error creating website theme: %w", err)
	}
	return theme, nil
}

// ListWebsiteThemes retrieves all theme records
func (s *themeServiceImpl) ListWebsiteThemes(ctx context.Context) ([]*models.WebsiteTheme, error) {
	themes, err := s.themeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing website themes: %w", err)
	}
	return themes, nil
}

// GetActiveWebsiteTheme returns the single active theme
func (s *themeServiceImpl) GetActiveWebsiteTheme(ctx context.Context) (*models.WebsiteTheme, error) {
	theme, err := s.themeRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveTheme) {
			return nil, apperrors.ErrNoActiveTheme
		}
		return nil, fmt.Errorf("error retrieving active website theme: %w", err)
	}
	return theme, nil
}

// SetActiveWebsiteTheme atomically makes id the only active theme and
// returns it. Activating the already-active theme is a no-op.
func (s *themeServiceImpl) SetActiveWebsiteTheme(ctx context.Context, id int64) (*models.WebsiteTheme, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid theme ID", apperrors.ErrValidationFailed)
	}

	if err := s.themeRepo.Activate(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrThemeNotFound) {
			return nil, apperrors.ErrThemeNotFound
		}
		return nil, fmt.Errorf("error activating website theme: %w", err)
	}

	return s.GetActiveWebsiteTheme(ctx)
}

// MergeThemeSettings applies the non-nil payload fields over current
// and returns the full next state.
func MergeThemeSettings(current *models.ThemeSettings, req *dto.UpdateThemeSettingsRequest) *models.ThemeSettings {
	merged := *current

	if req.PrimaryColor != nil {
		merged.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		merged.SecondaryColor = *req.SecondaryColor
	}
	if req.AccentColor != nil {
		merged.AccentColor = *req.AccentColor
	}
	if req.BackgroundColor != nil {
		merged.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		merged.TextColor = *req.TextColor
	}
	if req.HeadingFont != nil {
		merged.HeadingFont = *req.HeadingFont
	}
	if req.BodyFont != nil {
		merged.BodyFont = *req.BodyFont
	}
	if req.BorderRadius != nil {
		merged.BorderRadius = *req.BorderRadius
	}

	return &merged
}
