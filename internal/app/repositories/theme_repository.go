package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// ThemeRepository handles database operations for per-scope theme
// settings. The user_id column carries a unique constraint, so the
// lazy-create and upsert paths are single atomic statements.
type ThemeRepository struct {
	db *pgxpool.Pool
}

// NewThemeRepository creates a new ThemeRepository
func NewThemeRepository(db *pgxpool.Pool) *ThemeRepository {
	return &ThemeRepository{db: db}
}

const themeSettingsColumns = `
	id, user_id, primary_color, secondary_color, accent_color,
	background_color, text_color, heading_font, body_font, border_radius,
	updated_at`

func scanThemeSettings(row pgx.Row) (*models.ThemeSettings, error) {
	var s models.ThemeSettings
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.PrimaryColor,
		&s.SecondaryColor,
		&s.AccentColor,
		&s.BackgroundColor,
		&s.TextColor,
		&s.HeadingFont,
		&s.BodyFont,
		&s.BorderRadius,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetOrCreate returns the scope's settings, inserting the provided
// defaults first if no row exists. Concurrent first reads race on the
// insert; ON CONFLICT DO NOTHING ensures exactly one row survives and
// both callers read it back.
func (r *ThemeRepository) GetOrCreate(ctx context.Context, defaults *models.ThemeSettings) (*models.ThemeSettings, error) {
	insert := `
		INSERT INTO theme_settings (
			user_id, primary_color, secondary_color, accent_color,
			background_color, text_color, heading_font, body_font, border_radius
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, insert,
		defaults.UserID,
		defaults.PrimaryColor,
		defaults.SecondaryColor,
		defaults.AccentColor,
		defaults.BackgroundColor,
		defaults.TextColor,
		defaults.HeadingFont,
		defaults.BodyFont,
		defaults.BorderRadius,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating default theme settings: %w", err)
	}

	query := `SELECT` + themeSettingsColumns + ` FROM theme_settings WHERE user_id = $1`
	settings, err := scanThemeSettings(r.db.QueryRow(ctx, query, defaults.UserID))
	if err != nil {
		return nil, fmt.Errorf("error retrieving theme settings: %w", err)
	}

	return settings, nil
}

// Upsert writes the full settings row for the scope, creating it if
// absent, and returns the resulting row.
func (r *ThemeRepository) Upsert(ctx context.Context, s *models.ThemeSettings) (*models.ThemeSettings, error) {
	query := `
		INSERT INTO theme_settings (
			user_id, primary_color, secondary_color, accent_color,
			background_color, text_color, heading_font, body_font, border_radius
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			accent_color = EXCLUDED.accent_color,
			background_color = EXCLUDED.background_color,
			text_color = EXCLUDED.text_color,
			heading_font = EXCLUDED.heading_font,
			body_font = EXCLUDED.body_font,
			border_radius = EXCLUDED.border_radius,
			updated_at = NOW()
		RETURNING` + themeSettingsColumns + `
	`

	settings, err := scanThemeSettings(r.db.QueryRow(ctx, query,
		s.UserID,
		s.PrimaryColor,
		s.SecondaryColor,
		s.AccentColor,
		s.BackgroundColor,
		s.TextColor,
		s.HeadingFont,
		s.BodyFont,
		s.BorderRadius,
	))
	if err != nil {
		return nil, fmt.Errorf("error upserting theme settings: %w", err)
	}

	return settings, nil
}
