package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/db"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

// WebsiteThemeRepository handles database operations for named website
// themes. Activation runs both statements in a single transaction so
// exactly one theme is active afterwards.
type WebsiteThemeRepository struct {
	db *pgxpool.Pool
}

// NewWebsiteThemeRepository creates a new WebsiteThemeRepository
func NewWebsiteThemeRepository(pool *pgxpool.Pool) *WebsiteThemeRepository {
	return &WebsiteThemeRepository{db: pool}
}

// Create inserts a new theme record. Theme names are unique.
func (r *WebsiteThemeRepository) Create(ctx context.Context, theme *models.WebsiteTheme) (int64, error) {
	query := `
		INSERT INTO website_themes (name, description, is_active)
		VALUES ($1, $2, FALSE)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, theme.Name, theme.Description).Scan(&theme.ID, &theme.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrThemeNameTaken
		}
		return 0, fmt.Errorf("error creating website theme: %w", err)
	}
	theme.IsActive = false

	return theme.ID, nil
}

// List retrieves all theme records in insertion order
func (r *WebsiteThemeRepository) List(ctx context.Context) ([]*models.WebsiteTheme, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM website_themes
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing website themes: %w", err)
	}
	defer rows.Close()

	themes := []*models.WebsiteTheme{}
	for rows.Next() {
		var t models.WebsiteTheme
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning website theme row: %w", err)
		}
		themes = append(themes, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating website theme rows: %w", err)
	}

	return themes, nil
}

// GetActive retrieves the single active theme
func (r *WebsiteThemeRepository) GetActive(ctx context.Context) (*models.WebsiteTheme, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM website_themes
		WHERE is_active = TRUE
	`

	var t models.WebsiteTheme
	err := r.db.QueryRow(ctx, query).Scan(&t.ID, &t.Name, &t.Description, &t.IsActive, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoActiveTheme
		}
		return nil, fmt.Errorf("error retrieving active website theme: %w", err)
	}

	return &t, nil
}

// Activate deactivates every theme and activates id within one
// transaction. An unknown id rolls back and reports NotFound, leaving
// the previous active theme in place.
func (r *WebsiteThemeRepository) Activate(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE website_themes SET is_active = FALSE WHERE is_active = TRUE AND id <> $1`, id); err != nil {
			return fmt.Errorf("error deactivating website themes: %w", err)
		}

		result, err := tx.Exec(ctx, `UPDATE website_themes SET is_active = TRUE WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error activating website theme: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrThemeNotFound
		}

		return nil
	})
}
