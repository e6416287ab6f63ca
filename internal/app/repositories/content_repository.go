package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// ContentRepository handles database operations for page content
// triples. (page_name, section_name, content_key) is unique, so upsert
// is a single atomic statement.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListByPage retrieves all content triples for a page
func (r *ContentRepository) ListByPage(ctx context.Context, pageName string) ([]*models.PageContent, error) {
	query := `
		SELECT id, page_name, section_name, content_key, content_value, content_type, updated_at
		FROM page_content
		WHERE page_name = $1
		ORDER BY section_name ASC, content_key ASC
	`

	rows, err := r.db.Query(ctx, query, pageName)
	if err != nil {
		return nil, fmt.Errorf("error listing page content: %w", err)
	}
	defer rows.Close()

	items := []*models.PageContent{}
	for rows.Next() {
		var c models.PageContent
		err := rows.Scan(&c.ID, &c.PageName, &c.SectionName, &c.ContentKey,
			&c.ContentValue, &c.ContentType, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning page content row: %w", err)
		}
		items = append(items, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page content rows: %w", err)
	}

	return items, nil
}

// Upsert replaces the triple matching (page, section, key) or inserts
// it if absent, returning the resulting row.
func (r *ContentRepository) Upsert(ctx context.Context, item *models.PageContent) (*models.PageContent, error) {
	query := `
		INSERT INTO page_content (page_name, section_name, content_key, content_value, content_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (page_name, section_name, content_key) DO UPDATE SET
			content_value = EXCLUDED.content_value,
			content_type = EXCLUDED.content_type,
			updated_at = NOW()
		RETURNING id, page_name, section_name, content_key, content_value, content_type, updated_at
	`

	var c models.PageContent
	err := r.db.QueryRow(ctx, query,
		item.PageName,
		item.SectionName,
		item.ContentKey,
		item.ContentValue,
		item.ContentType,
	).Scan(&c.ID, &c.PageName, &c.SectionName, &c.ContentKey, &c.ContentValue, &c.ContentType, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error upserting page content: %w", err)
	}

	return &c, nil
}
