package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// ActivityRepository handles database operations for the append-only
// audit log. Entries are never updated or deleted.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity entry
func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) (int64, error) {
	query := `
		INSERT INTO activities (type, title, description, user_id, property_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		a.Type,
		a.Title,
		a.Description,
		a.UserID,
		a.PropertyID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating activity: %w", err)
	}

	return a.ID, nil
}

// ListRecent retrieves the most recent limit activities for a user
func (r *ActivityRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*models.Activity, error) {
	query := `
		SELECT id, type, title, description, user_id, property_id, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.UserID, &a.PropertyID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}
