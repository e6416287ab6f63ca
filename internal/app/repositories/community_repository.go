package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// CommunityRepository handles read access to seeded marketing
// communities. There is no mutation path.
type CommunityRepository struct {
	db *pgxpool.Pool
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// List retrieves all communities
func (r *CommunityRepository) List(ctx context.Context) ([]*models.Community, error) {
	query := `SELECT id, name, location, image FROM communities ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing communities: %w", err)
	}
	defer rows.Close()

	communities := []*models.Community{}
	for rows.Next() {
		var c models.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Image); err != nil {
			return nil, fmt.Errorf("error scanning community row: %w", err)
		}
		communities = append(communities, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating community rows: %w", err)
	}

	return communities, nil
}
