package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// ClientRepository handles database operations for leads
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) (int64, error) {
	query := `
		INSERT INTO clients (name, email, phone, realtor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.RealtorID,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating client: %w", err)
	}

	return client.ID, nil
}

// ListByRealtor retrieves all clients owned by realtorID in insertion order
func (r *ClientRepository) ListByRealtor(ctx context.Context, realtorID int64) ([]*models.Client, error) {
	query := `
		SELECT id, name, email, phone, realtor_id, created_at
		FROM clients
		WHERE realtor_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, realtorID)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.RealtorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning client row: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return clients, nil
}
