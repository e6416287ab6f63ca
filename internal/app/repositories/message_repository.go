package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.Read,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return message.ID, nil
}

func scanMessages(rows pgx.Rows) ([]*models.Message, error) {
	messages := []*models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// ListForUser retrieves every message the user sent or received,
// ordered by created_at then id for deterministic grouping downstream.
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, content, read, created_at
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages for user: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListBetween retrieves the full bidirectional history between two
// users, ordered by created_at ascending.
func (r *MessageRepository) ListBetween(ctx context.Context, a, b int64) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, content, read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, a, b)
	if err != nil {
		return nil, fmt.Errorf("error listing messages between users: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// MarkConversationRead flags every unread message from counterpartID to
// userID as read and returns how many rows changed.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, userID, counterpartID int64) (int64, error) {
	query := `
		UPDATE messages SET read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND read = FALSE
	`

	result, err := r.db.Exec(ctx, query, userID, counterpartID)
	if err != nil {
		return 0, fmt.Errorf("error marking conversation read: %w", err)
	}

	return result.RowsAffected(), nil
}
