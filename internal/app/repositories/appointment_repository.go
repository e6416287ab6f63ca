package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
)

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (title, date, location, notes, client_id, property_id, realtor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		a.Title,
		a.Date,
		a.Location,
		a.Notes,
		a.ClientID,
		a.PropertyID,
		a.RealtorID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating appointment: %w", err)
	}

	return a.ID, nil
}

func scanAppointments(rows pgx.Rows) ([]*models.Appointment, error) {
	appointments := []*models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.Location, &a.Notes,
			&a.ClientID, &a.PropertyID, &a.RealtorID, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment row: %w", err)
		}
		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}

	return appointments, nil
}

// ListByRealtor retrieves all appointments for realtorID in insertion order
func (r *AppointmentRepository) ListByRealtor(ctx context.Context, realtorID int64) ([]*models.Appointment, error) {
	query := `
		SELECT id, title, date, location, notes, client_id, property_id, realtor_id, created_at
		FROM appointments
		WHERE realtor_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, realtorID)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListForWindow retrieves appointments whose date falls within
// [from, to), ordered by date.
func (r *AppointmentRepository) ListForWindow(ctx context.Context, realtorID int64, from, to time.Time) ([]*models.Appointment, error) {
	query := `
		SELECT id, title, date, location, notes, client_id, property_id, realtor_id, created_at
		FROM appointments
		WHERE realtor_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, realtorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments for window: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}
