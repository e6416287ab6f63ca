package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

// PropertyRepository handles database operations for property listings
type PropertyRepository struct {
	db *pgxpool.Pool
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = `
	id, title, address, city, state, zip_code, price, bedrooms, bathrooms,
	square_feet, lot_size, year_built, parking_spaces, description,
	type, status, main_image, images, features, listed_by_id, created_at`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Address,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Price,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.SquareFeet,
		&p.LotSize,
		&p.YearBuilt,
		&p.ParkingSpaces,
		&p.Description,
		&p.Type,
		&p.Status,
		&p.MainImage,
		&p.Images,
		&p.Features,
		&p.ListedByID,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return &p, nil
}

// Create inserts a new property listing
func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) (int64, error) {
	query := `
		INSERT INTO properties (
			title, address, city, state, zip_code, price, bedrooms, bathrooms,
			square_feet, lot_size, year_built, parking_spaces, description,
			type, status, main_image, images, features, listed_by_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		p.Title,
		p.Address,
		p.City,
		p.State,
		p.ZipCode,
		p.Price,
		p.Bedrooms,
		p.Bathrooms,
		p.SquareFeet,
		p.LotSize,
		p.YearBuilt,
		p.ParkingSpaces,
		p.Description,
		p.Type,
		p.Status,
		p.MainImage,
		p.Images,
		p.Features,
		p.ListedByID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating property: %w", err)
	}

	return p.ID, nil
}

// GetByID retrieves a property by id
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	query := `SELECT` + propertyColumns + ` FROM properties WHERE id = $1`

	p, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("error retrieving property: %w", err)
	}

	return p, nil
}

// ListByOwner retrieves all listings owned by ownerID in insertion
// order, narrowed by the optional filters.
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID int64, filter *dto.PropertyFilter) ([]*models.Property, error) {
	builder := squirrel.Select(
		"id", "title", "address", "city", "state", "zip_code", "price",
		"bedrooms", "bathrooms", "square_feet", "lot_size", "year_built",
		"parking_spaces", "description", "type", "status", "main_image",
		"images", "features", "listed_by_id", "created_at",
	).
		From("properties").
		Where("listed_by_id = ?", ownerID).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.Status != "" {
			builder = builder.Where("status = ?", filter.Status)
		}
		if filter.Type != "" {
			builder = builder.Where("type = ?", filter.Type)
		}
		if filter.MinPrice > 0 {
			builder = builder.Where("price >= ?", filter.MinPrice)
		}
		if filter.MaxPrice > 0 {
			builder = builder.Where("price <= ?", filter.MaxPrice)
		}
		if filter.MinBedrooms > 0 {
			builder = builder.Where("bedrooms >= ?", filter.MinBedrooms)
		}
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}
	defer rows.Close()

	properties := []*models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning property row: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

// Update persists a fully merged property record. The merge itself
// happens in the service layer; this writes every mutable column.
func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	query := `
		UPDATE properties SET
			title = $1, address = $2, city = $3, state = $4, zip_code = $5,
			price = $6, bedrooms = $7, bathrooms = $8, square_feet = $9,
			lot_size = $10, year_built = $11, parking_spaces = $12,
			description = $13, type = $14, status = $15, main_image = $16,
			images = $17, features = $18
		WHERE id = $19
	`

	result, err := r.db.Exec(ctx, query,
		p.Title,
		p.Address,
		p.City,
		p.State,
		p.ZipCode,
		p.Price,
		p.Bedrooms,
		p.Bathrooms,
		p.SquareFeet,
		p.LotSize,
		p.YearBuilt,
		p.ParkingSpaces,
		p.Description,
		p.Type,
		p.Status,
		p.MainImage,
		p.Images,
		p.Features,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating property: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property listing
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting property: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}
