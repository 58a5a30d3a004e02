package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"RENTEASE_BACK-END/internal/models"
)

// PostgresPropertyStore implements PropertyStore on top of pgx
type PostgresPropertyStore struct {
	db *pgxpool.Pool
}

// NewPropertyStore creates a new PostgresPropertyStore
func NewPropertyStore(db *pgxpool.Pool) *PostgresPropertyStore {
	return &PostgresPropertyStore{db: db}
}

// Create inserts a new listing
func (s *PostgresPropertyStore) Create(ctx context.Context, property *models.Property) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO properties (id, owner_id, property_name, property_images, rent, is_available, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		property.ID, property.OwnerID, property.Name, property.Images, property.Rent,
		property.IsAvailable, property.CreatedAt, property.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}

	return nil
}

// GetByID fetches a listing by id
func (s *PostgresPropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, property_name, property_images, rent, is_available, created_at, updated_at
		 FROM properties WHERE id = $1`, id).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.Images, &p.Rent, &p.IsAvailable,
			&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select property by id: %w", err)
	}

	return &p, nil
}

// ListAvailable returns all listings whose availability is exactly
// "Available", in insertion order
func (s *PostgresPropertyStore) ListAvailable(ctx context.Context) ([]models.Property, error) {
	return s.list(ctx,
		`SELECT id, owner_id, property_name, property_images, rent, is_available, created_at, updated_at
		 FROM properties WHERE is_available = $1 ORDER BY created_at`, models.PropertyAvailable)
}

// ListByOwner returns all listings belonging to the given owner
func (s *PostgresPropertyStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	return s.list(ctx,
		`SELECT id, owner_id, property_name, property_images, rent, is_available, created_at, updated_at
		 FROM properties WHERE owner_id = $1 ORDER BY created_at`, ownerID)
}

// Update saves all mutable fields of a listing
func (s *PostgresPropertyStore) Update(ctx context.Context, property *models.Property) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE properties
		 SET property_name = $1, property_images = $2, rent = $3, is_available = $4, updated_at = $5
		 WHERE id = $6`,
		property.Name, property.Images, property.Rent, property.IsAvailable,
		property.UpdatedAt, property.ID)

	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (s *PostgresPropertyStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Property, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select properties: %w", err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Images, &p.Rent,
			&p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}

	return properties, nil
}
