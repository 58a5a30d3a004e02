package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"RENTEASE_BACK-END/internal/models"
)

// PostgresBookingStore implements BookingStore on top of pgx
type PostgresBookingStore struct {
	db *pgxpool.Pool
}

// NewBookingStore creates a new PostgresBookingStore
func NewBookingStore(db *pgxpool.Pool) *PostgresBookingStore {
	return &PostgresBookingStore{db: db}
}

// Create inserts a new booking request
func (s *PostgresBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO bookings (id, property_id, renter_id, owner_id, start_date, end_date,
		 message, booking_status, property_name, property_image, rent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		booking.ID, booking.PropertyID, booking.RenterID, booking.OwnerID,
		booking.StartDate, booking.EndDate, booking.Message, booking.BookingStatus,
		booking.PropertyName, booking.PropertyImage, booking.Rent,
		booking.CreatedAt, booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// GetByID fetches a booking by id
func (s *PostgresBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := s.db.QueryRow(ctx,
		`SELECT id, property_id, renter_id, owner_id, start_date, end_date, message,
		 booking_status, property_name, property_image, rent, created_at, updated_at
		 FROM bookings WHERE id = $1`, id).
		Scan(&b.ID, &b.PropertyID, &b.RenterID, &b.OwnerID, &b.StartDate, &b.EndDate,
			&b.Message, &b.BookingStatus, &b.PropertyName, &b.PropertyImage, &b.Rent,
			&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select booking by id: %w", err)
	}

	return &b, nil
}

// ListByRenter returns all bookings made by the given renter, any status
func (s *PostgresBookingStore) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]models.Booking, error) {
	return s.list(ctx,
		`SELECT id, property_id, renter_id, owner_id, start_date, end_date, message,
		 booking_status, property_name, property_image, rent, created_at, updated_at
		 FROM bookings WHERE renter_id = $1 ORDER BY created_at`, renterID)
}

// ListByOwner returns all bookings against the given owner's properties
func (s *PostgresBookingStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error) {
	return s.list(ctx,
		`SELECT id, property_id, renter_id, owner_id, start_date, end_date, message,
		 booking_status, property_name, property_image, rent, created_at, updated_at
		 FROM bookings WHERE owner_id = $1 ORDER BY created_at`, ownerID)
}

// UpdateStatus moves a booking to the given status
func (s *PostgresBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE bookings SET booking_status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)

	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (s *PostgresBookingStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.RenterID, &b.OwnerID, &b.StartDate,
			&b.EndDate, &b.Message, &b.BookingStatus, &b.PropertyName, &b.PropertyImage,
			&b.Rent, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
