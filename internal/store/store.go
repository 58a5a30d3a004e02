// Package store provides the persistence layer. Each entity has a
// small interface so handlers can be tested against in-memory fakes,
// with pgx-backed implementations used in production.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"RENTEASE_BACK-END/internal/models"
)

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// PropertyStore persists rental listings
type PropertyStore interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListAvailable(ctx context.Context) ([]models.Property, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) error
}

// BookingStore persists booking requests
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Store bundles the entity stores backed by a single connection pool.
// The pool is opened once at process start and closed on shutdown.
type Store struct {
	Users      UserStore
	Properties PropertyStore
	Bookings   BookingStore
}

// NewStore creates a Store backed by the given pgx pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:      NewUserStore(pool),
		Properties: NewPropertyStore(pool),
		Bookings:   NewBookingStore(pool),
	}
}
