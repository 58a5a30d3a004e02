package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"RENTEASE_BACK-END/internal/config"
	"RENTEASE_BACK-END/internal/models"
)

// In-memory store fakes used by the handler tests. Each fake has an
// optional forced error so store failures can be simulated.

type fakeUserStore struct {
	users     map[uuid.UUID]*models.User
	forcedErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.ErrEmailExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakePropertyStore struct {
	properties map[uuid.UUID]*models.Property
	forcedErr  error
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: make(map[uuid.UUID]*models.Property)}
}

func (f *fakePropertyStore) Create(_ context.Context, property *models.Property) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *property
	f.properties[property.ID] = &cp
	return nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	p, ok := f.properties[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyStore) ListAvailable(_ context.Context) ([]models.Property, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]models.Property, 0)
	for _, p := range f.properties {
		if p.IsAvailable == models.PropertyAvailable {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]models.Property, 0)
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyStore) Update(_ context.Context, property *models.Property) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.properties[property.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *property
	f.properties[property.ID] = &cp
	return nil
}

type fakeBookingStore struct {
	bookings  map[uuid.UUID]*models.Booking
	forcedErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (f *fakeBookingStore) Create(_ context.Context, booking *models.Booking) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) ListByRenter(_ context.Context, renterID uuid.UUID) ([]models.Booking, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.RenterID == renterID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Booking, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return models.ErrNotFound
	}
	b.BookingStatus = status
	b.UpdatedAt = time.Now()
	return nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:   "test-secret",
			TokenTTL: 24 * time.Hour,
		},
	}
}
