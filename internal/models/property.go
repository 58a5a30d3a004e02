package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability states for a property listing
const (
	PropertyAvailable   = "Available"
	PropertyUnavailable = "Unavailable"
)

// Property represents a rental listing owned by an Owner user
type Property struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"ownerId" db:"owner_id"`
	Name        string    `json:"propertyName" db:"property_name"`
	Images      []string  `json:"propertyImages" db:"property_images"`
	Rent        float64   `json:"rent" db:"rent"`
	IsAvailable string    `json:"isAvailable" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FirstImage returns the first image path or an empty string when the
// listing has no images yet
func (p *Property) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
