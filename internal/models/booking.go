package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Every booking starts out pending and is moved to
// approved or rejected by the property owner.
const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// Booking represents a renter's request to occupy a property for a date
// range. PropertyName, PropertyImage and Rent are snapshots taken when
// the booking is created so later listing edits do not change what the
// renter saw.
type Booking struct {
	ID            uuid.UUID `json:"id" db:"id"`
	PropertyID    uuid.UUID `json:"propertyId" db:"property_id"`
	RenterID      uuid.UUID `json:"renterId" db:"renter_id"`
	OwnerID       uuid.UUID `json:"ownerId" db:"owner_id"`
	StartDate     time.Time `json:"startDate" db:"start_date"`
	EndDate       time.Time `json:"endDate" db:"end_date"`
	Message       string    `json:"message" db:"message"`
	BookingStatus string    `json:"bookingStatus" db:"booking_status"`
	PropertyName  string    `json:"propertyName" db:"property_name"`
	PropertyImage string    `json:"propertyImage" db:"property_image"`
	Rent          float64   `json:"rent" db:"rent"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
