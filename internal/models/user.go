package models

import (
	"time"

	"github.com/google/uuid"
)

// User types supported by the marketplace. Owners list properties,
// renters book them.
const (
	UserTypeRenter = "Renter"
	UserTypeOwner  = "Owner"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	UserType     string    `json:"userType" db:"user_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidUserType reports whether t is one of the allowed roles
func IsValidUserType(t string) bool {
	return t == UserTypeRenter || t == UserTypeOwner
}
