package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userTypeKey contextKey = "user_type"
)

// SetUserContext returns a context carrying the authenticated user's id
// and type, populated by the JWT middleware
func SetUserContext(ctx context.Context, userID uuid.UUID, userType string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userTypeKey, userType)
}

// GetUserIDFromContext extracts the authenticated user's id from the
// request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// GetUserTypeFromContext extracts the authenticated user's type from the
// request context
func GetUserTypeFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(userTypeKey).(string)
	return t, ok
}
