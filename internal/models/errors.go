package models

import "errors"

// Domain errors returned by stores and business logic. Handlers map
// these to HTTP status codes at the boundary; nothing below the
// handlers knows about transport codes.
var (
	ErrValidation         = errors.New("validation error")
	ErrEmailExists        = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("property unavailable")
	ErrForbidden          = errors.New("forbidden")
)
