package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingEntity   = errors.New("quote needs an entity id or inline entity data")
	ErrInvalidDuration = errors.New("duration cannot be negative")
)

// Upstream access errors, returned by the backend client.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
