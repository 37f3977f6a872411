package repository

import "errors"

// Sentinel errors returned by repository implementations. Services
// translate them into the API error taxonomy at the application layer.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
