package repository

import (
	"context"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateEmail when the
	// email is already registered.
	Create(ctx context.Context, u *entity.User) error
	// GetByID returns ErrNotFound when no user exists with the id.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail returns ErrNotFound when no user exists with the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
