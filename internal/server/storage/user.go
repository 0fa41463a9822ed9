package storage

import (
	"context"

	"github.com/iudanet/blogful/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage and assigns user.ID
	// Returns ErrUserAlreadyExists if user name is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by user name
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Storage is a UserStorage backed by a closable connection
type Storage interface {
	UserStorage

	// Ping checks that the underlying database is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
