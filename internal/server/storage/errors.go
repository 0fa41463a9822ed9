package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this user name already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnsupportedDSN indicates that no backend is registered for the DSN scheme
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
