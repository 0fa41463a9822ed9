// Package auth implements the login flow: required field validation, credential
// lookup, password verification and signed token issuance.
package auth

import (
	"context"
	"errors"

	"github.com/iudanet/blogful/internal/crypto"
	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
)

// Required login fields in validation order
const (
	FieldUserName = "user_name"
	FieldPassword = "password"
)

// UserFinder looks up a user record by user name
type UserFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Issuer signs a token for an authenticated user
type Issuer interface {
	Issue(userID int64, username string) (string, error)
}

// PasswordVerifier compares a plaintext password with a stored hash
type PasswordVerifier func(hash, password string) (bool, error)

// Service authenticates users. It holds no per-request state and is safe for concurrent use.
type Service struct {
	users  UserFinder
	issuer Issuer
	verify PasswordVerifier
}

// NewService creates a login service that verifies bcrypt password hashes
func NewService(users UserFinder, issuer Issuer) *Service {
	return &Service{
		users:  users,
		issuer: issuer,
		verify: crypto.VerifyPassword,
	}
}

// Login checks the credentials and returns a signed token.
//
// Errors:
//   - *MissingFieldError when user_name (checked first) or password is empty
//   - ErrUnknownUser / ErrWrongPassword, both matching ErrInvalidCredentials
//   - *StorageError, *VerificationError, *SigningError for server-side faults
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" {
		return "", &MissingFieldError{Field: FieldUserName}
	}
	if password == "" {
		return "", &MissingFieldError{Field: FieldPassword}
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrUnknownUser
		}
		return "", &StorageError{Err: err}
	}

	ok, err := s.verify(user.PasswordHash, password)
	if err != nil {
		return "", &VerificationError{Err: err}
	}
	if !ok {
		return "", ErrWrongPassword
	}

	token, err := s.issuer.Issue(user.ID, user.UserName)
	if err != nil {
		return "", &SigningError{Err: err}
	}

	return token, nil
}
