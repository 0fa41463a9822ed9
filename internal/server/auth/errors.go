package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is the single client-facing outcome for a bad user name or password
	ErrInvalidCredentials = errors.New("incorrect user_name or password")

	// ErrUnknownUser means no account exists for the user name. Matches ErrInvalidCredentials.
	ErrUnknownUser = fmt.Errorf("%w: unknown user", ErrInvalidCredentials)

	// ErrWrongPassword means the account exists but the password does not match. Matches ErrInvalidCredentials.
	ErrWrongPassword = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	// ErrSigningKeyMissing means the token signing secret is not configured
	ErrSigningKeyMissing = errors.New("token signing secret is not configured")
)

// MissingFieldError reports a required login field that is absent or empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing '%s' in request body", e.Field)
}

// StorageError wraps a credential store failure (connectivity, timeout, corrupt row)
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "credential storage: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// VerificationError wraps a failure to check a password against a corrupt stored hash
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string { return "password verification: " + e.Err.Error() }

func (e *VerificationError) Unwrap() error { return e.Err }

// SigningError wraps a failure to sign the auth token
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return "token signing: " + e.Err.Error() }

func (e *SigningError) Unwrap() error { return e.Err }

// FailureReason returns a stable label for server-side logs. It distinguishes
// causes that share one client-facing message.
func FailureReason(err error) string {
	var (
		missing      *MissingFieldError
		storageErr   *StorageError
		verification *VerificationError
		signing      *SigningError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return "missing_field"
	case errors.Is(err, ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, ErrWrongPassword):
		return "wrong_password"
	case errors.As(err, &storageErr):
		return "storage_error"
	case errors.As(err, &verification):
		return "verification_error"
	case errors.As(err, &signing):
		return "signing_error"
	default:
		return "internal_error"
	}
}
