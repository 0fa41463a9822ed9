// Package useradd создает учетные записи блога из командной строки.
package useradd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/blogful/internal/crypto"
	"github.com/iudanet/blogful/internal/iocli"
	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
	"github.com/iudanet/blogful/internal/validation"
)

// ErrPasswordMismatch пароль и подтверждение не совпали
var ErrPasswordMismatch = errors.New("passwords do not match")

// UserCreator сохраняет нового пользователя
type UserCreator interface {
	CreateUser(ctx context.Context, user *models.User) error
}

// Options данные из флагов командной строки
type Options struct {
	UserName string
	FullName string
	Nickname string
}

// Run запрашивает недостающие данные и пароль, затем сохраняет пользователя
func Run(ctx context.Context, opts Options, console iocli.IO, users UserCreator, now func() time.Time) (*models.User, error) {
	var err error

	if opts.UserName == "" {
		opts.UserName, err = console.ReadInput("User name: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read user name: %w", err)
		}
	}
	if err := validation.ValidateUserName(opts.UserName); err != nil {
		return nil, err
	}

	if opts.FullName == "" {
		opts.FullName, err = console.ReadInput("Full name: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read full name: %w", err)
		}
	}
	if err := validation.ValidateFullName(opts.FullName); err != nil {
		return nil, err
	}

	password, err := console.ReadPassword(fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	confirm, err := console.ReadPassword("Confirm password: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserName:     opts.UserName,
		FullName:     opts.FullName,
		Nickname:     opts.Nickname,
		PasswordHash: hash,
		DateCreated:  now().UTC(),
	}

	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("user %q already exists: %w", opts.UserName, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	console.Printf("User created: id=%d user_name=%s\n", user.ID, user.UserName)
	return user, nil
}
