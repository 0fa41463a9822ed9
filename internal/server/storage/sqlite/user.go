package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_name, full_name, nickname, password, date_created, date_modified)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if user.DateCreated.IsZero() {
		user.DateCreated = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, query,
		user.UserName,
		user.FullName,
		user.Nickname,
		user.PasswordHash,
		user.DateCreated,
		user.DateModified,
	)
	if err != nil {
		// Проверяем на duplicate user_name
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByUsername retrieves user by user name
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		FROM users
		WHERE user_name = ?
	`

	return s.getUser(ctx, query, username)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		FROM users
		WHERE id = ?
	`

	return s.getUser(ctx, query, id)
}

func (s *Storage) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var dateModified sql.NullTime

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.UserName,
		&user.FullName,
		&user.Nickname,
		&user.PasswordHash,
		&user.DateCreated,
		&dateModified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if dateModified.Valid {
		user.DateModified = &dateModified.Time
	}

	return user, nil
}
