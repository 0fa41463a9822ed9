package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
)

const uniqueViolation = "23505"

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (user_name, full_name, nickname, password, date_created, date_modified)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`

	if user.DateCreated.IsZero() {
		user.DateCreated = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx, query,
		user.UserName,
		user.FullName,
		user.Nickname,
		user.PasswordHash,
		user.DateCreated,
		user.DateModified,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by user name
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		 FROM users
		 WHERE user_name = $1`

	return s.getUser(ctx, query, username)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, user_name, full_name, nickname, password, date_created, date_modified
		 FROM users
		 WHERE id = $1`

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
		return nil, fmt.Errorf("db error: %w", err)
	}

	if dateModified.Valid {
		user.DateModified = &dateModified.Time
	}

	return user, nil
}
