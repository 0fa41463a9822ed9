package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
)

// userRecord - формат хранения пользователя в bucket; хеш пароля хранится явно,
// так как models.User исключает его из JSON
type userRecord struct {
	DateCreated  time.Time  `json:"date_created"`
	DateModified *time.Time `json:"date_modified,omitempty"`
	UserName     string     `json:"user_name"`
	FullName     string     `json:"full_name"`
	Nickname     string     `json:"nickname,omitempty"`
	Password     string     `json:"password"`
	ID           int64      `json:"id"`
}

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		users := tx.Bucket(bucketUsers)
		ids := tx.Bucket(bucketUserIDs)

		key := []byte(user.UserName)
		if users.Get(key) != nil {
			return storage.ErrUserAlreadyExists
		}

		seq, err := users.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate user id: %w", err)
		}

		if user.DateCreated.IsZero() {
			user.DateCreated = time.Now().UTC()
		}

		rec := userRecord{
			ID:           int64(seq),
			UserName:     user.UserName,
			FullName:     user.FullName,
			Nickname:     user.Nickname,
			Password:     user.PasswordHash,
			DateCreated:  user.DateCreated,
			DateModified: user.DateModified,
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		if err := users.Put(key, data); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		if err := ids.Put(idKey(rec.ID), key); err != nil {
			return fmt.Errorf("failed to index user id: %w", err)
		}

		user.ID = rec.ID
		return nil
	})
}

// GetUserByUsername retrieves user by user name
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user *models.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		user, err = readUser(tx.Bucket(bucketUsers), []byte(username))
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		name := tx.Bucket(bucketUserIDs).Get(idKey(id))
		if name == nil {
			return storage.ErrUserNotFound
		}

		var err error
		user, err = readUser(tx.Bucket(bucketUsers), name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func readUser(bucket *bbolt.Bucket, key []byte) (*models.User, error) {
	data := bucket.Get(key)
	if data == nil {
		return nil, storage.ErrUserNotFound
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &models.User{
		ID:           rec.ID,
		UserName:     rec.UserName,
		FullName:     rec.FullName,
		Nickname:     rec.Nickname,
		PasswordHash: rec.Password,
		DateCreated:  rec.DateCreated,
		DateModified: rec.DateModified,
	}, nil
}

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}
