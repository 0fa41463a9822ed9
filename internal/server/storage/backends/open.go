// Package backends selects a user storage implementation from a database DSN.
package backends

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/blogful/internal/server/storage"
	"github.com/iudanet/blogful/internal/server/storage/boltdb"
	"github.com/iudanet/blogful/internal/server/storage/postgres"
	"github.com/iudanet/blogful/internal/server/storage/sqlite"
)

// Open opens the storage described by dsn:
//
//	postgres://... | postgresql://...  PostgreSQL (pgx)
//	bolt://path                        BoltDB file
//	sqlite://path | path | :memory:    SQLite
func Open(ctx context.Context, dsn string) (storage.Storage, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty DSN", storage.ErrUnsupportedDSN)
	}

	scheme, rest, found := strings.Cut(dsn, "://")
	if !found {
		return wrap(sqlite.New(ctx, dsn))
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return wrap(postgres.New(ctx, dsn))
	case "bolt":
		return wrap(boltdb.New(ctx, rest))
	case "sqlite", "sqlite3":
		return wrap(sqlite.New(ctx, rest))
	default:
		return nil, fmt.Errorf("%w: scheme %q", storage.ErrUnsupportedDSN, scheme)
	}
}

// wrap не дает typed nil указателю превратиться в ненулевой интерфейс
func wrap[S storage.Storage](s S, err error) (storage.Storage, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
