package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer. Currently it holds only [UserRepository];
// additional repositories can be added here as the feature set grows.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a database connection chosen by the DSN scheme: PostgreSQL for
//     postgres:// and postgresql:// DSNs, an SQLite file otherwise.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Seeds an empty users table with the default records.
//  4. Constructs and returns a [Storages] value wired to a fresh
//     [UserRepository].
//
// Returns an error if the database connection cannot be established or if
// migration or seeding fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := db.seedIfEmpty(ctx, logger); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// connect dispatches to the backend matching the configured DSN.
func connect(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DB.DSN) {
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}

		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return db, nil
}

// isPostgresDSN reports whether the DSN selects the PostgreSQL backend.
// Anything else is treated as an SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
