package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
)

// seedUsers are inserted into an empty users table at startup so a fresh
// deployment has data to serve immediately. IDs are assigned by the database,
// so on a fresh schema Alice receives 1 and Bob receives 2.
var seedUsers = []models.User{
	{Name: "Alice", Email: "alice@example.com", Age: 28},
	{Name: "Bob", Email: "bob@example.com", Age: 35},
}

// seedIfEmpty populates the users table with [seedUsers] when it contains no
// rows. A non-empty table is left untouched, so restarts never duplicate or
// reset existing data.
func (db *DB) seedIfEmpty(ctx context.Context, log *logger.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*DB.seedIfEmpty").Msg("failed to count users")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if count > 0 {
		log.Debug().Str("func", "*DB.seedIfEmpty").Int("existing_users", count).Msg("users table already populated, skipping seed")
		return nil
	}

	for _, user := range seedUsers {
		if _, err := db.ExecContext(ctx, insertUser, user.Name, user.Email, user.Age); err != nil {
			log.Err(err).Str("func", "*DB.seedIfEmpty").Str("email", user.Email).Msg("failed to insert seed user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	log.Info().Str("func", "*DB.seedIfEmpty").Int("seeded_users", len(seedUsers)).Msg("seeded empty users table")

	return nil
}
