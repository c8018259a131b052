package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// runs against either supported backend (SQLite or PostgreSQL) through the
// shared [DB] handle.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - Unique violation on the email column → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Age)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to execute insert query")
		r.db.logTransient(err)

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Age); err != nil {
		// SQLite raises constraint violations when the statement is stepped,
		// which database/sql surfaces here rather than in row.Err().
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to scan created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// Get retrieves the user with the given ID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, getUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Get").Int64("user_id", id).Msg("failed to execute select query")
		r.db.logTransient(err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.Get").Int64("user_id", id).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.Get").Int64("user_id", id).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// List returns every stored user ordered by ascending ID. An empty table
// yields an empty non-nil slice.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, listUsers)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "*userRepository.List").Msg("failed to execute query for listing users")
		r.db.logTransient(queryErr)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)

	for rows.Next() {
		var user models.User

		if scanErr := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Age); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Update applies the non-nil fields of update to the stored user and returns
// the resulting record.
//
// An update carrying no fields degrades to a plain [userRepository.Get]: the
// operation succeeds without touching the row. Otherwise the statement is
// built dynamically via [buildUpdateUserQuery] and the updated row is scanned
// back through its RETURNING clause.
//
// Error handling:
//   - No row matched the ID → [ErrUserNotFound].
//   - Unique violation on the email column → [ErrEmailAlreadyExists].
//   - Builder failure → wrapped as [ErrBuildingSQLQuery].
func (r *userRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil && update.Email == nil && update.Age == nil {
		log.Debug().Str("func", "*userRepository.Update").Int64("user_id", id).Msg("empty update, returning current record")
		return r.Get(ctx, id)
	}

	query, args, buildErr := buildUpdateUserQuery(id, update)
	if buildErr != nil {
		log.Err(buildErr).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to execute update query")
		r.db.logTransient(err)

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.Update").Int64("user_id", id).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to scan updated user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes the user with the given ID.
//
// Error handling:
//   - No row matched the ID → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, execErr := r.db.ExecContext(ctx, deleteUserByID, id)
	if execErr != nil {
		log.Err(execErr).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to execute delete statement")
		r.db.logTransient(execErr)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("user not found")
		return ErrUserNotFound
	}

	return nil
}

// ExistsByEmail reports whether a user with the given email is present.
// The service layer lowercases emails before storage and lookup, so an exact
// comparison suffices on both backends.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, userExistsByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("failed to execute exists query")
		r.db.logTransient(err)
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("failed to scan exists result")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return exists, nil
}
