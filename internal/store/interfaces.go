package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserRepository is the persistence contract for user records.
//
// All methods expect values that have already been validated and normalized
// by the service layer (trimmed names, lowercase emails). Well-known failure
// conditions are reported via the sentinel errors in this package and should
// be matched with [errors.Is].
type UserRepository interface {
	// Create persists a new user and returns it with the database-assigned ID.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Get returns the user with the given ID or [ErrUserNotFound].
	Get(ctx context.Context, id int64) (models.User, error)

	// List returns all users ordered by ascending ID.
	List(ctx context.Context) ([]models.User, error)

	// Update applies the non-nil fields of update to the stored user and
	// returns the resulting record.
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// Delete removes the user with the given ID or returns [ErrUserNotFound].
	Delete(ctx context.Context, id int64) error

	// ExistsByEmail reports whether a user with the given normalized email
	// is present.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ErrorClassificator determines whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
