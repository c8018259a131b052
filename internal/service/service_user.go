package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
)

// userService is the concrete implementation of UserService.
// It validates and normalizes incoming request models before delegating
// persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Create registers a new user from the raw API request.
//
// The request is validated first; any rule violations are returned as a
// [*validators.ValidationError] listing every problem. On success the name is
// trimmed and the email lowercased before the record is persisted, so storage
// and uniqueness checks always see canonical values.
//
// An existence pre-check turns the common duplicate-email case into
// [store.ErrEmailAlreadyExists] without hitting the unique constraint; the
// constraint still backstops concurrent creations.
func (u *userService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	user := models.User{
		Name:  strings.TrimSpace(request.Name),
		Email: normalizeEmail(request.Email),
		Age:   *request.Age,
	}

	exists, err := u.userRepository.ExistsByEmail(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("email existence check failed")
		return models.User{}, fmt.Errorf("email existence check failed: %w", err)
	}
	if exists {
		log.Warn().Str("email", user.Email).Msg("email already taken")
		return models.User{}, store.ErrEmailAlreadyExists
	}

	createdUser, err := u.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Get returns the user with the given ID.
func (u *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.Get(ctx, id)
}

// List returns all users ordered by ascending ID.
func (u *userService) List(ctx context.Context) ([]models.User, error) {
	return u.userRepository.List(ctx)
}

// Update applies a partial update to an existing user.
//
// The request is validated first. Supplied fields are then normalized the
// same way Create normalizes them; a name that is blank once trimmed counts
// as not supplied and leaves the stored name unchanged. There is no
// duplicate-email pre-check here: a user resubmitting their own email must
// not conflict with themselves, so the unique constraint alone decides.
func (u *userService) Update(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}

	update := models.UserUpdate{Age: request.Age}

	if request.Name != nil {
		if trimmed := strings.TrimSpace(*request.Name); trimmed != "" {
			update.Name = &trimmed
		}
	}

	if request.Email != nil {
		normalized := normalizeEmail(*request.Email)
		update.Email = &normalized
	}

	updatedUser, err := u.userRepository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Delete removes the user with the given ID.
func (u *userService) Delete(ctx context.Context, id int64) error {
	return u.userRepository.Delete(ctx, id)
}

// normalizeEmail produces the canonical form stored and compared everywhere:
// surrounding whitespace removed and all characters lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
