package service

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserService exposes the user management use cases to transport handlers.
// Inputs are raw API request models; validation and normalization happen
// inside the service, so handlers only translate errors into status codes.
type UserService interface {
	Create(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService issues and verifies the JWT tokens that guard mutating
// endpoints.
type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialVerifier decides whether a password is acceptable for the account
// with the given email. The email is only checked for existence before this
// is consulted, so implementations own the entire password policy.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}

// AppInfoService reports the build metadata stamped into the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
