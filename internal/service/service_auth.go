package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies login requests against known accounts and handles the JWT
// lifecycle using a UserRepository for lookups and HMAC-SHA256 for signing.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// credentials decides whether a password is accepted for a known email.
	credentials CredentialVerifier

	// validator checks login requests for missing fields.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT.
	// Tokens whose audience does not match this value are rejected during parsing.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and CredentialVerifier, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, credentials CredentialVerifier, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenAudience:  cfg.TokenAudience,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates the request and issues a signed JWT on success.
//
// The flow:
//  1. Validate that email and password are present; violations come back as
//     a [*validators.ValidationError].
//  2. Normalize the email and confirm an account with it exists. Unknown
//     emails yield ErrInvalidCredentials without revealing whether the
//     account is real.
//  3. Delegate the password decision to the CredentialVerifier.
//  4. Generate a token carrying the email as subject and the user role.
//
// Returns the signed token model or:
//   - A validation error when fields are missing.
//   - ErrInvalidCredentials when the email is unknown or the password is
//     rejected.
//   - ErrTokenCreationFailed (wrapped) when signing fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("error during login validation: %w", err)
	}

	email := normalizeEmail(request.Email)

	exists, err := a.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account lookup failed")
		return models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if !exists {
		log.Warn().Str("email", email).Msg("login attempt for unknown email")
		return models.Token{}, ErrInvalidCredentials
	}

	accepted, err := a.credentials.Verify(ctx, email, request.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("credential verification failed")
		return models.Token{}, fmt.Errorf("credential verification failed: %w", err)
	}
	if !accepted {
		log.Warn().Str("email", email).Msg("password rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, email, models.RoleUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", email).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, audience, and expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
