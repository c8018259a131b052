// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Name:  "Charlie",
		Email: "charlie@example.com",
		Age:   intPtr(30),
	}
}

func requireMessages(t *testing.T, err error, want ...string) {
	t.Helper()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, want, vErr.Messages)
}

// ---------------------------------------------------------------------------
// TestNewUserValidator
// ---------------------------------------------------------------------------

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("CreateUserRequest value", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("CreateUserRequest pointer", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("UpdateUserRequest value", func(t *testing.T) {
		r := models.UpdateUserRequest{Name: strPtr("Charlie")}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("UpdateUserRequest pointer", func(t *testing.T) {
		r := models.UpdateUserRequest{Name: strPtr("Charlie")}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("LoginRequest value", func(t *testing.T) {
		r := models.LoginRequest{Email: "alice@example.com", Password: "secret"}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		r := models.LoginRequest{Email: "alice@example.com", Password: "secret"}
		require.NoError(t, v.Validate(ctx, &r))
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreateUser
// ---------------------------------------------------------------------------

func TestValidateCreateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateRequest()))
	})

	t.Run("missing name", func(t *testing.T) {
		r := validCreateRequest()
		r.Name = ""
		requireMessages(t, v.Validate(ctx, r), MsgNameRequired)
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		r := validCreateRequest()
		r.Name = "   "
		requireMessages(t, v.Validate(ctx, r), MsgNameRequired)
	})

	t.Run("name too short", func(t *testing.T) {
		r := validCreateRequest()
		r.Name = "A"
		requireMessages(t, v.Validate(ctx, r), MsgNameLength)
	})

	t.Run("name too long", func(t *testing.T) {
		r := validCreateRequest()
		r.Name = strings.Repeat("x", 101)
		requireMessages(t, v.Validate(ctx, r), MsgNameLength)
	})

	t.Run("name length bounds are inclusive", func(t *testing.T) {
		r := validCreateRequest()

		r.Name = "Al"
		require.NoError(t, v.Validate(ctx, r))

		r.Name = strings.Repeat("x", 100)
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("multi-byte name is counted in runes", func(t *testing.T) {
		r := validCreateRequest()
		r.Name = "山田"
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("missing email", func(t *testing.T) {
		r := validCreateRequest()
		r.Email = ""
		requireMessages(t, v.Validate(ctx, r), MsgEmailRequired)
	})

	t.Run("malformed email", func(t *testing.T) {
		r := validCreateRequest()
		r.Email = "not-an-email"
		requireMessages(t, v.Validate(ctx, r), MsgEmailInvalid)
	})

	t.Run("email too long", func(t *testing.T) {
		r := validCreateRequest()
		r.Email = strings.Repeat("a", 195) + "@example.com"
		requireMessages(t, v.Validate(ctx, r), MsgEmailTooLong)
	})

	t.Run("email at max length is accepted", func(t *testing.T) {
		r := validCreateRequest()
		r.Email = strings.Repeat("a", 188) + "@example.com" // exactly 200 runes
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("email both malformed and too long", func(t *testing.T) {
		r := validCreateRequest()
		r.Email = strings.Repeat("a", 201)
		requireMessages(t, v.Validate(ctx, r), MsgEmailInvalid, MsgEmailTooLong)
	})

	t.Run("missing age", func(t *testing.T) {
		r := validCreateRequest()
		r.Age = nil
		requireMessages(t, v.Validate(ctx, r), MsgAgeRequired)
	})

	t.Run("negative age", func(t *testing.T) {
		r := validCreateRequest()
		r.Age = intPtr(-1)
		requireMessages(t, v.Validate(ctx, r), MsgAgeOutOfRange)
	})

	t.Run("age above maximum", func(t *testing.T) {
		r := validCreateRequest()
		r.Age = intPtr(151)
		requireMessages(t, v.Validate(ctx, r), MsgAgeOutOfRange)
	})

	t.Run("age bounds are inclusive", func(t *testing.T) {
		r := validCreateRequest()

		r.Age = intPtr(0)
		require.NoError(t, v.Validate(ctx, r))

		r.Age = intPtr(150)
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("all fields invalid reports everything in field order", func(t *testing.T) {
		r := models.CreateUserRequest{Name: "", Email: "bad", Age: intPtr(-5)}
		requireMessages(t, v.Validate(ctx, r),
			MsgNameRequired,
			MsgEmailInvalid,
			MsgAgeOutOfRange,
		)
	})

	t.Run("field scoping restricts checks", func(t *testing.T) {
		r := models.CreateUserRequest{Name: "Charlie", Email: "bad", Age: nil}
		require.NoError(t, v.Validate(ctx, r, FieldName))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := validCreateRequest()
		require.ErrorIs(t, v.Validate(ctx, r, "no-such-field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateUpdateUser
// ---------------------------------------------------------------------------

func TestValidateUpdateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("empty update is valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateUserRequest{}))
	})

	t.Run("blank name counts as not supplied", func(t *testing.T) {
		r := models.UpdateUserRequest{Name: strPtr("")}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("whitespace-only name counts as not supplied", func(t *testing.T) {
		r := models.UpdateUserRequest{Name: strPtr("   ")}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("supplied name must satisfy length bounds", func(t *testing.T) {
		r := models.UpdateUserRequest{Name: strPtr("A")}
		requireMessages(t, v.Validate(ctx, r), MsgNameLength)
	})

	t.Run("supplied email must be well-formed", func(t *testing.T) {
		r := models.UpdateUserRequest{Email: strPtr("nope")}
		requireMessages(t, v.Validate(ctx, r), MsgEmailInvalid)
	})

	t.Run("supplied empty email is malformed, not missing", func(t *testing.T) {
		r := models.UpdateUserRequest{Email: strPtr("")}
		requireMessages(t, v.Validate(ctx, r), MsgEmailInvalid)
	})

	t.Run("supplied age must be in range", func(t *testing.T) {
		r := models.UpdateUserRequest{Age: intPtr(200)}
		requireMessages(t, v.Validate(ctx, r), MsgAgeOutOfRange)
	})

	t.Run("full valid update", func(t *testing.T) {
		r := models.UpdateUserRequest{
			Name:  strPtr("Charlotte"),
			Email: strPtr("charlotte@example.com"),
			Age:   intPtr(31),
		}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{}, "no-such-field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateLogin
// ---------------------------------------------------------------------------

func TestValidateLogin(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		r := models.LoginRequest{Email: "alice@example.com", Password: "secret"}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("missing email", func(t *testing.T) {
		r := models.LoginRequest{Password: "secret"}
		requireMessages(t, v.Validate(ctx, r), MsgEmailRequired)
	})

	t.Run("missing password", func(t *testing.T) {
		r := models.LoginRequest{Email: "alice@example.com"}
		requireMessages(t, v.Validate(ctx, r), MsgPasswordRequired)
	})

	t.Run("both missing reports everything in field order", func(t *testing.T) {
		requireMessages(t, v.Validate(ctx, models.LoginRequest{}),
			MsgEmailRequired,
			MsgPasswordRequired,
		)
	})
}

// ---------------------------------------------------------------------------
// TestValidationError_Error
// ---------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Messages: []string{MsgNameRequired, MsgAgeRequired}}

	require.Equal(t, "validation failed: name is required; age is required", err.Error())
}
