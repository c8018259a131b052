package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldEmail targets the email address of a user.
	FieldEmail = "email"

	// FieldAge targets the age of a user.
	FieldAge = "age"

	// FieldPassword targets the password of a login request.
	FieldPassword = "password"
)

// Bounds enforced on user fields. Lengths are counted in runes so multi-byte
// names are measured the way a person reads them.
const (
	NameMinLength  = 2
	NameMaxLength  = 100
	EmailMaxLength = 200
	AgeMin         = 0
	AgeMax         = 150
)

// Validation messages returned to API clients. Each maps to exactly one rule
// so responses stay predictable for automated consumers.
const (
	MsgNameRequired     = "name is required"
	MsgNameLength       = "name must be between 2 and 100 characters"
	MsgEmailRequired    = "email is required"
	MsgEmailInvalid     = "email must be a valid email address"
	MsgEmailTooLong     = "email must be at most 200 characters"
	MsgAgeRequired      = "age is required"
	MsgAgeOutOfRange    = "age must be between 0 and 150"
	MsgPasswordRequired = "password is required"
)

// emailPattern accepts the common mailbox@domain.tld shape. It is not a full
// RFC 5322 grammar; addresses a person would consider unusual (quoted local
// parts, IP-literal domains) are rejected.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserValidator implements the Validator interface for all user-related
// request models: CreateUserRequest, UpdateUserRequest, and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateUserRequest / *models.CreateUserRequest
//   - models.UpdateUserRequest / *models.UpdateUserRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated. Rule violations are
// reported as a [*ValidationError] carrying one message per broken rule.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUser(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(ctx, value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateUser validates a CreateUserRequest where every field is
// mandatory.
//
// Default validated fields (when none specified): Name, Email, Age.
//
// Violations are accumulated across all requested fields so the response
// lists every problem at once, ordered name, email, age.
func (v *UserValidator) validateCreateUser(_ context.Context, request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAge}
	}

	messages := make([]string, 0, len(fields))

	for _, f := range fields {
		switch f {
		case FieldName:
			messages = append(messages, checkName(request.Name)...)
		case FieldEmail:
			messages = append(messages, checkRequiredEmail(request.Email)...)
		case FieldAge:
			if request.Age == nil {
				messages = append(messages, MsgAgeRequired)
			} else {
				messages = append(messages, checkAgeRange(*request.Age)...)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// validateUpdateUser validates an UpdateUserRequest where every field is
// optional. Only supplied (non-nil) fields are checked.
//
// A name that is absent, or blank once trimmed, counts as not supplied and
// produces no violation: partial updates may legitimately leave the name
// untouched. A supplied email or age must satisfy the same rules as on
// creation.
//
// Default validated fields (when none specified): Name, Email, Age.
func (v *UserValidator) validateUpdateUser(_ context.Context, request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAge}
	}

	messages := make([]string, 0, len(fields))

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name != nil && strings.TrimSpace(*request.Name) != "" {
				messages = append(messages, checkName(*request.Name)...)
			}
		case FieldEmail:
			if request.Email != nil {
				messages = append(messages, checkEmailValue(*request.Email)...)
			}
		case FieldAge:
			if request.Age != nil {
				messages = append(messages, checkAgeRange(*request.Age)...)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// validateLogin validates a LoginRequest. Both credentials must be present;
// whether they match an account is decided later by the auth service, not
// here.
//
// Default validated fields (when none specified): Email, Password.
func (v *UserValidator) validateLogin(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	messages := make([]string, 0, len(fields))

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				messages = append(messages, MsgEmailRequired)
			}
		case FieldPassword:
			if request.Password == "" {
				messages = append(messages, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// checkName verifies that a name is present and within length bounds after
// trimming surrounding whitespace.
func checkName(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{MsgNameRequired}
	}

	if n := utf8.RuneCountInString(trimmed); n < NameMinLength || n > NameMaxLength {
		return []string{MsgNameLength}
	}

	return nil
}

// checkRequiredEmail verifies presence first, then delegates the shape checks
// to checkEmailValue.
func checkRequiredEmail(email string) []string {
	if strings.TrimSpace(email) == "" {
		return []string{MsgEmailRequired}
	}

	return checkEmailValue(email)
}

// checkEmailValue verifies the syntactic shape and length of an email that is
// known to be supplied. Both rules are reported when both are broken.
func checkEmailValue(email string) []string {
	trimmed := strings.TrimSpace(email)

	var messages []string
	if !emailPattern.MatchString(trimmed) {
		messages = append(messages, MsgEmailInvalid)
	}

	if utf8.RuneCountInString(trimmed) > EmailMaxLength {
		messages = append(messages, MsgEmailTooLong)
	}

	return messages
}

// checkAgeRange verifies that a supplied age falls inside the accepted range.
func checkAgeRange(age int) []string {
	if age < AgeMin || age > AgeMax {
		return []string{MsgAgeOutOfRange}
	}

	return nil
}
