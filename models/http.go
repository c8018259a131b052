package models

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	// Email identifies the account. Matched case-insensitively
	// against stored users.
	Email string `json:"email"`

	// Password accompanies the email. Verification is delegated to the
	// configured credential verifier.
	Password string `json:"password"`
}

// CreateUserRequest is the payload accepted by the user creation endpoint.
type CreateUserRequest struct {
	// Name is the display name of the user to create. Required.
	Name string `json:"name"`

	// Email is the contact address of the user to create. Required,
	// unique across all users.
	Email string `json:"email"`

	// Age is the age of the user to create. Required; a pointer
	// distinguishes an omitted field from a legitimate zero value.
	Age *int `json:"age"`
}

// UpdateUserRequest is the payload accepted by the user update endpoint.
// All fields are optional; omitted fields keep their stored values.
type UpdateUserRequest struct {
	// Name replaces the stored display name when present.
	// A blank value counts as not supplied.
	Name *string `json:"name,omitempty"`

	// Email replaces the stored contact address when present.
	Email *string `json:"email,omitempty"`

	// Age replaces the stored age when present.
	Age *int `json:"age,omitempty"`
}

// TokenResponse is the body returned after a successful login.
type TokenResponse struct {
	// Token is the compact JWS serialization of the issued JWT.
	Token string `json:"token"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the envelope for errors described by a single message
// (authentication failures, missing records, conflicts, internal errors).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorsResponse is the envelope for input validation failures.
// Errors preserves the order in which the checks are performed.
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}

// VersionResponse is the body returned by the version endpoint, mirroring
// the build metadata stamped into the binary.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
