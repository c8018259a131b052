package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError aggregates every rule violation found in a single request.
// Messages are ordered by field (name, email, age, password) and phrased for
// direct inclusion in an API error response.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface by joining all messages into a single
// line.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
