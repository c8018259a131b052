package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for request tracing.
// It prefers UUIDv7 because the embedded timestamp keeps identifiers
// sortable by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to UUIDv4 when the
// system entropy source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
