package utils

import "github.com/google/uuid"

// IDGenerator produces opaque, globally unique record identifiers.
// Identifiers are generated client-side at record creation time and are
// never reused after deletion.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock source misbehaves.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
