package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users and tasks.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// IsCanonicalUUID reports whether s is a UUID in the hyphenated 36-character
// form. Braced, URN and unhyphenated spellings are rejected.
func IsCanonicalUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
