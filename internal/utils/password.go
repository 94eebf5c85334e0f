package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when no cost is configured.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest password bcrypt hashes. Longer input is
// refused by HashPassword and never matches in CheckPassword.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned by CheckPassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password using the given cost.
// bcrypt generates a fresh random salt for every call, so hashing the same
// password twice yields different strings.
//
// Costs outside bcrypt's supported range fall back to [DefaultBcryptCost].
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares password against a bcrypt hash.
//
// Returns nil on match, [ErrPasswordMismatch] on mismatch and a wrapped
// error when the stored hash is malformed. A password over
// [MaxPasswordBytes] is a mismatch: bcrypt would compare only its prefix.
func CheckPassword(hash, password string) error {
	if len(password) > MaxPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
