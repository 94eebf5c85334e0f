package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUserIDClaim is returned when a structurally valid token carries an
// empty "id" claim.
var ErrEmptyUserIDClaim = errors.New("empty id claim")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token carries the custom "id" claim plus the registered claims
// IssuedAt (iat) = now and ExpiresAt (exp) = now + tokenDuration.
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("0190...", 30*time.Minute, "secret", time.Now())
func GenerateJWTToken(userID string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	expiresAt := now.Add(tokenDuration)
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - algorithm pinned to HS256, so tokens signed with any other method
//     (including "none" and asymmetric algorithms) are rejected;
//   - signature verification using signKey;
//   - presence and validity of the exp claim, evaluated against now;
//   - a non-empty "id" claim.
//
// A token is accepted strictly before its expiry instant; exp has second
// precision.
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptyUserIDClaim
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.UserID,
		ExpiresAt:    claims.ExpiresAt.Time.UTC(),
	}, nil
}
