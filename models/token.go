package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload of a session token.
//
// Besides the registered iat/exp claims it carries a single custom claim,
// "id", holding the identifier of the user the token was issued for.
type TokenClaims struct {
	// UserID is the subject of the token.
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a session JWT with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "id" claim.
	UserID string `json:"-"`

	// ExpiresAt is the absolute expiry of the token.
	ExpiresAt time.Time `json:"-"`
}

// ParsedClaims returns the typed claims of the token, or an error when the token
// was not produced by this package.
func (t *Token) ParsedClaims() (*TokenClaims, error) {
	if t.Token == nil {
		return nil, errors.New("token is not parsed")
	}

	claims, ok := t.Token.Claims.(*TokenClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	return claims, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
