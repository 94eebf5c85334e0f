package models

import "time"

// User represents an account entity used for authentication and authorization.
// Users are created on registration and never modified afterwards.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque, stable identifier of the user (UUIDv7 string).
	UserID string `json:"userId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal is the authenticated identity attached to a request by the
// auth middleware. It is immutable and passed explicitly to protected
// handlers.
type Principal struct {
	// UserID is the identifier of the authenticated user.
	UserID string

	// Token is the raw credential the request was authenticated with.
	Token string

	// ExpiresAt is the expiry instant of Token.
	ExpiresAt time.Time
}
