package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
