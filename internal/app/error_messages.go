// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into API response bodies.
//
// The HTTP handlers and the CLI client both refer to them, so the wording
// seen by users stays the same on both sides of the wire.
package app

// Error messages.
const (
	// MsgInternalServerError is returned for any failure the client cannot
	// resolve. Details stay in the server log.
	MsgInternalServerError = "Internal server error"

	// MsgInvalidJSON is returned when the request body is not a single JSON
	// value of the expected shape.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationFailed is the "error" field of a validation response.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidDataProvided is returned when input fails a check made by the
	// services rather than the validators.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidCredentials is used for both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgUnauthorized is returned by the auth gate.
	MsgUnauthorized = "Unauthorized"

	MsgEmailAlreadyExists = "Email already exists"
	MsgContentNotFound    = "Content not found"
	MsgNoFieldsToUpdate   = "At least one field must be provided for update"
	MsgNotFound           = "Not found"
	MsgInvalidGzipData    = "Invalid gzip data"
)

// Success messages.
const (
	MsgSignedUp       = "User signed up successfully"
	MsgSignedIn       = "User signed in successfully"
	MsgSignedOut      = "User signed out successfully"
	MsgContentFetched = "Content fetched successfully"
	MsgContentAdded   = "Content added successfully"
	MsgContentUpdated = "Content updated successfully"
	MsgContentDeleted = "Content deleted successfully"
	MsgStatsFetched   = "Stats fetched successfully"
)
