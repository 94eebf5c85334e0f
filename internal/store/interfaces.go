// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt
	// assigned. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered with email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository persists tasks. Every method is scoped by the owner id:
// a task belonging to another user behaves exactly like a missing one.
type TaskRepository interface {
	// ListTasks returns the owner's tasks narrowed and ordered by filter.
	ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, error)

	// GetTask returns a single task or [ErrTaskNotFound].
	GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error)

	// CreateTask inserts task for its UserID, assigning ID, CreatedAt and
	// UpdatedAt.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// UpdateTask writes the non-nil fields of update and returns the number
	// of rows changed; zero rows yields [ErrTaskNotFound].
	UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (int64, error)

	// DeleteTask removes the task and returns the number of rows deleted;
	// zero rows yields [ErrTaskNotFound].
	DeleteTask(ctx context.Context, ownerID, taskID string) (int64, error)
}

// RevocationList holds session tokens invalidated before their expiry.
// Implementations must be safe for concurrent use.
type RevocationList interface {
	// Revoke adds token to the list until expiresAt. Revoking a token twice
	// is not an error.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	// IsRevoked reports whether token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports a unique constraint failure.
	IsUniqueViolation(err error) bool
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
