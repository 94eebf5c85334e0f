// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the TaskKeeper REST API.
//
// The primary abstraction is [TaskAPI], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPTaskAPI]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// carries the server's message verbatim and unwraps to one of the sentinel
// values in errors.go, so callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/task_api_mock.go -package=mock

// TaskAPI defines transport-agnostic communication with the TaskKeeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type TaskAPI interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the session token currently stored, or an empty string.
	Token() string

	// Register creates a new account. The server issues no token on
	// registration; call Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout revokes the stored token on the server and clears it locally.
	Logout(ctx context.Context) error

	// ListTasks returns the caller's tasks narrowed by filter.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// CreateTask creates a task owned by the caller.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// UpdateTask applies a partial update and returns the task as stored.
	// Returns [ErrNotFound] (wrapped) if the task does not exist or belongs
	// to another user.
	UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes a task. Returns [ErrNotFound] (wrapped) if the task
	// does not exist or belongs to another user.
	DeleteTask(ctx context.Context, taskID string) (models.DeleteResult, error)

	// Stats returns the dashboard summary of the caller's tasks.
	Stats(ctx context.Context) (models.TaskStats, error)

	// Version returns the server build version. No token is required.
	Version(ctx context.Context) (string, error)
}
