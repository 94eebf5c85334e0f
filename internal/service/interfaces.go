package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService manages accounts and session tokens.
type AuthService interface {
	// RegisterUser creates an account. A taken email yields
	// store.ErrEmailAlreadyExists.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login checks credentials. Unknown email and wrong password both yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token. Any failure yields
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate turns a raw token into a principal, rejecting revoked,
	// expired and forged tokens.
	Authenticate(ctx context.Context, tokenString string) (models.Principal, error)

	// Logout revokes the principal's token until it expires. Revoking an
	// already revoked token is not an error.
	Logout(ctx context.Context, principal models.Principal) error
}

// TaskService exposes the task operations of a single owner.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, error)
	CreateTask(ctx context.Context, ownerID string, req models.CreateTaskRequest) (models.Task, error)

	// UpdateTask applies update and returns the task as stored afterwards.
	UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (models.DeleteResult, error)

	// GetStats summarizes the owner's tasks for the dashboard.
	GetStats(ctx context.Context, ownerID string) (models.TaskStats, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// TaskServiceWrapper defines middleware composition for TaskService.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
