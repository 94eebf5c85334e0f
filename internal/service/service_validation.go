package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthValidationService checks request shapes before they reach the wrapped
// AuthService. Failures are *validators.ValidationError values.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during registration data validation: %w", err)
	}

	return v.AuthService.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during login data validation: %w", err)
	}

	return v.AuthService.Login(ctx, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// TaskValidationService checks task payloads and list filters before they
// reach the wrapped TaskService.
type TaskValidationService struct {
	TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("error during task filter validation: %w", err)
	}

	return v.TaskService.ListTasks(ctx, ownerID, filter)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, ownerID string, req models.CreateTaskRequest) (models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}

	return v.TaskService.CreateTask(ctx, ownerID, req)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error) {
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		update.Title = &title
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Task{}, fmt.Errorf("error during task update validation: %w", err)
	}

	return v.TaskService.UpdateTask(ctx, ownerID, taskID, update)
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.TaskService = inner
	return v
}
