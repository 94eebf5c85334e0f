package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices builds the services over storages. Auth and task services are
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, storages.RevocationList, cfg.App, logger)
	taskService := NewTaskService(storages.TaskRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		TaskService:    NewTaskValidationService().Wrap(taskService),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
