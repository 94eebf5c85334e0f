// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// statsListSize caps every task list of the dashboard summary.
const statsListSize = 3

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

// NewTaskService returns the TaskService backed by taskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListTasks returns the tasks of ownerID matching filter.
func (s *taskService) ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, error) {
	if ownerID == "" {
		return nil, ErrInvalidDataProvided
	}

	filter.Search = strings.TrimSpace(filter.Search)
	return s.taskRepository.ListTasks(ctx, ownerID, filter)
}

// CreateTask stores a new task for ownerID. Empty status and priority
// default to Todo and Medium.
func (s *taskService) CreateTask(ctx context.Context, ownerID string, req models.CreateTaskRequest) (models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if ownerID == "" || title == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	task := models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return created, nil
}

// UpdateTask writes the non-nil fields of update and re-reads the task.
// A task of another owner, or an id that is not a UUID, is reported as
// store.ErrTaskNotFound.
func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error) {
	if ownerID == "" || taskID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}
	if !utils.IsCanonicalUUID(taskID) {
		logger.FromContext(ctx).Debug().Str("func", "*taskService.UpdateTask").Str("task_id", taskID).Msg("malformed task id")
		return models.Task{}, store.ErrTaskNotFound
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.Task{}, ErrInvalidDataProvided
		}
		update.Title = &title
	}

	if _, err := s.taskRepository.UpdateTask(ctx, ownerID, taskID, update); err != nil {
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	updated, err := s.taskRepository.GetTask(ctx, ownerID, taskID)
	if err != nil {
		// deleted between the update and the read
		return models.Task{}, fmt.Errorf("reading updated task failed: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a task of ownerID. Like UpdateTask it answers
// store.ErrTaskNotFound for an id that could never exist.
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID string) (models.DeleteResult, error) {
	if ownerID == "" || taskID == "" {
		return models.DeleteResult{}, ErrInvalidDataProvided
	}
	if !utils.IsCanonicalUUID(taskID) {
		logger.FromContext(ctx).Debug().Str("func", "*taskService.DeleteTask").Str("task_id", taskID).Msg("malformed task id")
		return models.DeleteResult{}, store.ErrTaskNotFound
	}

	deleted, err := s.taskRepository.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("task deletion failed: %w", err)
	}

	return models.DeleteResult{DeletedCount: deleted}, nil
}

// GetStats computes the dashboard summary from every task of ownerID in
// creation order.
func (s *taskService) GetStats(ctx context.Context, ownerID string) (models.TaskStats, error) {
	tasks, err := s.ListTasks(ctx, ownerID, models.TaskFilter{})
	if err != nil {
		return models.TaskStats{}, fmt.Errorf("listing tasks for stats failed: %w", err)
	}

	return computeStats(tasks), nil
}

// computeStats expects tasks ordered oldest first.
func computeStats(tasks []models.Task) models.TaskStats {
	stats := models.TaskStats{
		Total:             len(tasks),
		PendingTasks:      make([]models.Task, 0, statsListSize),
		HighPriorityTasks: make([]models.Task, 0, statsListSize),
		CompletedTasks:    make([]models.Task, 0, statsListSize),
	}

	for _, task := range tasks {
		if task.IsCompleted() {
			stats.Completed++
			continue
		}

		if len(stats.PendingTasks) < statsListSize {
			stats.PendingTasks = append(stats.PendingTasks, task)
		}
		if task.Priority == models.TaskPriorityHigh && len(stats.HighPriorityTasks) < statsListSize {
			stats.HighPriorityTasks = append(stats.HighPriorityTasks, task)
		}
	}

	// newest completed first
	for i := len(tasks) - 1; i >= 0 && len(stats.CompletedTasks) < statsListSize; i-- {
		if tasks[i].IsCompleted() {
			stats.CompletedTasks = append(stats.CompletedTasks, tasks[i])
		}
	}

	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	return stats
}
