package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. Every statement carries a user_id condition.
type taskRepository struct {
	*DB
	logger *logger.Logger
	ids    IDGenerator
	now    func() time.Time
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// ListTasks returns the tasks owned by ownerID that match filter. An owner
// without tasks gets an empty, non-nil slice.
func (t *taskRepository) ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(t.Builder(), ownerID, filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tasks []models.Task
	err = t.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		tasks, queryErr = t.queryTasks(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Str("user_id", ownerID).
			Msg("failed to list tasks")
		return nil, err
	}

	return tasks, nil
}

// GetTask returns the task identified by (taskID, ownerID).
func (t *taskRepository) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.Builder().
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"task_id": taskID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("failed to create query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	err = t.withRetry(ctx, func(ctx context.Context) error {
		return scanTask(t.QueryRowContext(ctx, query, args...), &task)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetTask").
			Str("task_id", taskID).
			Msg("failed to get task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// CreateTask inserts task. Empty status and priority default to Todo and
// Medium.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	now := t.now().UTC()
	task.ID = t.ids.Generate()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}

	query, args, err := t.Builder().
		Insert(task.TableName()).
		Columns(taskColumns...).
		Values(task.ID, task.UserID, task.Title, task.Description,
			string(task.Status), string(task.Priority), task.CreatedAt, task.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to create query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = t.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := t.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// UpdateTask applies update to the task identified by (taskID, ownerID).
// Concurrent updates are not serialised: the last write wins.
func (t *taskRepository) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(t.Builder(), ownerID, taskID, update, t.now().UTC()).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.execAffecting(ctx, "*taskRepository.UpdateTask", taskID, query, args...)
}

// DeleteTask removes the task identified by (taskID, ownerID).
func (t *taskRepository) DeleteTask(ctx context.Context, ownerID, taskID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.Builder().
		Delete(models.Task{}.TableName()).
		Where(sq.Eq{"task_id": taskID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.execAffecting(ctx, "*taskRepository.DeleteTask", taskID, query, args...)
}

// execAffecting executes a single-row statement and maps zero affected rows
// to [ErrTaskNotFound].
func (t *taskRepository) execAffecting(ctx context.Context, funcName, taskID, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := t.withRetry(ctx, func(ctx context.Context) error {
		result, execErr := t.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("task_id", taskID).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return 0, ErrTaskNotFound
	}

	return affected, nil
}

func (t *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	return row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
}
