package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

// taskColumns is the column list every task SELECT scans, in scan order.
var taskColumns = []string{
	"task_id",
	"user_id",
	"title",
	"description",
	"status",
	"priority",
	"created_at",
	"updated_at",
}

// priorityRank orders High before Medium before Low.
const priorityRank = "CASE priority WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 ELSE 2 END"

// searchCondition matches the pattern against title or description,
// case-insensitively on every dialect.
const searchCondition = `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`

// buildListTasksQuery narrows the owner's tasks by filter. The owner
// condition is always present.
func buildListTasksQuery(builder sq.StatementBuilderType, ownerID string, filter models.TaskFilter) sq.SelectBuilder {
	query := builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": ownerID})

	switch filter.Status {
	case "", models.FilterAll:
	case models.FilterStatusPending:
		query = query.Where(sq.NotEq{"status": string(models.TaskStatusCompleted)})
	default:
		query = query.Where(sq.Eq{"status": filter.Status})
	}

	switch filter.Priority {
	case "", models.FilterAll:
	default:
		query = query.Where(sq.Eq{"priority": filter.Priority})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(sq.Expr(searchCondition, pattern, pattern))
	}

	switch filter.Sort {
	case models.TaskSortNewest:
		query = query.OrderBy("created_at DESC", "task_id DESC")
	case models.TaskSortTitle:
		query = query.OrderBy("LOWER(title) ASC", "created_at ASC", "task_id ASC")
	case models.TaskSortPriority:
		query = query.OrderBy(priorityRank, "created_at ASC", "task_id ASC")
	default:
		query = query.OrderBy("created_at ASC", "task_id ASC")
	}

	return query
}

// buildUpdateTaskQuery sets the non-nil fields of update plus updated_at on
// the task identified by (taskID, ownerID).
func buildUpdateTaskQuery(builder sq.StatementBuilderType, ownerID, taskID string, update models.TaskUpdate, updatedAt any) sq.UpdateBuilder {
	query := builder.Update(models.Task{}.TableName())

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}
	if update.Priority != nil {
		query = query.Set("priority", string(*update.Priority))
	}

	return query.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"task_id": taskID, "user_id": ownerID})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
