package models

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Supported task statuses.
const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// IsValid reports whether s is one of the supported statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority is the importance level of a task.
type TaskPriority string

// Supported task priorities.
const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// IsValid reports whether p is one of the supported priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task is a single to-do item owned by exactly one user.
//
// JSON field names follow the contract the web client already consumes
// ("_id", camelCase timestamps).
type Task struct {
	// ID is the unique identifier of the task (UUIDv7 string).
	ID string `json:"_id"`

	// Title is a short, required summary of the task.
	Title string `json:"title"`

	// Description is an optional free-form text.
	Description string `json:"description"`

	// Status is the lifecycle state of the task.
	Status TaskStatus `json:"status"`

	// Priority is the importance level of the task.
	Priority TaskPriority `json:"priority"`

	// UserID is the identifier of the owning user. Every read and write
	// against the task store is scoped by this value.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// IsCompleted reports whether the task is in the Completed state.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// TaskUpdate describes a partial update of a task.
// Only non-nil fields are written.
type TaskUpdate struct {
	Title       *string       `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *TaskStatus   `json:"status,omitempty" validate:"omitempty,task_status"`
	Priority    *TaskPriority `json:"priority,omitempty" validate:"omitempty,task_priority"`
}

// IsEmpty reports whether the update carries no fields.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil
}

// TaskSort is the ordering applied to a task listing.
type TaskSort string

// Supported orderings.
const (
	TaskSortOldest   TaskSort = "oldest"
	TaskSortNewest   TaskSort = "newest"
	TaskSortTitle    TaskSort = "title"
	TaskSortPriority TaskSort = "priority"
)

// Filter values that disable status / priority filtering, and the pseudo
// status that selects every task which is not completed.
const (
	FilterAll           = "All"
	FilterStatusPending = "Pending"
)

// TaskFilter narrows and orders the tasks returned for a single owner.
// The zero value lists everything in creation order.
type TaskFilter struct {
	// Status is a [TaskStatus], "Pending" or "All"/empty.
	Status string `validate:"omitempty,task_status_filter"`

	// Priority is a [TaskPriority] or "All"/empty.
	Priority string `validate:"omitempty,task_priority_filter"`

	// Search is matched case-insensitively against title and description.
	Search string `validate:"max=200"`

	// Sort selects the ordering; empty means oldest first.
	Sort TaskSort `validate:"omitempty,oneof=oldest newest title priority"`
}

// DeleteResult reports how many tasks a delete operation removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// TaskStats is the dashboard summary computed from a user's tasks.
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`

	// PendingTasks holds up to three not-yet-completed tasks, oldest first.
	PendingTasks []Task `json:"pendingTasks"`

	// HighPriorityTasks holds up to three not-yet-completed High tasks.
	HighPriorityTasks []Task `json:"highPriorityTasks"`

	// CompletedTasks holds up to three completed tasks, newest first.
	CompletedTasks []Task `json:"completedTasks"`
}
