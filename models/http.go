package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,bcrypt_len"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateTaskRequest is the body of POST /content/content.
// Empty status and priority fall back to Todo and Medium.
type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description" validate:"max=2000"`
	Status      TaskStatus   `json:"status" validate:"omitempty,task_status"`
	Priority    TaskPriority `json:"priority" validate:"omitempty,task_priority"`
}

// MessageResponse is the generic {message} body used by most endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationIssue describes a single field that failed validation.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when request validation fails.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Issues []ValidationIssue `json:"issues"`
}

// TaskListResponse is the body of GET /content/content.
type TaskListResponse struct {
	Content []Task `json:"content"`
	Message string `json:"message"`
}

// TaskCreatedResponse is the body of POST /content/content.
type TaskCreatedResponse struct {
	NewContent Task   `json:"newContent"`
	Message    string `json:"message"`
}

// TaskUpdatedResponse is the body of PUT /content/content/{id}.
type TaskUpdatedResponse struct {
	UpdatedContent Task   `json:"updatedContent"`
	Message        string `json:"message"`
}

// TaskDeletedResponse is the body of DELETE /content/content/{id}.
type TaskDeletedResponse struct {
	DeletedContent DeleteResult `json:"deletedContent"`
	Message        string       `json:"message"`
}

// TaskStatsResponse is the body of GET /content/stats.
type TaskStatsResponse struct {
	Stats   TaskStats `json:"stats"`
	Message string    `json:"message"`
}
