package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// ValidationError wraps validator.ValidationErrors with user-friendly,
// per-field messages.
type ValidationError struct {
	Errors validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s' %s", err.Field(), msgForTag(err)))
	}
	return strings.Join(msgs, "; ")
}

// Is reports ErrInvalidInput as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fields returns a map of field names to error messages.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, err := range e.Errors {
		fields[err.Field()] = msgForTag(err)
	}
	return fields
}

// Issues returns the failures in struct field order, ready to be sent to
// the client.
func (e *ValidationError) Issues() []models.ValidationIssue {
	issues := make([]models.ValidationIssue, 0, len(e.Errors))
	for _, err := range e.Errors {
		issues = append(issues, models.ValidationIssue{
			Field:   err.Field(),
			Message: msgForTag(err),
		})
	}
	return issues
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case tagTaskStatus:
		return "must be one of: " + joinValues(taskStatuses)
	case tagTaskPriority:
		return "must be one of: " + joinValues(taskPriorities)
	case tagTaskStatusFilter:
		return "must be one of: " + joinValues(append([]string{models.FilterAll, models.FilterStatusPending}, taskStatuses...))
	case tagTaskPriorityFilter:
		return "must be one of: " + joinValues(append([]string{models.FilterAll}, taskPriorities...))
	case tagBcryptLen:
		return fmt.Sprintf("must be at most %d bytes", utils.MaxPasswordBytes)
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
