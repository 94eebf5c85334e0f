package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Custom tags understood by the request models.
const (
	tagTaskStatus         = "task_status"
	tagTaskPriority       = "task_priority"
	tagTaskStatusFilter   = "task_status_filter"
	tagTaskPriorityFilter = "task_priority_filter"
	tagBcryptLen          = "bcrypt_len"
)

var (
	taskStatuses = []string{
		string(models.TaskStatusTodo),
		string(models.TaskStatusInProgress),
		string(models.TaskStatusCompleted),
	}
	taskPriorities = []string{
		string(models.TaskPriorityLow),
		string(models.TaskPriorityMedium),
		string(models.TaskPriorityHigh),
	}
)

// StructValidator validates request models by their `validate` tags.
// Field names in reports are taken from the `json` tag when present.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator with the task tags registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagTaskStatus, func(fl validator.FieldLevel) bool {
		return models.TaskStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation(tagTaskPriority, func(fl validator.FieldLevel) bool {
		return models.TaskPriority(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation(tagTaskStatusFilter, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == models.FilterAll || s == models.FilterStatusPending || models.TaskStatus(s).IsValid()
	})
	_ = v.RegisterValidation(tagTaskPriorityFilter, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == models.FilterAll || models.TaskPriority(s).IsValid()
	})
	_ = v.RegisterValidation(tagBcryptLen, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= utils.MaxPasswordBytes
	})

	return &StructValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given (Go struct
// field names, e.g. "Email"), only those fields are checked.
//
// A failed rule yields a *ValidationError. An empty [models.TaskUpdate]
// yields ErrNoFieldsToUpdate.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskUpdate:
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
	case *models.TaskUpdate:
		if value == nil || value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return &ValidationError{Errors: validationErrors}
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	return err
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}
