package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// errorBody covers both error shapes of the API: {message} and
// {error, issues}.
type errorBody struct {
	Message string                   `json:"message"`
	Error   string                   `json:"error"`
	Issues  []models.ValidationIssue `json:"issues"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	raw := strings.TrimSpace(string(resp.Body()))

	var (
		message string
		issues  []models.ValidationIssue
	)

	var body errorBody
	if err := json.Unmarshal([]byte(raw), &body); err == nil {
		issues = body.Issues
		message = body.Message
		if message == "" {
			message = body.Error
		}
	} else {
		message = raw
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return NewResponseError(resp.StatusCode(), message, issues)
}
