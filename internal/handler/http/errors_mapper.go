package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by
// errors.Is decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrNoFieldsToUpdate, errorResponse{http.StatusBadRequest, app.MsgNoFieldsToUpdate}},
	{validators.ErrUnsupportedType, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrTokenRevoked, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyExists}},
	{store.ErrTaskNotFound, errorResponse{http.StatusNotFound, app.MsgContentNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status and message mapped from err. Field
// validation failures get the {error, issues} body. Unmapped errors are
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		_, _ = utils.WriteJSON(w, models.ValidationErrorResponse{
			Error:  app.MsgValidationFailed,
			Issues: vErr.Issues(),
		}, http.StatusBadRequest)
		return
	}

	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", resp.status).Send()
	}

	utils.WriteMessage(w, resp.message, resp.status)
}
