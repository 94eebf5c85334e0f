package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/models"
)

// maxRequestBodySize caps JSON request bodies read by DecodeJSON.
const maxRequestBodySize = 1 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

// WriteMessage writes the {"message": message} body used by the API for
// both successful acknowledgements and error responses.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// DecodeJSON decodes a single JSON document from the request body into dst.
// Bodies larger than 1 MiB and trailing data after the document are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("error decoding request body: unexpected data after JSON document")
	}
	return nil
}
