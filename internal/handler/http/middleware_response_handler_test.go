// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// ─── WriteHeader ─────────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "200 OK", statusCode: http.StatusOK},
		{name: "201 Created", statusCode: http.StatusCreated},
		{name: "400 Bad Request", statusCode: http.StatusBadRequest},
		{name: "401 Unauthorized", statusCode: http.StatusUnauthorized},
		{name: "404 Not Found", statusCode: http.StatusNotFound},
		{name: "500 Internal Server Error", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			w.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, w.status)
			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.statusCode, rr.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_OnlyFirstCallWins(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

// ─── Write ───────────────────────────────────────────────────────────────────

func TestResponseWriter_Write_ImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "hello", rr.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("defgh"))

	assert.Equal(t, 8, w.size)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, "abcdefgh", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())

	// ResponseController reaches the recorder's Flush through Unwrap
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
