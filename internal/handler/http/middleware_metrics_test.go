package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h := &Handler{metrics: newHTTPMetrics(), logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Delete("/content/content/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/content/content/"+id, nil))
	}

	counter := h.metrics.requestsTotal.With(prometheus.Labels{
		"method": http.MethodDelete,
		"path":   "/content/content/{id}",
		"status": "404",
	})
	assert.Equal(t, 3.0, testutil.ToFloat64(counter))
	assert.Equal(t, 1, testutil.CollectAndCount(h.metrics.requestsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.requestsInFlight))
}

func TestWithMetrics_UnknownRoute(t *testing.T) {
	h := &Handler{metrics: newHTTPMetrics(), logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withMetrics(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	counter := h.metrics.requestsTotal.With(prometheus.Labels{
		"method": http.MethodGet,
		"path":   "unknown",
		"status": "200",
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))
}

func TestHTTPMetrics_PrivateRegistries(t *testing.T) {
	// two handlers in one process must not collide on registration
	require.NotPanics(t, func() {
		_ = newHTTPMetrics()
		_ = newHTTPMetrics()
	})
}
