package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// Init builds the router. API routes live under cfg.BasePath, while
// /metrics, /version and the liveness line stay at the root.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	router.Use(withCORS(h.cfg.AllowedOrigins))

	router.Handle("/metrics", h.metrics.handler())
	router.Get("/", h.liveness)
	router.Get("/version", h.getServerVersion)

	api := func(r chi.Router) {
		r.Use(withGZip)
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", principalHandlerFunc(h.logout))

			r.Get("/content/content", principalHandlerFunc(h.listTasks))
			r.Post("/content/content", principalHandlerFunc(h.createTask))
			r.Put("/content/content/{id}", principalHandlerFunc(h.updateTask))
			r.Delete("/content/content/{id}", principalHandlerFunc(h.deleteTask))
			r.Get("/content/stats", principalHandlerFunc(h.getStats))
		})
	}

	if basePath := h.basePath(); basePath == "" {
		router.Group(api)
	} else {
		router.Route(basePath, func(r chi.Router) {
			api(r)
			r.Get("/version", h.getServerVersion)
		})
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// basePath returns the API prefix without a trailing slash; "" mounts the
// API at the root.
func (h *Handler) basePath() string {
	return strings.TrimRight(h.cfg.BasePath, "/")
}
