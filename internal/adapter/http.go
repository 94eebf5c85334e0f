package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

type httpTaskAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTaskAPI constructs an HTTP/REST implementation of [TaskAPI].
// It normalises and validates the base URL from cfg.ServerURL (which
// includes the API base path, e.g. "http://localhost:3000/api") and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPTaskAPI(cfg config.ClientAdapter, logger *logger.Logger) (TaskAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpTaskAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [TaskAPI]. Surrounding whitespace is dropped.
func (h *httpTaskAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [TaskAPI].
func (h *httpTaskAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [TaskAPI]. POST /auth/register.
func (h *httpTaskAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [TaskAPI]. POST /auth/login; the token from the response
// body is stored for later calls.
func (h *httpTaskAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResp.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Str("user_id", loginResp.UserID).Msg("logged in")
	return loginResp, nil
}

// Logout implements [TaskAPI]. POST /auth/logout. The local token is
// cleared even when the server rejects it as already invalid.
func (h *httpTaskAPI) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	err = mapHTTPError(resp)
	if err == nil || resp.StatusCode() == http.StatusUnauthorized {
		h.SetToken("")
	}
	return err
}

// ListTasks implements [TaskAPI]. GET /content/content with the non-empty
// filter fields as query parameters.
func (h *httpTaskAPI) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var listResp models.TaskListResponse
	resp, err := req.
		SetQueryParams(filterQuery(filter)).
		SetResult(&listResp).
		Get("/content/content")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return listResp.Content, nil
}

// CreateTask implements [TaskAPI]. POST /content/content.
func (h *httpTaskAPI) CreateTask(ctx context.Context, task models.CreateTaskRequest) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	var createdResp models.TaskCreatedResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(task).
		SetResult(&createdResp).
		Post("/content/content")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return createdResp.NewContent, nil
}

// UpdateTask implements [TaskAPI]. PUT /content/content/{id}.
func (h *httpTaskAPI) UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	var updatedResp models.TaskUpdatedResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", taskID).
		SetBody(update).
		SetResult(&updatedResp).
		Put("/content/content/{id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return updatedResp.UpdatedContent, nil
}

// DeleteTask implements [TaskAPI]. DELETE /content/content/{id}.
func (h *httpTaskAPI) DeleteTask(ctx context.Context, taskID string) (models.DeleteResult, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DeleteResult{}, err
	}

	var deletedResp models.TaskDeletedResponse
	resp, err := req.
		SetPathParam("id", taskID).
		SetResult(&deletedResp).
		Delete("/content/content/{id}")
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResult{}, err
	}

	return deletedResp.DeletedContent, nil
}

// Stats implements [TaskAPI]. GET /content/stats.
func (h *httpTaskAPI) Stats(ctx context.Context) (models.TaskStats, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TaskStats{}, err
	}

	var statsResp models.TaskStatsResponse
	resp, err := req.
		SetResult(&statsResp).
		Get("/content/stats")
	if err != nil {
		return models.TaskStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskStats{}, err
	}

	return statsResp.Stats, nil
}

// Version implements [TaskAPI]. GET /version, answered as plain text.
func (h *httpTaskAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTaskAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(token), nil
}

func filterQuery(filter models.TaskFilter) map[string]string {
	query := make(map[string]string, 4)
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Sort != "" {
		query["sort"] = string(filter.Sort)
	}
	return query
}
