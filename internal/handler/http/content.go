// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// listTasks answers GET /content/content. The optional query parameters
// status, priority, search and sort narrow and order the list.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	query := r.URL.Query()
	filter := models.TaskFilter{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
		Search:   query.Get("search"),
		Sort:     models.TaskSort(query.Get("sort")),
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), principal.UserID, filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listTasks")
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	_, _ = utils.WriteJSON(w, models.TaskListResponse{
		Content: tasks,
		Message: app.MsgContentFetched,
	}, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	log := logger.FromRequest(r)

	var req models.CreateTaskRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), principal.UserID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.createTask")
		return
	}

	_, _ = utils.WriteJSON(w, models.TaskCreatedResponse{
		NewContent: task,
		Message:    app.MsgContentAdded,
	}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	log := logger.FromRequest(r)

	var update models.TaskUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), principal.UserID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTask")
		return
	}

	_, _ = utils.WriteJSON(w, models.TaskUpdatedResponse{
		UpdatedContent: task,
		Message:        app.MsgContentUpdated,
	}, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	result, err := h.services.TaskService.DeleteTask(r.Context(), principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteTask")
		return
	}

	_, _ = utils.WriteJSON(w, models.TaskDeletedResponse{
		DeletedContent: result,
		Message:        app.MsgContentDeleted,
	}, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	stats, err := h.services.TaskService.GetStats(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, r, err, "*Handler.getStats")
		return
	}

	_, _ = utils.WriteJSON(w, models.TaskStatsResponse{
		Stats:   stats,
		Message: app.MsgStatsFetched,
	}, http.StatusOK)
}
