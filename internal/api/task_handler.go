package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskHandler handles task-related API requests. Every operation is scoped
// to the authenticated caller; a task owned by someone else is reported as
// not found rather than forbidden, so callers cannot confirm its existence.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// callerID extracts the authenticated user ID placed in the context by the
// auth middleware. A missing ID means the middleware did not run; treat it
// as unauthorized rather than panicking.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// taskID parses the {id} URL parameter. An unparseable ID cannot name any
// task, so it is reported as not found.
func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /tasks.
//
// Query parameters: page and limit (invalid or missing values fall back to
// 1 and 10), status (exact match), and search (case-insensitive substring
// over title and description).
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	params := store.ListParams{
		Status: domain.TaskStatus(q.Get("status")),
		Search: q.Get("search"),
	}
	// Atoi failures leave the zero value, which Normalize coerces to the
	// defaults; invalid paging input never errors.
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))
	params = params.Normalize()

	tasks, total, err := h.taskStore.List(r.Context(), userID, params)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list tasks",
			"error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Data: tasks,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: params.Pages(total),
		},
	})
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), id, userID)
	if err != nil {
		h.respondTaskError(w, r, err, "Failed to fetch task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Title is required")
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Title is required")
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		logger.FromContext(r.Context()).Error("failed to create task",
			"error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PATCH /tasks/{id}.
//
// Each field is applied only when present in the request body. An explicit
// empty description clears the description, but an explicit empty title is
// treated as absent and leaves the title unchanged.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), id, userID)
	if err != nil {
		h.respondTaskError(w, r, err, "Failed to update task")
		return
	}

	if req.Title != nil && *req.Title != "" {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil && *req.Status != "" {
		status := domain.TaskStatus(*req.Status)
		if !status.IsValid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status")
			return
		}
		task.Status = status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		h.respondTaskError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id}.
// Deleting an already-deleted task reports 404 rather than succeeding
// idempotently.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id, userID); err != nil {
		h.respondTaskError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Task deleted successfully",
	})
}

// Toggle handles POST /tasks/{id}/toggle.
// It advances the task one step along the cycle
// COMPLETED to PENDING to IN_PROGRESS to COMPLETED.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), id, userID)
	if err != nil {
		h.respondTaskError(w, r, err, "Failed to toggle task status")
		return
	}

	task.Toggle()

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		h.respondTaskError(w, r, err, "Failed to toggle task status")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// respondTaskError translates a store error into the right HTTP response.
// Recognized errors get their mapped status and safe message; anything
// unexpected is logged at ERROR level and reported with the operation's
// fallback message.
func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("task operation failed", "error", err)
		shared.RespondWithError(w, r, status, fallback)
		return
	}

	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
