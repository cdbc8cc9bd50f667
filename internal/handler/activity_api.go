package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/service"
)

// ActivityAPIHandler exposes the activity store as JSON. Reads are public;
// mutations sit behind RequireAdminAPI.
type ActivityAPIHandler struct {
	activities *service.ActivityService
}

// NewActivityAPIHandler creates a new ActivityAPIHandler.
func NewActivityAPIHandler(activities *service.ActivityService) *ActivityAPIHandler {
	return &ActivityAPIHandler{activities: activities}
}

// HandleList returns all activities ordered by start time.
// GET /api/activities
func (h *ActivityAPIHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		slog.Error("list activities", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activities": toActivityDTOs(activities),
	})
}

// HandleCreate creates an activity. Validation failures never reach the
// store.
// POST /api/activities
func (h *ActivityAPIHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	activity := req.toActivity()
	if err := h.activities.Create(r.Context(), activity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create activity", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"activity": toActivityDTO(activity),
	})
}

// HandleUpdate updates an activity by ID.
// PUT /api/activities/{id}
func (h *ActivityAPIHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	activity := req.toActivity()
	activity.ID = r.PathValue("id")

	if err := h.activities.Update(r.Context(), activity); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found.")
		default:
			slog.Error("update activity", "id", activity.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activity": toActivityDTO(activity),
	})
}

// HandleDelete deletes an activity by ID.
// DELETE /api/activities/{id}
func (h *ActivityAPIHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.activities.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Activity not found.")
			return
		}
		slog.Error("delete activity", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
