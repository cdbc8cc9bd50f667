package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/service"
	"github.com/yunxiao-dev/teachboard/internal/view"
)

const formTimeLayout = "2006-01-02T15:04"

// AdminHandler serves the activity management panel. Every route it handles
// sits behind RequireAdmin.
type AdminHandler struct {
	activities *service.ActivityService
	bundle     *i18n.Bundle
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(activities *service.ActivityService, bundle *i18n.Bundle) *AdminHandler {
	return &AdminHandler{activities: activities, bundle: bundle}
}

// HandleAdmin renders the admin panel: the activity table, the empty form
// (?new=1), or the edit form (?edit={id}).
// GET /{locale}/admin
func (h *AdminHandler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)
	user := UserFromContext(r.Context())

	if id := r.URL.Query().Get("edit"); id != "" {
		activity, err := h.activities.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
				return
			}
			slog.Error("load activity for edit", "id", id, "error", err)
			h.renderList(w, r, locale, t, user, t("admin.loadFailed"), http.StatusInternalServerError)
			return
		}
		view.AdminPage(locale, t, user, nil, activity, false, "").Render(r.Context(), w)
		return
	}

	if r.URL.Query().Get("new") != "" {
		view.AdminPage(locale, t, user, nil, nil, true, "").Render(r.Context(), w)
		return
	}

	h.renderList(w, r, locale, t, user, "", http.StatusOK)
}

// HandleCreate creates an activity from the admin form.
// POST /{locale}/admin/activities
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)
	user := UserFromContext(r.Context())

	activity, err := parseActivityForm(r)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.AdminPage(locale, t, user, nil, nil, true, validationMessage(t, activity)).Render(r.Context(), w)
		return
	}

	if err := h.activities.Create(r.Context(), activity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.AdminPage(locale, t, user, nil, nil, true, validationMessage(t, activity)).Render(r.Context(), w)
			return
		}
		slog.Error("create activity", "error", err)
		h.renderList(w, r, locale, t, user, t("admin.saveFailed"), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
}

// HandleUpdate updates an existing activity from the admin form.
// POST /{locale}/admin/activities/{id}
func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)
	user := UserFromContext(r.Context())
	id := r.PathValue("id")

	activity, err := parseActivityForm(r)
	if err != nil {
		activity.ID = id
		w.WriteHeader(http.StatusUnprocessableEntity)
		view.AdminPage(locale, t, user, nil, activity, false, validationMessage(t, activity)).Render(r.Context(), w)
		return
	}
	activity.ID = id

	if err := h.activities.Update(r.Context(), activity); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.AdminPage(locale, t, user, nil, activity, false, validationMessage(t, activity)).Render(r.Context(), w)
		case errors.Is(err, domain.ErrNotFound):
			http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
		default:
			slog.Error("update activity", "id", id, "error", err)
			h.renderList(w, r, locale, t, user, t("admin.saveFailed"), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
}

// HandleDelete removes an activity. The confirmation dialog happens on the
// client; a failed delete leaves the record untouched.
// POST /{locale}/admin/activities/{id}/delete
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)
	user := UserFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.activities.Delete(r.Context(), id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("delete activity", "id", id, "error", err)
		h.renderList(w, r, locale, t, user, t("admin.deleteFailed"), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
}

func (h *AdminHandler) renderList(w http.ResponseWriter, r *http.Request, locale string, t view.T, user *domain.User, errMsg string, status int) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		slog.Error("list activities for admin", "error", err)
		activities = nil
		if errMsg == "" {
			errMsg = t("admin.loadFailed")
			status = http.StatusInternalServerError
		}
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	view.AdminPage(locale, t, user, activities, nil, false, errMsg).Render(r.Context(), w)
}

// parseActivityForm decodes the admin form into an Activity. A partially
// filled Activity is returned even on error so the form can be re-rendered
// with the submitted values.
func parseActivityForm(r *http.Request) (*domain.Activity, error) {
	activity := &domain.Activity{}
	if err := r.ParseForm(); err != nil {
		return activity, domain.ErrInvalidInput
	}

	activity.Title = r.PostFormValue("title")
	activity.Location = r.PostFormValue("location")
	activity.Speaker = r.PostFormValue("speaker")
	activity.Description = r.PostFormValue("description")

	var err error
	activity.StartTime, err = time.ParseInLocation(formTimeLayout, r.PostFormValue("start_time"), time.UTC)
	if err != nil {
		return activity, domain.ErrInvalidInput
	}
	activity.EndTime, err = time.ParseInLocation(formTimeLayout, r.PostFormValue("end_time"), time.UTC)
	if err != nil {
		return activity, domain.ErrInvalidInput
	}

	return activity, nil
}

// validationMessage picks the inline message for a rejected form: the
// end-time ordering rule when the dates are the problem, otherwise the
// generic required-fields message.
func validationMessage(t view.T, activity *domain.Activity) string {
	if !activity.StartTime.IsZero() && !activity.EndTime.IsZero() && !activity.EndTime.After(activity.StartTime) {
		return t("admin.endTimeError")
	}
	return t("admin.requiredError")
}
