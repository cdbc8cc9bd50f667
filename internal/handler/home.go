package handler

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/service"
	"github.com/yunxiao-dev/teachboard/internal/view"
)

// HomeHandler serves the public browsing page and its reactive filter
// fragment.
type HomeHandler struct {
	activities *service.ActivityService
	bundle     *i18n.Bundle
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(activities *service.ActivityService, bundle *i18n.Bundle) *HomeHandler {
	return &HomeHandler{activities: activities, bundle: bundle}
}

// HandleHome renders the browsing page with the full, unfiltered activity
// list ordered by start time.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)

	activities, err := h.activities.List(r.Context())
	if err != nil {
		slog.Error("list activities for home page", "error", err)
		http.Error(w, t("admin.loadFailed"), http.StatusInternalServerError)
		return
	}

	view.HomePage(locale, t, activities).Render(r.Context(), w)
}

// HandleFilter recomputes the visible activity subset for the current
// criteria signals and patches the results fragment over SSE. It runs on
// every input event; the filter itself is a pure in-memory pass over the
// freshly loaded list.
func (h *HomeHandler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)

	var criteria service.Criteria
	if err := datastar.ReadSignals(r, &criteria); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	activities, err := h.activities.List(r.Context())
	if err != nil {
		slog.Error("list activities for filter", "error", err)
		http.Error(w, t("admin.loadFailed"), http.StatusInternalServerError)
		return
	}

	filtered := service.Filter(activities, criteria)

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.ActivityResults(locale, t, filtered))
}

func translator(bundle *i18n.Bundle, locale string) view.T {
	return func(key string) string {
		return bundle.T(locale, key)
	}
}
