package handler

import (
	"net/http"

	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/observability"
	"github.com/yunxiao-dev/teachboard/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Admin page routes
// and the JSON mutation endpoints go through the same authorization check,
// wrapped for their respective surfaces.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	activities *service.ActivityService,
	bundle *i18n.Bundle,
	limiter *service.LoginLimiter,
	cookieSecure bool,
	trustProxy bool,
) {
	home := NewHomeHandler(activities, bundle)
	admin := NewAdminHandler(activities, bundle)
	authH := NewAuthHandler(auth, limiter, bundle, cookieSecure, trustProxy)
	api := NewActivityAPIHandler(activities)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /metrics", observability.MetricsHandler())
	mux.HandleFunc("GET /{$}", HandleRoot)
	mux.HandleFunc("GET /auth/callback", authH.HandleCallback)

	// Public browsing pages, locale-prefixed.
	mux.Handle("GET /{locale}", requireLocale(http.HandlerFunc(home.HandleHome)))
	mux.Handle("GET /{locale}/filter", requireLocale(http.HandlerFunc(home.HandleFilter)))
	mux.Handle("GET /{locale}/login", requireLocale(http.HandlerFunc(authH.HandleLoginPage)))
	mux.Handle("POST /{locale}/login", requireLocale(http.HandlerFunc(authH.HandleLogin)))
	mux.Handle("POST /{locale}/logout", requireLocale(http.HandlerFunc(authH.HandleLogout)))

	// Admin panel, guarded per request.
	mux.Handle("GET /{locale}/admin", requireLocale(RequireAdmin(auth, http.HandlerFunc(admin.HandleAdmin))))
	mux.Handle("POST /{locale}/admin/activities", requireLocale(RequireAdmin(auth, http.HandlerFunc(admin.HandleCreate))))
	mux.Handle("POST /{locale}/admin/activities/{id}", requireLocale(RequireAdmin(auth, http.HandlerFunc(admin.HandleUpdate))))
	mux.Handle("POST /{locale}/admin/activities/{id}/delete", requireLocale(RequireAdmin(auth, http.HandlerFunc(admin.HandleDelete))))

	// JSON API. Reads are public, writes re-run the guard server-side.
	mux.HandleFunc("GET /api/activities", api.HandleList)
	mux.Handle("POST /api/activities", RequireAdminAPI(auth, http.HandlerFunc(api.HandleCreate)))
	mux.Handle("PUT /api/activities/{id}", RequireAdminAPI(auth, http.HandlerFunc(api.HandleUpdate)))
	mux.Handle("DELETE /api/activities/{id}", RequireAdminAPI(auth, http.HandlerFunc(api.HandleDelete)))
}
