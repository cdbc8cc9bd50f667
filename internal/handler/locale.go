package handler

import (
	"net/http"

	"github.com/yunxiao-dev/teachboard/internal/i18n"
)

// localeFromRequest returns the locale from the {locale} path segment,
// falling back to the default for routes without one (e.g. /auth/callback).
func localeFromRequest(r *http.Request) string {
	locale := r.PathValue("locale")
	if !i18n.Supported(locale) {
		return i18n.DefaultLocale
	}
	return locale
}

// requireLocale wraps locale-prefixed routes and rejects unknown prefixes so
// wildcard patterns don't serve arbitrary paths.
func requireLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i18n.Supported(r.PathValue("locale")) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleRoot redirects the bare root to the default locale's browsing page.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+i18n.DefaultLocale, http.StatusSeeOther)
}
