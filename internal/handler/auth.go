package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/service"
	"github.com/yunxiao-dev/teachboard/internal/view"
)

const sessionCookieMaxAge = 86400 // 24 hours

// AuthHandler handles login, the code-exchange callback, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *service.LoginLimiter
	bundle       *i18n.Bundle
	cookieSecure bool
	trustProxy   bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, limiter *service.LoginLimiter, bundle *i18n.Bundle, cookieSecure, trustProxy bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, bundle: bundle, cookieSecure: cookieSecure, trustProxy: trustProxy}
}

// HandleLoginPage renders the login form.
// GET /{locale}/login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	view.LoginPage(locale, translator(h.bundle, locale), "").Render(r.Context(), w)
}

// HandleLogin verifies credentials and redirects to the auth callback with a
// short-lived login code. Attempts are rate-limited per client IP.
// POST /{locale}/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)
	t := translator(h.bundle, locale)

	if !h.limiter.Allow(clientIP(r, h.trustProxy)) {
		w.WriteHeader(http.StatusTooManyRequests)
		view.LoginPage(locale, t, t("auth.tooManyAttempts")).Render(r.Context(), w)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	code, err := h.auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			view.LoginPage(locale, t, t("auth.invalidCredentials")).Render(r.Context(), w)
			return
		}
		slog.Error("login", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		view.LoginPage(locale, t, t("admin.loadFailed")).Render(r.Context(), w)
		return
	}

	callback := "/auth/callback?" + url.Values{
		"code":   {code},
		"locale": {locale},
	}.Encode()
	http.Redirect(w, r, callback, http.StatusSeeOther)
}

// HandleCallback exchanges a login code for the session cookie and redirects
// to the admin page. Invalid or expired codes land back on the login page
// with no cookie set.
// GET /auth/callback
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if !i18n.Supported(locale) {
		locale = i18n.DefaultLocale
	}

	token, err := h.auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Error("exchange login code", "error", err)
		}
		http.Redirect(w, r, "/"+locale+"/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   sessionCookieMaxAge,
	})

	http.Redirect(w, r, "/"+locale+"/admin", http.StatusSeeOther)
}

// HandleLogout clears the session cookie and redirects to the public page.
// POST /{locale}/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r)

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/"+locale, http.StatusSeeOther)
}

// clientIP picks the rate-limit key. X-Forwarded-For is only honored when a
// trusted proxy sets it; otherwise any client could rotate the header to
// dodge the limiter. Without a proxy, the socket address is the client.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ip, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(ip)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
