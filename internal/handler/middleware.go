package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// resolveAdmin is the single authorization check behind every admin entry
// point. It classifies the request fresh on every call, never caching a
// prior result: no session cookie or an invalid token means
// ErrUnauthorized; a valid session without the admin role (including any
// role lookup failure, which fails closed inside IsAdmin) means
// ErrForbidden.
func resolveAdmin(r *http.Request, auth *service.AuthService) (*domain.User, error) {
	user, err := authenticateRequest(r, auth)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !auth.IsAdmin(r.Context(), user.ID) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// RequireAdmin guards admin page routes. Anonymous requests are redirected
// to the login page, authenticated non-admins to the public browsing page.
// Denials are silent redirects, not error pages.
func RequireAdmin(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := localeFromRequest(r)
		user, err := resolveAdmin(r, auth)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				http.Redirect(w, r, "/"+locale+"/login", http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/"+locale, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminAPI guards the JSON mutation endpoints with the same
// authorization check as RequireAdmin, answering with bare status codes
// instead of redirects.
func RequireAdminAPI(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := resolveAdmin(r, auth)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.User, error) {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return nil, err
	}

	userID, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request with method, path, status, and
// duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter

	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// Flush passes through so SSE responses keep streaming.
func (sw *statusWriter) Flush() {
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
