package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/yunxiao-dev/teachboard/internal/config"
	"github.com/yunxiao-dev/teachboard/internal/handler"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
	"github.com/yunxiao-dev/teachboard/internal/observability"
	"github.com/yunxiao-dev/teachboard/internal/repository/sqlite"
	"github.com/yunxiao-dev/teachboard/internal/service"
)

const (
	loginAttempts = 5
	loginWindow   = time.Minute
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	bundle, err := i18n.Load()
	if err != nil {
		slog.Error("failed to load message catalogs", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(db.Users(), db.Roles(), cfg.JWTSecret, cfg.BcryptCost)
	activityService := service.NewActivityService(db.Activities())
	loginLimiter := service.NewLoginLimiter(loginAttempts, loginWindow)

	// Bootstrap the admin account (idempotent).
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
			slog.Error("failed to bootstrap admin account", "error", err)
			os.Exit(1)
		}
		slog.Info("admin account ready", "email", cfg.AdminEmail)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, activityService, bundle, loginLimiter, cfg.CookieSecure, cfg.TrustProxy)

	root := handler.SecurityHeaders(handler.RequestLogger(observability.Middleware(mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
