package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/valueplus/internal/app"
	"github.com/MrJamesThe3rd/valueplus/internal/config"
	valueplusHttp "github.com/MrJamesThe3rd/valueplus/internal/http"
	propertyHandler "github.com/MrJamesThe3rd/valueplus/internal/http/property"
	recommendationHandler "github.com/MrJamesThe3rd/valueplus/internal/http/recommendation"
	sessionHandler "github.com/MrJamesThe3rd/valueplus/internal/http/session"
	"github.com/MrJamesThe3rd/valueplus/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.DevSecret() {
		slog.Warn("JWT_SECRET not set, signing tokens with the development secret")
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	tokens, err := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		slog.Error("failed to create token issuer", "error", err)
		os.Exit(1)
	}

	var (
		recommendationH = recommendationHandler.NewHandler(a.Catalog, a.Matching, a.Reports)
		propertyH       = propertyHandler.NewHandler(a.Listing)
		sessionH        = sessionHandler.NewHandler(a.Auth, a.Policy, tokens)
	)

	router := valueplusHttp.New(cfg.CORS.AllowedOrigins, tokens, recommendationH, propertyH, sessionH)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
