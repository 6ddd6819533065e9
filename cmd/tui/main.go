package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/valueplus/internal/app"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/config"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cachePath := cfg.Session.Cache
	if cachePath == "" {
		cachePath, err = session.DefaultCachePath()
		if err != nil {
			slog.Error("failed to resolve session cache", "error", err)
			os.Exit(1)
		}
	}

	cache := session.NewCache(cachePath)

	cached, err := cache.Load()
	if err != nil {
		slog.Warn("ignoring unreadable session cache", "path", cachePath, "error", err)
		cached = nil
	}

	a, err := app.New(cfg, auth.WithUser(cached))
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	return newModel(a, cache, cached)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
