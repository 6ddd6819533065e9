// Package app assembles the services shared by the API server, the TUI and
// the catalog CLI from a loaded configuration.
package app

import (
	"fmt"

	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/catalog"
	"github.com/MrJamesThe3rd/valueplus/internal/catalog/store"
	"github.com/MrJamesThe3rd/valueplus/internal/config"
	"github.com/MrJamesThe3rd/valueplus/internal/importer"
	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/report"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type App struct {
	Config   *config.Config
	Catalog  *catalog.Service
	Matching *matching.Service
	Reports  *report.Service
	Format   *report.Formatter
	Listing  *property.Listing
	Auth     *auth.Client
	Policy   session.RolePolicy
}

// New loads the seeds named by cfg and wires the services. Extra provider
// options are applied after the configured delay.
func New(cfg *config.Config, opts ...auth.MockOption) (*App, error) {
	recs, err := importer.LoadRecommendations(cfg.Seed.Recommendations)
	if err != nil {
		return nil, err
	}

	st, err := store.New(recs)
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	props, err := importer.LoadProperties(cfg.Seed.Properties)
	if err != nil {
		return nil, err
	}

	listing, err := property.NewListing(props)
	if err != nil {
		return nil, fmt.Errorf("seeding properties: %w", err)
	}

	format, err := report.NewFormatter(cfg.App.Locale)
	if err != nil {
		return nil, err
	}

	provider := auth.NewMockProvider(append([]auth.MockOption{auth.WithDelay(cfg.Auth.Delay)}, opts...)...)

	var (
		catalogService  = catalog.NewService(st)
		matchingService = matching.NewService(catalogService)
	)

	return &App{
		Config:   cfg,
		Catalog:  catalogService,
		Matching: matchingService,
		Reports:  report.NewService(matchingService, format),
		Format:   format,
		Listing:  listing,
		Auth:     auth.NewClient(provider, cfg.Auth.AllowSignup),
		Policy: session.StaticAdminPolicy{
			Username: cfg.Auth.AdminUsername,
			Password: cfg.Auth.AdminPassword,
		},
	}, nil
}

// Gate starts a fresh interactive session.
func (a *App) Gate() *session.Gate {
	return session.NewGate(a.Auth, a.Policy)
}
